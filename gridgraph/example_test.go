package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/topomap/gridgraph"
)

// ExampleLattice enumerates a 2x2 lattice and its predecessor edges.
func ExampleLattice() {
	l, _ := gridgraph.NewLattice(2, 2)
	for i := 0; i < l.Len(); i++ {
		coord := l.Coordinate(i)
		fmt.Println(i, coord, l.Predecessors(coord))
	}
	fmt.Println("edges:", l.EdgeCount())

	// Output:
	// 0 [0 0] []
	// 1 [0 1] [0]
	// 2 [1 0] [0]
	// 3 [1 1] [1 2]
	// edges: 4
}
