package som_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/topomap/learner"
	"github.com/katalvlaran/topomap/som"
)

// ExampleSOM trains a 5x5 lattice until its iteration budget is spent.
func ExampleSOM() {
	cfg := som.DefaultConfig()
	cfg.NetworkSize, cfg.Dim, cfg.Sigma, cfg.MaxIterations = 5, 2, 2.5, 199

	m, err := som.New([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, cfg, learner.WithSeed(1))
	if err != nil {
		panic(err)
	}
	if _, err = m.Prepare(); err != nil {
		panic(err)
	}

	steps := 0
	for {
		if _, err = m.Train(); errors.Is(err, learner.ErrDone) {
			break
		} else if err != nil {
			panic(err)
		}
		steps++
	}
	fmt.Println("steps:", steps)
	fmt.Println("nodes:", m.Graph().NodeCount(), "edges:", m.Graph().EdgeCount())
	fmt.Printf("eta: %.4f\n", m.Eta())

	// Output:
	// steps: 200
	// nodes: 25 edges: 40
	// eta: 0.2936
}
