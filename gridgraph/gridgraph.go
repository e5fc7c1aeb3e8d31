// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"
)

// NewLattice constructs a lattice with size cells along each of dim axes.
// Returns ErrBadSize if size < 1, ErrBadDimension if dim is not in [1, MaxDim].
// Complexity: O(dim).
func NewLattice(size, dim int) (*Lattice, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	if dim < 1 || dim > MaxDim {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrBadDimension, dim, MaxDim)
	}
	// Row-major, first axis slowest: stride of the last axis is 1.
	strides := make([]int, dim)
	cells := 1
	for a := dim - 1; a >= 0; a-- {
		strides[a] = cells
		cells *= size
	}

	return &Lattice{Size: size, Dim: dim, strides: strides, cells: cells}, nil
}

// Len returns the number of cells, size^dim.
func (l *Lattice) Len() int {
	return l.cells
}

// EdgeCount returns the number of lattice edges, dim·size^(dim-1)·(size-1).
func (l *Lattice) EdgeCount() int {
	return l.Dim * (l.cells / l.Size) * (l.Size - 1)
}

// InBounds reports whether coord is a cell of this lattice.
func (l *Lattice) InBounds(coord []int) bool {
	if len(coord) != l.Dim {
		return false
	}
	for _, c := range coord {
		if c < 0 || c >= l.Size {
			return false
		}
	}

	return true
}

// Index maps coord to its row-major index.
func (l *Lattice) Index(coord []int) (int, bool) {
	if !l.InBounds(coord) {
		return 0, false
	}
	idx := 0
	for a, c := range coord {
		idx += c * l.strides[a]
	}

	return idx, true
}

// Coordinate converts a row-major index back to a fresh coordinate slice.
func (l *Lattice) Coordinate(idx int) []int {
	coord := make([]int, l.Dim)
	for a := range coord {
		coord[a] = idx / l.strides[a]
		idx %= l.strides[a]
	}

	return coord
}

// Predecessors returns the indices of the in-bounds cells one step lower
// than coord along each axis, in axis order. A cell at the lower boundary of
// an axis has no predecessor on it.
func (l *Lattice) Predecessors(coord []int) []int {
	idx, ok := l.Index(coord)
	if !ok {
		return nil
	}
	out := make([]int, 0, l.Dim)
	for a, c := range coord {
		if c > 0 {
			out = append(out, idx-l.strides[a])
		}
	}

	return out
}

// Ball returns, in ascending index order, every cell whose Euclidean grid
// distance to center is at most radius. The centre itself is included.
// A negative radius or an out-of-bounds centre yields nil.
func (l *Lattice) Ball(center []int, radius float64) []int {
	if radius < 0 || !l.InBounds(center) {
		return nil
	}
	r := int(math.Floor(radius))
	lo := make([]int, l.Dim)
	hi := make([]int, l.Dim)
	for a, c := range center {
		lo[a] = max(c-r, 0)
		hi[a] = min(c+r, l.Size-1)
	}

	var out []int
	// Odometer over the clipped box, last axis fastest, so indices ascend.
	cur := append([]int(nil), lo...)
	for {
		if Distance(cur, center) <= radius {
			idx, _ := l.Index(cur)
			out = append(out, idx)
		}
		a := l.Dim - 1
		for ; a >= 0; a-- {
			if cur[a] < hi[a] {
				cur[a]++
				break
			}
			cur[a] = lo[a]
		}
		if a < 0 {
			return out
		}
	}
}

// Distance returns the Euclidean distance between two grid coordinates.
func Distance(a, b []int) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i] - b[i])
		sum += d * d
	}

	return math.Sqrt(sum)
}
