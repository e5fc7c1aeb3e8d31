// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrBadSize indicates a lattice extent smaller than one cell per axis.
	ErrBadSize = errors.New("gridgraph: size must be at least 1")
	// ErrBadDimension indicates a lattice dimensionality outside [1, MaxDim].
	ErrBadDimension = errors.New("gridgraph: dimension out of range")
)

// MaxDim is the highest supported lattice dimensionality.
const MaxDim = 3

// Lattice is an immutable size^dim integer grid.
// strides[a] is the index distance between neighbours along axis a.
type Lattice struct {
	Size, Dim int
	strides   []int
	cells     int
}
