// Package gridgraph describes the regular integer lattice a Self-Organizing
// Map is laid out on.
//
// What:
//
//   - Lattice is an immutable size^dim hyper-grid (1 <= dim <= 3).
//   - Cells are enumerated in row-major order with the first axis slowest, so
//     index order equals the nested i, j, k construction loop.
//   - Predecessors returns, per axis, the in-bounds cell one step lower: the
//     edges that turn the cell set into a lattice graph.
//   - Ball returns the cells within a Euclidean grid radius of a centre: the
//     SOM neighbourhood.
//
// Complexity:
//
//   - Index/Coordinate/InBounds: O(dim).
//   - Predecessors:              O(dim²).
//   - Ball:                      O((2r+1)^dim · dim).
//
// Errors:
//
//   - ErrBadSize:      size < 1.
//   - ErrBadDimension: dim outside [1, MaxDim].
package gridgraph
