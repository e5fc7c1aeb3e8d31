// SPDX-License-Identifier: MIT
//
// File: nearest.go
// Role: Winner / second-nearest matching against the whole node set.

package core

import "math"

// FindNearest returns the node closest to stimulus and the runner-up.
//
// Implementation:
//   - Stage 1: Require at least two nodes (ErrTooFewNodes) and a stimulus of
//     the node dimension (ErrDimensionMismatch).
//   - Stage 2: Linear scan in insertion order. Comparisons are strict, so on
//     equal distances the node met first keeps the better rank.
//
// Complexity: O(V·D).
func (g *Graph) FindNearest(stimulus []float64) (nearest, second *Node, err error) {
	if len(g.nodes) < 2 {
		return nil, nil, ErrTooFewNodes
	}

	best, runner := math.Inf(1), math.Inf(1)
	it := g.nodeSet.Iterator()
	for it.HasNext() {
		n := g.nodes[NodeID(it.Next())]
		if len(n.Position) != len(stimulus) {
			return nil, nil, ErrDimensionMismatch
		}
		d := g.dist(n.Position, stimulus)
		switch {
		case nearest == nil || d < best:
			second, runner = nearest, best
			nearest, best = n, d
		case second == nil || d < runner:
			second, runner = n, d
		}
	}

	return nearest, second, nil
}

// Distance applies the graph's metric to two positions.
func (g *Graph) Distance(a, b []float64) float64 {
	return g.dist(a, b)
}
