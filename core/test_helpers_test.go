// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the graph store tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topomap/core"
)

// Common positions used across core tests.
var (
	Origin = []float64{0, 0, 0}
	Ones   = []float64{1, 1, 1}
	Twos   = []float64{2, 2, 2}
	Far    = []float64{10, 10, 10}
)

// mustAddNode adds a node and fails the test if capacity was refused.
func mustAddNode(t testing.TB, g *core.Graph, pos []float64, opts ...core.NodeOption) *core.Node {
	t.Helper()
	n, ok := g.AddNode(pos, opts...)
	require.True(t, ok, "AddNode(%v) refused", pos)

	return n
}

// mustAddEdge connects a and b and fails the test on error.
func mustAddEdge(t testing.TB, g *core.Graph, a, b *core.Node) *core.Edge {
	t.Helper()
	e, err := g.AddEdge(a.ID, b.ID)
	require.NoError(t, err)

	return e
}

// nodeIDs projects nodes to their IDs.
func nodeIDs(ns []*core.Node) []core.NodeID {
	out := make([]core.NodeID, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}

	return out
}
