// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/topomap/core"
)

// randomGraph builds n nodes in [0,1)^dim connected as a chain.
func randomGraph(b *testing.B, n, dim int) *core.Graph {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	g := core.NewGraph(core.WithNodeMax(n))
	var prev *core.Node
	for i := 0; i < n; i++ {
		pos := make([]float64, dim)
		for j := range pos {
			pos[j] = r.Float64()
		}
		node := mustAddNode(b, g, pos)
		if prev != nil {
			mustAddEdge(b, g, prev, node)
		}
		prev = node
	}

	return g
}

// BenchmarkFindNearest measures the linear winner/second scan.
func BenchmarkFindNearest(b *testing.B) {
	g := randomGraph(b, 1000, 3)
	stimulus := []float64{0.5, 0.5, 0.5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.FindNearest(stimulus)
	}
}

// BenchmarkAddRemoveEdge measures edge churn on an existing pair.
func BenchmarkAddRemoveEdge(b *testing.B) {
	g := randomGraph(b, 2, 3)
	nodes := g.Nodes()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, _ := g.AddEdge(nodes[0].ID, nodes[1].ID)
		_ = g.RemoveEdge(e.ID)
	}
}

// BenchmarkNeighbors measures derived neighbor lookup on a hub node.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph(core.WithNodeMax(101))
	hub := mustAddNode(b, g, []float64{0})
	for i := 0; i < 100; i++ {
		mustAddEdge(b, g, hub, mustAddNode(b, g, []float64{float64(i)}))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(hub.ID)
	}
}
