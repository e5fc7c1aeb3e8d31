// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: Private helpers that keep the edge catalog, the ordered edge set, the
//       pair index and the per-node adjacency bitmaps in lockstep.

package core

import "github.com/RoaringBitmap/roaring/v2"

// ensureAdjacency creates the incident-edge bitmap for id if missing.
func ensureAdjacency(g *Graph, id NodeID) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = roaring.New()
	}
}

// attachEdge registers e in every index.
func attachEdge(g *Graph, e *Edge) {
	g.edges[e.ID] = e
	g.edgeSet.Add(uint32(e.ID))
	g.pairs[makePair(e.From, e.To)] = e.ID
	g.adjacency[e.From].Add(uint32(e.ID))
	g.adjacency[e.To].Add(uint32(e.ID))
}

// detachEdge removes e from every index. Endpoints stay in the graph even if
// they become edgeless; pruning is an explicit pass.
func detachEdge(g *Graph, e *Edge) {
	delete(g.edges, e.ID)
	g.edgeSet.Remove(uint32(e.ID))
	delete(g.pairs, makePair(e.From, e.To))
	if adj, ok := g.adjacency[e.From]; ok {
		adj.Remove(uint32(e.ID))
	}
	if adj, ok := g.adjacency[e.To]; ok {
		adj.Remove(uint32(e.ID))
	}
}
