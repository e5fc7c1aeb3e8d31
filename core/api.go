// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters, the step counter, diagnostics (Stats) and the
//       structural invariant check (Validate).

package core

import (
	"fmt"
	"math"
)

// NodeMin reports the configured seeding size.
func (g *Graph) NodeMin() int { return g.nodeMin }

// NodeMax reports the hard node ceiling.
func (g *Graph) NodeMax() int { return g.nodeMax }

// Full reports whether AddNode would currently refuse.
func (g *Graph) Full() bool { return len(g.nodes) >= g.nodeMax }

// Timestep returns the step counter.
func (g *Graph) Timestep() int { return g.timestep }

// Advance adds n to the step counter and returns the new value.
// The counter never decreases; negative n panics.
func (g *Graph) Advance(n int) int {
	if n < 0 {
		panic("core: Advance(n<0)")
	}
	g.timestep += n

	return g.timestep
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	EdgelessCount int
	Timestep      int
	MaxEdgeAge    int
	Components    int
	TotalError    float64
	MeanDegree    float64
}

// Stats produces a read-only snapshot of catalog sizes and bookkeeping totals.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
		Timestep:  g.timestep,
	}
	for id, n := range g.nodes {
		s.TotalError += n.Error
		if g.adjacency[id].IsEmpty() {
			s.EdgelessCount++
		}
	}
	for _, e := range g.edges {
		s.MaxEdgeAge = max(s.MaxEdgeAge, e.Age)
	}
	s.Components = len(g.Components())
	if s.NodeCount > 0 {
		s.MeanDegree = 2 * float64(s.EdgeCount) / float64(s.NodeCount)
	}

	return s
}

// Validate checks the structural invariants every policy relies on:
//
//  1. every edge references two current nodes, From < To, and is indexed
//     under both endpoints and its pair key;
//  2. no two edges connect the same unordered pair;
//  3. the node count does not exceed node_max;
//
// plus consistency of the ordered sets and adjacency bitmaps, finite
// positions of a single dimension and non-negative errors. Violations are
// wrapped in ErrInvariant.
//
// Complexity: O(V·D + E).
func (g *Graph) Validate() error {
	if len(g.nodes) > g.nodeMax {
		return fmt.Errorf("%w: %d nodes exceed node_max %d", ErrInvariant, len(g.nodes), g.nodeMax)
	}
	if int(g.nodeSet.GetCardinality()) != len(g.nodes) || int(g.edgeSet.GetCardinality()) != len(g.edges) {
		return fmt.Errorf("%w: ordered sets out of sync with catalogs", ErrInvariant)
	}
	if len(g.pairs) != len(g.edges) {
		return fmt.Errorf("%w: %d pair keys for %d edges", ErrInvariant, len(g.pairs), len(g.edges))
	}

	dim := -1
	for id, n := range g.nodes {
		if n.ID != id || !g.nodeSet.Contains(uint32(id)) {
			return fmt.Errorf("%w: node %d is not indexed", ErrInvariant, id)
		}
		if dim < 0 {
			dim = len(n.Position)
		}
		if len(n.Position) != dim {
			return fmt.Errorf("%w: node %d has dimension %d, want %d", ErrInvariant, id, len(n.Position), dim)
		}
		for _, x := range n.Position {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%w: node %d has a non-finite position", ErrInvariant, id)
			}
		}
		if n.Error < 0 {
			return fmt.Errorf("%w: node %d has negative error %g", ErrInvariant, id, n.Error)
		}
		adj, ok := g.adjacency[id]
		if !ok {
			return fmt.Errorf("%w: node %d has no adjacency bucket", ErrInvariant, id)
		}
		it := adj.Iterator()
		for it.HasNext() {
			e, ok := g.edges[EdgeID(it.Next())]
			if !ok || (e.From != id && e.To != id) {
				return fmt.Errorf("%w: node %d lists a foreign edge", ErrInvariant, id)
			}
		}
	}
	if len(g.adjacency) != len(g.nodes) {
		return fmt.Errorf("%w: adjacency holds %d buckets for %d nodes", ErrInvariant, len(g.adjacency), len(g.nodes))
	}

	for eid, e := range g.edges {
		if e.ID != eid || !g.edgeSet.Contains(uint32(eid)) {
			return fmt.Errorf("%w: edge %d is not indexed", ErrInvariant, eid)
		}
		if e.From >= e.To {
			return fmt.Errorf("%w: edge %d has endpoints %d,%d", ErrInvariant, eid, e.From, e.To)
		}
		if _, ok := g.nodes[e.From]; !ok {
			return fmt.Errorf("%w: edge %d references missing node %d", ErrInvariant, eid, e.From)
		}
		if _, ok := g.nodes[e.To]; !ok {
			return fmt.Errorf("%w: edge %d references missing node %d", ErrInvariant, eid, e.To)
		}
		if pid, ok := g.pairs[makePair(e.From, e.To)]; !ok || pid != eid {
			return fmt.Errorf("%w: duplicate or unindexed pair %d-%d", ErrInvariant, e.From, e.To)
		}
		if !g.adjacency[e.From].Contains(uint32(eid)) || !g.adjacency[e.To].Contains(uint32(eid)) {
			return fmt.Errorf("%w: edge %d missing from endpoint adjacency", ErrInvariant, eid)
		}
		if e.Age < 0 {
			return fmt.Errorf("%w: edge %d has negative age", ErrInvariant, eid)
		}
	}

	return nil
}
