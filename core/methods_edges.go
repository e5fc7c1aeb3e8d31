// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/EdgeBetween/Edge/Edges/
//       EdgeCount and the derived neighbor queries.
// Determinism:
//   - Edges(), IncidentEdges() and Neighbors() return results in ascending
//     edge ID (creation) order.

package core

// AddEdge connects two distinct existing nodes.
//
// Steps:
//  1. Reject a == b (ErrLoopNotAllowed) and missing endpoints (ErrNodeNotFound).
//  2. If the pair is already connected, return the existing edge untouched.
//     Callers that need to reset its age do so explicitly.
//  3. Otherwise assign the next EdgeID and register the edge with age 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b NodeID) (*Edge, error) {
	if a == b {
		return nil, ErrLoopNotAllowed
	}
	if _, ok := g.nodes[a]; !ok {
		return nil, ErrNodeNotFound
	}
	if _, ok := g.nodes[b]; !ok {
		return nil, ErrNodeNotFound
	}

	key := makePair(a, b)
	if eid, ok := g.pairs[key]; ok {
		return g.edges[eid], nil
	}

	g.nextEdgeID++
	e := &Edge{ID: g.nextEdgeID, From: key.lo, To: key.hi}
	attachEdge(g, e)

	return e, nil
}

// RemoveEdge deletes one edge. Its endpoints remain in the graph.
//
// Errors:
//   - ErrEdgeNotFound: id is not a current member (no silent ignore).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(id EdgeID) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	detachEdge(g, e)

	return nil
}

// EdgeBetween returns the edge connecting a and b, in either orientation.
// Complexity: O(1).
func (g *Graph) EdgeBetween(a, b NodeID) (*Edge, bool) {
	eid, ok := g.pairs[makePair(a, b)]
	if !ok {
		return nil, false
	}

	return g.edges[eid], true
}

// Edge returns the edge with the given ID.
// Complexity: O(1).
func (g *Graph) Edge(id EdgeID) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Edges returns all edges in creation order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	it := g.edgeSet.Iterator()
	for it.HasNext() {
		out = append(out, g.edges[EdgeID(it.Next())])
	}

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// IncidentEdges returns the edges touching id in creation order, or nil if
// id is not a member.
// Complexity: O(deg(id)).
func (g *Graph) IncidentEdges(id NodeID) []*Edge {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]*Edge, 0, adj.GetCardinality())
	it := adj.Iterator()
	for it.HasNext() {
		out = append(out, g.edges[EdgeID(it.Next())])
	}

	return out
}

// Neighbors returns the nodes sharing an edge with id, ordered by the
// creation of the connecting edge. The set is derived from the adjacency
// index on every call, so it can never hold a removed node.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id NodeID) []*Node {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]*Node, 0, adj.GetCardinality())
	it := adj.Iterator()
	for it.HasNext() {
		e := g.edges[EdgeID(it.Next())]
		out = append(out, g.nodes[e.Other(id)])
	}

	return out
}

// Degree returns the number of edges incident to id (0 for non-members).
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) int {
	adj, ok := g.adjacency[id]
	if !ok {
		return 0
	}

	return int(adj.GetCardinality())
}
