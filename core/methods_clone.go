// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a graph, used to fork a map or snapshot it for replay.
// Determinism:
//   - Clone carries nextNodeID/nextEdgeID so IDs on the clone continue the
//     source sequence and never collide with existing members.

package core

// Clone returns a deep copy: configuration, step counter, nodes (positions,
// errors, grid coordinates), edges (ages) and all indices.
//
// Complexity: O(V·D + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph(WithNodeMin(g.nodeMin), WithNodeMax(g.nodeMax), WithDistance(g.dist))
	c.timestep = g.timestep
	c.nextNodeID = g.nextNodeID
	c.nextEdgeID = g.nextEdgeID

	for _, n := range g.Nodes() {
		cp := &Node{
			ID:       n.ID,
			Position: append([]float64(nil), n.Position...),
			Error:    n.Error,
		}
		if n.GridPosition != nil {
			cp.GridPosition = append([]int(nil), n.GridPosition...)
		}
		c.nodes[cp.ID] = cp
		c.nodeSet.Add(uint32(cp.ID))
		ensureAdjacency(c, cp.ID)
	}
	for _, e := range g.Edges() {
		attachEdge(c, &Edge{ID: e.ID, From: e.From, To: e.To, Age: e.Age})
	}

	return c
}
