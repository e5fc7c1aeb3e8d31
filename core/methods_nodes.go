// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/RemoveNode/Node/HasNode/Nodes/
//       NodeCount and the edgeless pruning pass.
// Determinism:
//   - Nodes() and PruneEdgeless() walk nodes in ascending ID (insertion) order.

package core

// AddNode creates a node at a copy of position.
//
// Implementation:
//   - Stage 1: Refuse when the graph already holds node_max nodes.
//   - Stage 2: Assign the next NodeID, copy position, apply options.
//   - Stage 3: Register in the catalog, the ordered node set and the adjacency index.
//
// Returns:
//   - (*Node, true) on success.
//   - (nil, false) when capacity is exhausted. This is an expected outcome,
//     not an error: growth rules skip their insertion side effects.
//
// Complexity: O(D) for the position copy.
func (g *Graph) AddNode(position []float64, opts ...NodeOption) (*Node, bool) {
	if len(g.nodes) >= g.nodeMax {
		return nil, false
	}

	g.nextNodeID++
	n := &Node{
		ID:       g.nextNodeID,
		Position: append([]float64(nil), position...),
	}
	for _, opt := range opts {
		opt(n)
	}

	g.nodes[n.ID] = n
	g.nodeSet.Add(uint32(n.ID))
	ensureAdjacency(g, n.ID)

	return n, true
}

// RemoveNode deletes a node and every edge incident to it.
//
// Errors:
//   - ErrNodeNotFound: id is not a current member.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id NodeID) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}

	// Collect first: detachEdge mutates the bitmap being iterated.
	incident := g.adjacency[id].ToArray()
	for _, eid := range incident {
		detachEdge(g, g.edges[EdgeID(eid)])
	}

	delete(g.nodes, id)
	delete(g.adjacency, id)
	g.nodeSet.Remove(uint32(id))

	return nil
}

// Node returns the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is a current member.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	it := g.nodeSet.Iterator()
	for it.HasNext() {
		out = append(out, g.nodes[NodeID(it.Next())])
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// PruneEdgeless removes every node without incident edges, except the IDs in
// keep, and returns the removed IDs in insertion order.
//
// This is the global pruning pass GNG and ITM run at the end of their edge
// update. Edgeless nodes have nothing to detach, so removal is O(1) each.
//
// Complexity: O(V).
func (g *Graph) PruneEdgeless(keep ...NodeID) []NodeID {
	var dead []NodeID
	it := g.nodeSet.Iterator()
	for it.HasNext() {
		id := NodeID(it.Next())
		if !g.adjacency[id].IsEmpty() || containsID(keep, id) {
			continue
		}
		dead = append(dead, id)
	}
	for _, id := range dead {
		delete(g.nodes, id)
		delete(g.adjacency, id)
		g.nodeSet.Remove(uint32(id))
	}

	return dead
}

func containsID(ids []NodeID, id NodeID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}

	return false
}
