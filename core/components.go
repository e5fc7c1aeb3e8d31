// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected components of the learned map (one per discovered cluster).
// Determinism:
//   - Components are ordered by their smallest node ID; members ascend.

package core

import "github.com/RoaringBitmap/roaring/v2"

// Components partitions the nodes into connected components.
//
// Implementation:
//   - Stage 1: Seed a breadth-first walk from every node not yet visited,
//     in insertion order.
//   - Stage 2: Expand the FIFO frontier through the adjacency index,
//     collecting members in a bitmap so they come out in ascending ID order.
//
// An isolated node forms its own component.
// Complexity: O(V+E).
func (g *Graph) Components() [][]NodeID {
	visited := roaring.New()
	var out [][]NodeID

	it := g.nodeSet.Iterator()
	for it.HasNext() {
		root := it.Next()
		if visited.Contains(root) {
			continue
		}

		members := roaring.New()
		queue := []NodeID{NodeID(root)}
		visited.Add(root)
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			members.Add(uint32(id))

			eit := g.adjacency[id].Iterator()
			for eit.HasNext() {
				nbr := g.edges[EdgeID(eit.Next())].Other(id)
				if visited.CheckedAdd(uint32(nbr)) {
					queue = append(queue, nbr)
				}
			}
		}

		ids := make([]NodeID, 0, members.GetCardinality())
		mit := members.Iterator()
		for mit.HasNext() {
			ids = append(ids, NodeID(mit.Next()))
		}
		out = append(out, ids)
	}

	return out
}
