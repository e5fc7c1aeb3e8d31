// Package core provides the graph store shared by the topological map
// learners: a bounded set of prototype nodes plus an undirected edge set that
// encodes their neighbourhood.
//
// The Graph G = (V,E) guarantees:
//
//   - Bounded growth: AddNode refuses (ok=false, no error) once node_max
//     nodes exist (WithNodeMax).
//   - Simple edges: no self-loops (ErrLoopNotAllowed) and at most one edge per
//     unordered pair; AddEdge on a connected pair returns the existing edge.
//   - Derived neighbourhoods: a node's neighbours are computed from a
//     node -> incident-edge-ID index (roaring bitmaps), never stored as
//     direct references, so removal cannot leave dangling neighbours.
//   - Deterministic iteration: IDs are monotonic and never reused; every
//     enumeration (Nodes, Edges, Neighbors, FindNearest, PruneEdgeless)
//     walks ascending IDs, i.e. insertion order.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(pos []float64, opts ...NodeOption) (*Node, bool) // O(D)
//	RemoveNode(id NodeID) error                              // O(deg)
//	PruneEdgeless(keep ...NodeID) []NodeID                   // O(V)
//
//	// Edge lifecycle
//	AddEdge(a, b NodeID) (*Edge, error)   // O(1), idempotent
//	RemoveEdge(id EdgeID) error           // O(1)
//	EdgeBetween(a, b NodeID) (*Edge, bool)// O(1)
//
//	// Matching
//	FindNearest(stimulus []float64) (nearest, second *Node, err error) // O(V·D)
//
//	// Queries & diagnostics
//	Nodes() / Edges() / Neighbors(id) / IncidentEdges(id) / Degree(id)
//	Timestep() / Advance(n) / Stats() / Validate() / Clone()
//
// Errors:
//
//	ErrNodeNotFound      – missing node
//	ErrEdgeNotFound      – missing edge
//	ErrLoopNotAllowed    – edge from a node to itself
//	ErrTooFewNodes       – FindNearest with fewer than two nodes
//	ErrDimensionMismatch – stimulus length differs from node positions
//	ErrInvariant         – Validate detected a broken invariant
//
// Structural errors indicate a broken policy and must never be swallowed.
//
// Graph is not safe for concurrent use. A learning step is an atomic unit
// executed by one goroutine; independent maps use independent Graphs.
package core
