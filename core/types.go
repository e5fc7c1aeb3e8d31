// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph, options, sentinel errors and NewGraph.
//
// Errors:
//
//	ErrNodeNotFound      - requested node does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrLoopNotAllowed    - edge from a node to itself.
//	ErrTooFewNodes       - nearest-neighbour matching with fewer than two nodes.
//	ErrDimensionMismatch - stimulus length differs from node positions.
//	ErrInvariant         - Validate found a broken structural invariant.
package core

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/topomap/distance"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node that is not a current member.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that is not a current member.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates an edge between a node and itself was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrTooFewNodes indicates FindNearest was called on a graph with fewer than two nodes.
	ErrTooFewNodes = errors.New("core: at least two nodes required")

	// ErrDimensionMismatch indicates a stimulus whose length differs from the node positions.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrInvariant indicates Validate found a broken structural invariant.
	ErrInvariant = errors.New("core: invariant violated")
)

// Default capacity bounds applied by NewGraph.
const (
	DefaultNodeMin = 2
	DefaultNodeMax = 100
)

// NodeID identifies a node within its Graph. IDs start at 1, grow
// monotonically and are never reused, so ascending ID order is insertion order.
type NodeID uint32

// EdgeID identifies an edge within its Graph, with the same guarantees as NodeID.
type EdgeID uint32

// Node is a prototype vector of the map.
type Node struct {
	// ID is the unique identifier for this Node.
	ID NodeID

	// Position is the node's location in data space. Policies adapt it in place.
	Position []float64

	// Error is the accumulated quantization error (GNG only).
	Error float64

	// GridPosition is the fixed lattice coordinate (SOM only); nil otherwise.
	GridPosition []int
}

// Edge is an undirected connection between two distinct nodes.
// From < To always holds; the pair is unordered.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// From and To are the endpoint IDs, From < To.
	From, To NodeID

	// Age counts steps since the edge was last confirmed (GNG only).
	Age int
}

// Other returns the endpoint opposite to id.
func (e *Edge) Other(id NodeID) NodeID {
	if e.From == id {
		return e.To
	}

	return e.From
}

// pairKey is the canonical unordered endpoint pair of an edge.
type pairKey struct{ lo, hi NodeID }

func makePair(a, b NodeID) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithNodeMin sets the minimum node count a policy seeds the graph with.
// Panics if n < 0.
func WithNodeMin(n int) GraphOption {
	if n < 0 {
		panic("core: WithNodeMin(n<0)")
	}
	return func(g *Graph) { g.nodeMin = n }
}

// WithNodeMax sets the hard node ceiling. AddNode refuses to grow past it.
// Panics if n < 1.
func WithNodeMax(n int) GraphOption {
	if n < 1 {
		panic("core: WithNodeMax(n<1)")
	}
	return func(g *Graph) { g.nodeMax = n }
}

// WithDistance sets the metric used by FindNearest. Panics on nil.
func WithDistance(fn distance.Func) GraphOption {
	if fn == nil {
		panic("core: WithDistance(nil)")
	}
	return func(g *Graph) { g.dist = fn }
}

// NodeOption configures a node when it is added.
type NodeOption func(n *Node)

// WithGridPosition attaches a lattice coordinate to the new node.
// The coordinate is copied.
func WithGridPosition(coord []int) NodeOption {
	return func(n *Node) {
		n.GridPosition = append([]int(nil), coord...)
	}
}

// Graph is the node/edge store shared by all learning policies.
//
// nodeSet and edgeSet keep live IDs in ascending (= insertion) order and
// drive every enumeration; adjacency maps a node to the IDs of its incident
// edges, so neighbor sets are always derived from the edge catalog.
//
// Graph has no internal locking. One map is trained by one goroutine; run
// independent maps on independent Graphs.
type Graph struct {
	// Configuration
	nodeMin int
	nodeMax int
	dist    distance.Func

	// Step counter advanced by the policies.
	timestep int

	// Storage
	nextNodeID NodeID
	nextEdgeID EdgeID
	nodes      map[NodeID]*Node
	edges      map[EdgeID]*Edge
	nodeSet    *roaring.Bitmap
	edgeSet    *roaring.Bitmap

	// adjacency[node] = incident edge IDs; pairs[{lo,hi}] = edge ID.
	adjacency map[NodeID]*roaring.Bitmap
	pairs     map[pairKey]EdgeID
}

// NewGraph creates an empty Graph. Defaults: node_min 2, node_max 100,
// Euclidean distance. Panics if the resolved node_min exceeds node_max.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodeMin:   DefaultNodeMin,
		nodeMax:   DefaultNodeMax,
		dist:      distance.Euclidean,
		nodes:     make(map[NodeID]*Node),
		edges:     make(map[EdgeID]*Edge),
		nodeSet:   roaring.New(),
		edgeSet:   roaring.New(),
		adjacency: make(map[NodeID]*roaring.Bitmap),
		pairs:     make(map[pairKey]EdgeID),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.nodeMin > g.nodeMax {
		panic("core: node_min exceeds node_max")
	}

	return g
}
