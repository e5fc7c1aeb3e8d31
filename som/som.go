// SPDX-License-Identifier: MIT
//
// File: som.go
// Role: SOM policy: lattice construction, neighbourhood adaptation, the
//       annealing schedule and Train.

package som

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/topomap/core"
	"github.com/katalvlaran/topomap/distance"
	"github.com/katalvlaran/topomap/gridgraph"
	"github.com/katalvlaran/topomap/learner"
)

// decay is the fraction eta and sigma lose after every step.
const decay = 0.005

// SOM is a Self-Organizing Map learner bound to its own Graph.
type SOM struct {
	cfg     Config
	data    *learner.Dataset
	g       *core.Graph
	lattice *gridgraph.Lattice
	set     learner.Settings
	log     *learner.Logger

	// cells[i] is the node at lattice index i; nil before Prepare.
	cells []*core.Node

	eta, sigma float64
}

var (
	_ learner.Policy = (*SOM)(nil)
	_ learner.Finite = (*SOM)(nil)
)

// New validates cfg and points and returns an unseeded learner.
// A lattice dimensionality above the data dimensionality is clamped to it.
func New(points [][]float64, cfg Config, opts ...learner.Option) (*SOM, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	data, err := learner.NewDataset(points)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", Name, err)
	}
	set := learner.NewSettings(opts...)
	log := set.Logger.WithPolicy(Name)

	if cfg.Dim > data.Dim() {
		log.Warn("lattice dimension clamped to data dimension", "dim", cfg.Dim, "data_dim", data.Dim())
		cfg.Dim = data.Dim()
	}
	lattice, err := gridgraph.NewLattice(cfg.NetworkSize, cfg.Dim)
	if err != nil {
		return nil, learner.ConfigErrorf(Name, "%v", err)
	}

	return &SOM{
		cfg:     cfg,
		data:    data,
		lattice: lattice,
		set:     set,
		log:     log,
		eta:     cfg.Eta,
		sigma:   cfg.Sigma,
		g: core.NewGraph(
			core.WithNodeMin(lattice.Len()),
			core.WithNodeMax(lattice.Len()),
			core.WithDistance(set.Distance),
		),
	}, nil
}

// Name returns "som".
func (m *SOM) Name() string { return Name }

// Graph returns the store this learner trains.
func (m *SOM) Graph() *core.Graph { return m.g }

// Config returns the effective parameters, with Dim already clamped.
func (m *SOM) Config() Config { return m.cfg }

// Lattice returns the grid the map is laid out on.
func (m *SOM) Lattice() *gridgraph.Lattice { return m.lattice }

// Eta returns the current, annealed learning rate.
func (m *SOM) Eta() float64 { return m.eta }

// Sigma returns the current, annealed neighbourhood radius.
func (m *SOM) Sigma() float64 { return m.sigma }

// Remaining reports how many Train calls still perform a step.
func (m *SOM) Remaining() int {
	return max(m.cfg.MaxIterations-m.g.Timestep()+1, 0)
}

// Prepare builds the lattice graph: one node per cell in lattice order, each
// placed uniformly at random inside the data bounding box and connected to
// its predecessor along every axis. The timestep is not advanced and no
// stimulus indices are reported.
func (m *SOM) Prepare() (learner.Seed, error) {
	if m.cells != nil {
		return learner.Seed{}, fmt.Errorf("%s: lattice already built", Name)
	}
	lo, hi := m.data.Bounds()
	m.cells = make([]*core.Node, m.lattice.Len())

	var seed learner.Seed
	for i := range m.cells {
		coord := m.lattice.Coordinate(i)
		n, ok := m.g.AddNode(learner.UniformIn(m.set.Rand, lo, hi), core.WithGridPosition(coord))
		if !ok {
			return learner.Seed{}, fmt.Errorf("%s: cell %v refused at node_max %d", Name, coord, m.g.NodeMax())
		}
		m.cells[i] = n
		for _, p := range m.lattice.Predecessors(coord) {
			if _, err := m.g.AddEdge(m.cells[p].ID, n.ID); err != nil {
				return learner.Seed{}, err
			}
		}
		seed.Nodes = append(seed.Nodes, n)
	}
	m.log.LogSeed(context.Background(), m.g.NodeCount(), m.g.EdgeCount())

	return seed, nil
}

// Adapt moves every cell within floor(sigma) grid units of the winner,
// winner included, by eta·h·(stimulus-pos) with a Gaussian kernel h over
// grid distance. Deltas follow lattice order.
func (m *SOM) Adapt(winner *core.Node, stimulus []float64) []learner.Delta {
	radius := max(math.Floor(m.sigma), 0)
	ball := m.lattice.Ball(winner.GridPosition, radius)
	deltas := make([]learner.Delta, 0, len(ball))

	for _, idx := range ball {
		c := m.cells[idx]
		gd := gridgraph.Distance(c.GridPosition, winner.GridPosition)
		h := math.Exp(-(gd * gd) / (2 * m.sigma * m.sigma))

		dw := distance.Toward(m.eta*h, stimulus, c.Position)
		distance.Apply(c.Position, dw)
		deltas = append(deltas, learner.Delta{Node: c, Shift: dw})
	}

	return deltas
}

// EdgeUpdate is a no-op: the lattice topology is static.
func (m *SOM) EdgeUpdate(_, _ *core.Node) error { return nil }

// NodeUpdate is a no-op: the lattice topology is static.
func (m *SOM) NodeUpdate(_, _ *core.Node, _ []float64) (*core.Node, error) { return nil, nil }

// Train runs one step on a random stimulus, anneals eta and sigma, and
// advances the timestep. Once the timestep exceeds max_iterations it returns
// learner.ErrDone without touching the map.
func (m *SOM) Train() (learner.Step, error) {
	if m.g.Timestep() > m.cfg.MaxIterations {
		return learner.Step{}, learner.ErrDone
	}
	x, idx := m.data.Sample(m.set.Rand, learner.SampleRandom, m.g.Timestep())

	step, err := learner.Execute(m, m.g, x, idx)
	m.log.LogStep(context.Background(), step, m.g, err)
	if err != nil {
		return learner.Step{}, fmt.Errorf("%s: %w", Name, err)
	}

	m.eta -= decay * m.eta
	m.sigma -= decay * m.sigma
	m.g.Advance(1)

	return step, nil
}

// Validate checks the structural invariants plus the SOM ones: once the
// lattice exists, the graph holds exactly its cells and edges and every
// node keeps the coordinate of its cell.
func (m *SOM) Validate() error {
	if err := m.g.Validate(); err != nil {
		return err
	}
	if m.cells == nil {
		return nil
	}
	if m.g.NodeCount() != m.lattice.Len() || m.g.EdgeCount() != m.lattice.EdgeCount() {
		return fmt.Errorf("%w: %s lattice has %d nodes and %d edges, want %d and %d",
			core.ErrInvariant, Name, m.g.NodeCount(), m.g.EdgeCount(), m.lattice.Len(), m.lattice.EdgeCount())
	}
	for i, n := range m.cells {
		if !m.g.HasNode(n.ID) {
			return fmt.Errorf("%w: %s cell %d lost its node", core.ErrInvariant, Name, i)
		}
		if idx, ok := m.lattice.Index(n.GridPosition); !ok || idx != i {
			return fmt.Errorf("%w: %s node %d moved off cell %d", core.ErrInvariant, Name, n.ID, i)
		}
	}

	return nil
}
