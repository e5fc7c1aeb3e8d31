// SPDX-License-Identifier: MIT
//
// File: itm.go
// Role: ITM policy: seeding, the three phases and Train.

package itm

import (
	"context"
	"fmt"

	"github.com/katalvlaran/topomap/core"
	"github.com/katalvlaran/topomap/distance"
	"github.com/katalvlaran/topomap/learner"
)

// nodeMin is fixed: ITM always seeds with the first two samples.
const nodeMin = 2

// ITM is an Instantaneous Topological Map learner bound to its own Graph.
type ITM struct {
	cfg      Config
	data     *learner.Dataset
	g        *core.Graph
	set      learner.Settings
	log      *learner.Logger
	sampling learner.Sampling

	rMax    float64
	trained bool
}

var _ learner.Policy = (*ITM)(nil)

// New validates cfg and points and returns an unseeded learner.
// The stream must hold at least two points.
func New(points [][]float64, cfg Config, opts ...learner.Option) (*ITM, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	data, err := learner.NewDataset(points)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", Name, err)
	}
	if data.Len() < nodeMin {
		return nil, fmt.Errorf("%s: %w: need at least %d points, got %d", Name, learner.ErrEmptyData, nodeMin, data.Len())
	}
	sampling, _ := learner.ParseSampling(cfg.Sampling)
	set := learner.NewSettings(opts...)

	return &ITM{
		cfg:      cfg,
		data:     data,
		set:      set,
		log:      set.Logger.WithPolicy(Name),
		sampling: sampling,
		rMax:     cfg.RMax,
		g: core.NewGraph(
			core.WithNodeMin(nodeMin),
			core.WithNodeMax(cfg.NodeMax),
			core.WithDistance(set.Distance),
		),
	}, nil
}

// Name returns "itm".
func (m *ITM) Name() string { return Name }

// Graph returns the store this learner trains.
func (m *ITM) Graph() *core.Graph { return m.g }

// Config returns the parameters the learner was built with.
func (m *ITM) Config() Config { return m.cfg }

// RMax returns the resolved local resolution. Before Prepare it is the
// configured value (0 for automatic).
func (m *ITM) RMax() float64 { return m.rMax }

// Prepare resolves r_max when it is automatic, seeds the graph with the first
// two samples and advances the timestep by two.
func (m *ITM) Prepare() (learner.Seed, error) {
	if m.rMax == 0 {
		m.rMax = 0.5 * m.data.MeanStepDistance(m.set.Distance)
		m.log.Debug("r_max derived from data", "r_max", m.rMax)
	}

	var seed learner.Seed
	for i := 0; i < nodeMin; i++ {
		n, _ := m.g.AddNode(m.data.At(i))
		seed.Nodes = append(seed.Nodes, n)
		seed.StimulusIndices = append(seed.StimulusIndices, i)
	}
	m.g.Advance(nodeMin)
	m.log.LogSeed(context.Background(), m.g.NodeCount(), m.g.EdgeCount())

	return seed, nil
}

// Adapt moves only the winner by eta toward stimulus.
func (m *ITM) Adapt(winner *core.Node, stimulus []float64) []learner.Delta {
	dw := distance.Toward(m.cfg.Eta, stimulus, winner.Position)
	distance.Apply(winner.Position, dw)

	return []learner.Delta{{Node: winner, Shift: dw}}
}

// EdgeUpdate connects winner and second, removes every winner edge whose far
// end c fails the Thales test (winner-second)·(c-second) < 0, then prunes
// edgeless nodes.
func (m *ITM) EdgeUpdate(winner, second *core.Node) error {
	if _, err := m.g.AddEdge(winner.ID, second.ID); err != nil {
		return err
	}

	for _, e := range m.g.IncidentEdges(winner.ID) {
		c := e.Other(winner.ID)
		if c == second.ID {
			continue
		}
		cn, _ := m.g.Node(c)
		if distance.Thales(second.Position, winner.Position, cn.Position) >= 0 {
			continue
		}
		if err := m.g.RemoveEdge(e.ID); err != nil {
			return err
		}
	}

	m.log.LogPrune(context.Background(), m.g.Timestep(), m.g.PruneEdgeless())

	return nil
}

// NodeUpdate inserts a node at stimulus, linked to winner, when stimulus lies
// between winner and second (Thales) and farther than r_max from winner.
// Independently, second is removed when it sits closer than r_max/2 to winner.
func (m *ITM) NodeUpdate(winner, second *core.Node, stimulus []float64) (*core.Node, error) {
	ctx := context.Background()

	var inserted *core.Node
	if distance.Thales(stimulus, winner.Position, second.Position) > 0 &&
		m.g.Distance(stimulus, winner.Position) > m.rMax {
		if m.g.Full() {
			m.log.LogCapacity(ctx, m.g.Timestep(), m.g.NodeMax())
		} else {
			n, ok := m.g.AddNode(stimulus)
			if !ok {
				return nil, fmt.Errorf("%s: node refused below node_max %d", Name, m.g.NodeMax())
			}
			if _, err := m.g.AddEdge(n.ID, winner.ID); err != nil {
				return nil, err
			}
			inserted = n
			m.log.LogInsert(ctx, m.g.Timestep(), n.ID)
		}
	}

	if m.g.Distance(winner.Position, second.Position) < 0.5*m.rMax {
		if err := m.g.RemoveNode(second.ID); err != nil {
			return nil, err
		}
		m.log.LogRemove(ctx, m.g.Timestep(), second.ID, "collapse")
		m.log.LogPrune(ctx, m.g.Timestep(), m.prune(winner))
	}

	return inserted, nil
}

// prune removes nodes the collapse left edgeless. The winner is spared when
// no edge remains at all, so the map never empties.
func (m *ITM) prune(winner *core.Node) []core.NodeID {
	if m.g.EdgeCount() == 0 {
		return m.g.PruneEdgeless(winner.ID)
	}

	return m.g.PruneEdgeless()
}

// Train advances the timestep, selects a stimulus and runs one step.
// A map reduced to one node by a collapse regrows toward the stimulus.
func (m *ITM) Train() (learner.Step, error) {
	t := m.g.Advance(1)
	x, idx := m.data.Sample(m.set.Rand, m.sampling, t-1)

	var (
		step learner.Step
		err  error
	)
	if m.g.NodeCount() == 1 {
		step, err = m.regrow(x, idx)
	} else {
		step, err = learner.Execute(m, m.g, x, idx)
	}
	m.log.LogStep(context.Background(), step, m.g, err)
	if err != nil {
		return learner.Step{}, fmt.Errorf("%s: %w", Name, err)
	}
	m.trained = true

	return step, nil
}

// regrow attaches a node at stimulus to the sole survivor.
func (m *ITM) regrow(stimulus []float64, idx int) (learner.Step, error) {
	survivor := m.g.Nodes()[0]
	n, ok := m.g.AddNode(stimulus)
	if !ok {
		return learner.Step{}, core.ErrTooFewNodes
	}
	if _, err := m.g.AddEdge(survivor.ID, n.ID); err != nil {
		return learner.Step{}, err
	}
	m.log.LogInsert(context.Background(), m.g.Timestep(), n.ID)

	return learner.Step{
		Timestep:      m.g.Timestep(),
		Stimulus:      stimulus,
		StimulusIndex: idx,
		Winner:        survivor,
		NewNode:       n,
	}, nil
}

// Validate checks the structural invariants plus the ITM one: once a step
// has completed and at least two nodes exist, no node is edgeless.
func (m *ITM) Validate() error {
	if err := m.g.Validate(); err != nil {
		return err
	}
	if !m.trained || m.g.NodeCount() < nodeMin {
		return nil
	}
	for _, n := range m.g.Nodes() {
		if m.g.Degree(n.ID) == 0 {
			return fmt.Errorf("%w: %s node %d has no edges", core.ErrInvariant, Name, n.ID)
		}
	}

	return nil
}
