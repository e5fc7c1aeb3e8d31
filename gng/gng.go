// SPDX-License-Identifier: MIT
//
// File: gng.go
// Role: GNG policy: seeding, the three phases and Train.
// Determinism:
//   - Given a seeded learner.Option, stimulus draws and therefore the whole
//     run are reproducible; all scans walk insertion order.

package gng

import (
	"context"
	"fmt"

	"github.com/katalvlaran/topomap/core"
	"github.com/katalvlaran/topomap/distance"
	"github.com/katalvlaran/topomap/learner"
)

// GNG is a Growing Neural Gas learner bound to its own Graph.
type GNG struct {
	cfg  Config
	data *learner.Dataset
	g    *core.Graph
	set  learner.Settings
	log  *learner.Logger

	// q is the tracked node of maximum accumulated error; nil until the
	// first NodeUpdate.
	q *core.Node
	// trained reports whether at least one Train step completed.
	trained bool
}

var _ learner.Policy = (*GNG)(nil)

// New validates cfg and points and returns an unseeded learner.
// No graph state exists when an error is returned.
func New(points [][]float64, cfg Config, opts ...learner.Option) (*GNG, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	data, err := learner.NewDataset(points)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", Name, err)
	}
	set := learner.NewSettings(opts...)

	return &GNG{
		cfg:  cfg,
		data: data,
		set:  set,
		log:  set.Logger.WithPolicy(Name),
		g: core.NewGraph(
			core.WithNodeMin(cfg.NodeMin),
			core.WithNodeMax(cfg.NodeMax),
			core.WithDistance(set.Distance),
		),
	}, nil
}

// Name returns "gng".
func (m *GNG) Name() string { return Name }

// Graph returns the store this learner trains.
func (m *GNG) Graph() *core.Graph { return m.g }

// Config returns the parameters the learner was built with.
func (m *GNG) Config() Config { return m.cfg }

// Prepare adds node_min nodes at randomly drawn data points and advances the
// timestep by node_min.
func (m *GNG) Prepare() (learner.Seed, error) {
	var seed learner.Seed
	for i := 0; i < m.cfg.NodeMin; i++ {
		x, idx := m.data.Sample(m.set.Rand, learner.SampleRandom, i)
		n, ok := m.g.AddNode(x)
		if !ok {
			return learner.Seed{}, fmt.Errorf("%s: seed node %d refused at node_max %d", Name, i, m.g.NodeMax())
		}
		seed.Nodes = append(seed.Nodes, n)
		seed.StimulusIndices = append(seed.StimulusIndices, idx)
	}
	m.g.Advance(m.cfg.NodeMin)
	m.log.LogSeed(context.Background(), m.g.NodeCount(), m.g.EdgeCount())

	return seed, nil
}

// Adapt moves the winner by eta_n and each of its neighbours by eta_c toward
// stimulus. The winner's delta comes first, neighbours follow in edge order.
func (m *GNG) Adapt(winner *core.Node, stimulus []float64) []learner.Delta {
	neighbors := m.g.Neighbors(winner.ID)
	deltas := make([]learner.Delta, 0, 1+len(neighbors))

	dw := distance.Toward(m.cfg.EtaN, stimulus, winner.Position)
	distance.Apply(winner.Position, dw)
	deltas = append(deltas, learner.Delta{Node: winner, Shift: dw})

	for _, c := range neighbors {
		dw = distance.Toward(m.cfg.EtaC, stimulus, c.Position)
		distance.Apply(c.Position, dw)
		deltas = append(deltas, learner.Delta{Node: c, Shift: dw})
	}

	return deltas
}

// EdgeUpdate ages every edge at the winner, then resets (or creates) the
// winner–second edge at age 0, removes edges older than age_max and prunes
// edgeless nodes.
func (m *GNG) EdgeUpdate(winner, second *core.Node) error {
	// Aging runs before the reset, so the traversed edge leaves the step at
	// age 0 rather than 1 and survives one step longer than in reset-first
	// order.
	for _, e := range m.g.IncidentEdges(winner.ID) {
		e.Age++
	}

	e, err := m.g.AddEdge(winner.ID, second.ID)
	if err != nil {
		return err
	}
	e.Age = 0

	for _, e := range m.g.IncidentEdges(winner.ID) {
		if e.Age <= m.cfg.AgeMax {
			continue
		}
		if err = m.g.RemoveEdge(e.ID); err != nil {
			return err
		}
	}

	m.log.LogPrune(context.Background(), m.g.Timestep(), m.g.PruneEdgeless())

	return nil
}

// NodeUpdate accumulates the winner's squared error, inserts a node between
// q and p every node_interval steps and decays all errors by beta.
// Returns the inserted node, or nil when no insertion happened (including a
// capacity refusal).
func (m *GNG) NodeUpdate(winner, second *core.Node, stimulus []float64) (*core.Node, error) {
	d := m.g.Distance(winner.Position, stimulus)
	winner.Error += d * d

	if m.q != nil && !m.g.HasNode(m.q.ID) {
		m.q = nil
	}
	if m.q == nil || winner.Error >= m.q.Error {
		m.q = winner
	}

	var inserted *core.Node
	if m.g.Timestep()%m.cfg.NodeInterval == 0 {
		var err error
		if inserted, err = m.insert(); err != nil {
			return nil, err
		}
	}

	for _, n := range m.g.Nodes() {
		n.Error -= m.cfg.Beta * n.Error
	}

	return inserted, nil
}

// insert performs the growth rule. It returns (nil, nil) when there is no
// usable q/p pair or the graph is at capacity.
func (m *GNG) insert() (*core.Node, error) {
	if m.g.Full() {
		m.log.LogCapacity(context.Background(), m.g.Timestep(), m.g.NodeMax())
		return nil, nil
	}

	q := m.maxError()
	if q == nil {
		return nil, nil
	}

	// Lowest-error neighbour; the first one met wins ties.
	var p *core.Node
	for _, c := range m.g.Neighbors(q.ID) {
		if p == nil || c.Error < p.Error {
			p = c
		}
	}

	r, ok := m.g.AddNode(distance.Midpoint(q.Position, p.Position))
	if !ok {
		return nil, fmt.Errorf("%s: node refused below node_max %d", Name, m.g.NodeMax())
	}

	qp, ok := m.g.EdgeBetween(q.ID, p.ID)
	if !ok {
		return nil, fmt.Errorf("%s: q-p edge %d-%d: %w", Name, q.ID, p.ID, core.ErrEdgeNotFound)
	}
	if err := m.g.RemoveEdge(qp.ID); err != nil {
		return nil, err
	}
	if _, err := m.g.AddEdge(q.ID, r.ID); err != nil {
		return nil, err
	}
	if _, err := m.g.AddEdge(p.ID, r.ID); err != nil {
		return nil, err
	}

	q.Error -= m.cfg.Alpha * q.Error
	p.Error -= m.cfg.Alpha * p.Error
	r.Error = 0.5 * (q.Error + p.Error)
	m.log.LogInsert(context.Background(), m.g.Timestep(), r.ID)

	return r, nil
}

// maxError returns the tracked q node when it is still usable, otherwise
// rescans for the maximum-error node that has at least one neighbour
// (">=" so the latest node in insertion order wins ties).
func (m *GNG) maxError() *core.Node {
	if m.q != nil && m.g.HasNode(m.q.ID) && m.g.Degree(m.q.ID) > 0 {
		return m.q
	}

	m.q = nil
	for _, n := range m.g.Nodes() {
		if m.g.Degree(n.ID) == 0 {
			continue
		}
		if m.q == nil || n.Error >= m.q.Error {
			m.q = n
		}
	}

	return m.q
}

// Train advances the timestep, draws a random stimulus and runs one step.
func (m *GNG) Train() (learner.Step, error) {
	m.g.Advance(1)
	x, idx := m.data.Sample(m.set.Rand, learner.SampleRandom, m.g.Timestep())

	step, err := learner.Execute(m, m.g, x, idx)
	m.log.LogStep(context.Background(), step, m.g, err)
	if err != nil {
		return learner.Step{}, fmt.Errorf("%s: %w", Name, err)
	}
	m.trained = true

	return step, nil
}

// Validate checks the structural invariants plus the GNG ones: no edge
// older than age_max and, once a step has completed, no edgeless node.
func (m *GNG) Validate() error {
	if err := m.g.Validate(); err != nil {
		return err
	}
	for _, e := range m.g.Edges() {
		if e.Age > m.cfg.AgeMax {
			return fmt.Errorf("%w: %s edge %d has age %d > age_max %d", core.ErrInvariant, Name, e.ID, e.Age, m.cfg.AgeMax)
		}
	}
	if !m.trained || m.g.NodeCount() < m.g.NodeMin() {
		return nil
	}
	for _, n := range m.g.Nodes() {
		if m.g.Degree(n.ID) == 0 {
			return fmt.Errorf("%w: %s node %d has no edges", core.ErrInvariant, Name, n.ID)
		}
	}

	return nil
}
