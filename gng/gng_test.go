// SPDX-License-Identifier: MIT

package gng_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topomap/core"
	"github.com/katalvlaran/topomap/gng"
	"github.com/katalvlaran/topomap/learner"
)

// newBare builds a learner whose graph is populated by hand instead of Prepare.
func newBare(t *testing.T, cfg gng.Config, points [][]float64) *gng.GNG {
	t.Helper()
	m, err := gng.New(points, cfg, learner.WithSeed(1))
	require.NoError(t, err)

	return m
}

func add(t *testing.T, g *core.Graph, pos ...float64) *core.Node {
	t.Helper()
	n, ok := g.AddNode(pos)
	require.True(t, ok)

	return n
}

func cloud(seed int64, n, dim int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, dim)
		for a := range pts[i] {
			pts[i][a] = rng.Float64()
		}
	}

	return pts
}

func TestNew_RejectsEtaOrder(t *testing.T) {
	cfg := gng.DefaultConfig()
	cfg.EtaN, cfg.EtaC = 0.3, 0.5

	m, err := gng.New([][]float64{{0}}, cfg)
	require.ErrorIs(t, err, learner.ErrInvalidConfig)
	assert.Nil(t, m)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, gng.DefaultConfig().Validate())

	cases := map[string]func(*gng.Config){
		"eta equal":     func(c *gng.Config) { c.EtaC = c.EtaN },
		"eta_n above 1": func(c *gng.Config) { c.EtaN = 1.5 },
		"alpha zero":    func(c *gng.Config) { c.Alpha = 0 },
		"beta one":      func(c *gng.Config) { c.Beta = 1 },
		"age_max zero":  func(c *gng.Config) { c.AgeMax = 0 },
		"interval zero": func(c *gng.Config) { c.NodeInterval = 0 },
		"node_min one":  func(c *gng.Config) { c.NodeMin = 1 },
		"max below min": func(c *gng.Config) { c.NodeMax = 1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := gng.DefaultConfig()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), learner.ErrInvalidConfig)
		})
	}
}

func TestNew_RejectsBadData(t *testing.T) {
	_, err := gng.New(nil, gng.DefaultConfig())
	require.ErrorIs(t, err, learner.ErrEmptyData)
}

func TestPrepare_SeedsFromData(t *testing.T) {
	pts := [][]float64{{1, 1}, {2, 2}, {3, 3}}
	m := newBare(t, gng.DefaultConfig(), pts)

	seed, err := m.Prepare()
	require.NoError(t, err)
	require.Len(t, seed.Nodes, 2)
	require.Len(t, seed.StimulusIndices, 2)
	for i, n := range seed.Nodes {
		assert.Equal(t, pts[seed.StimulusIndices[i]], n.Position)
	}
	assert.Equal(t, 2, m.Graph().Timestep())
	assert.Zero(t, m.Graph().EdgeCount())
}

func TestStep_TwoNodeScenario(t *testing.T) {
	m := newBare(t, gng.DefaultConfig(), [][]float64{{0, 0, 0}, {1, 1, 1}})
	g := m.Graph()
	a := add(t, g, 0, 0, 0)
	b := add(t, g, 1, 1, 1)
	g.Advance(3)

	step, err := learner.Execute(m, g, []float64{0, 0, 0}, 0)
	require.NoError(t, err)

	assert.Same(t, a, step.Winner)
	assert.Same(t, b, step.Second)
	require.Len(t, step.Deltas, 1)
	assert.Equal(t, []float64{0, 0, 0}, step.Deltas[0].Shift)
	assert.Equal(t, []float64{0, 0, 0}, a.Position)

	e, ok := g.EdgeBetween(a.ID, b.ID)
	require.True(t, ok)
	assert.Zero(t, e.Age)
	assert.Nil(t, step.NewNode)
}

func TestAdapt_MovesWinnerAndNeighbors(t *testing.T) {
	m := newBare(t, gng.DefaultConfig(), [][]float64{{0}})
	g := m.Graph()
	w := add(t, g, 0)
	c := add(t, g, 10)
	far := add(t, g, 100)
	_, err := g.AddEdge(w.ID, c.ID)
	require.NoError(t, err)

	deltas := m.Adapt(w, []float64{1})
	require.Len(t, deltas, 2)
	assert.InDelta(t, 0.7, w.Position[0], 1e-12)
	assert.InDelta(t, 10-0.4*9, c.Position[0], 1e-12)
	assert.Equal(t, []float64{100}, far.Position)
	assert.Same(t, c, deltas[1].Node)
	assert.InDelta(t, -3.6, deltas[1].Shift[0], 1e-12)
}

func TestEdgeUpdate_ResetsTraversedEdge(t *testing.T) {
	m := newBare(t, gng.DefaultConfig(), [][]float64{{0}})
	g := m.Graph()
	w := add(t, g, 0)
	s := add(t, g, 1)
	c := add(t, g, 2)
	ws, err := g.AddEdge(w.ID, s.ID)
	require.NoError(t, err)
	wc, err := g.AddEdge(w.ID, c.ID)
	require.NoError(t, err)
	ws.Age, wc.Age = 4, 2

	require.NoError(t, m.EdgeUpdate(w, s))
	assert.Zero(t, ws.Age)
	assert.Equal(t, 3, wc.Age)
}

func TestEdgeUpdate_AgesBeforeReset(t *testing.T) {
	cfg := gng.DefaultConfig()
	m := newBare(t, cfg, [][]float64{{0}})
	g := m.Graph()
	w := add(t, g, 0)
	s := add(t, g, 1)
	c := add(t, g, 2)
	ws, err := g.AddEdge(w.ID, s.ID)
	require.NoError(t, err)
	wc, err := g.AddEdge(w.ID, c.ID)
	require.NoError(t, err)
	ws.Age, wc.Age = cfg.AgeMax, cfg.AgeMax-1

	// At age_max the traversed edge would be dropped if it were aged after
	// the reset; here it is reset to 0 and kept.
	require.NoError(t, m.EdgeUpdate(w, s))
	_, ok := g.EdgeBetween(w.ID, s.ID)
	require.True(t, ok)
	assert.Zero(t, ws.Age)
	assert.Equal(t, cfg.AgeMax, wc.Age)

	// A freshly created winner-second edge also starts the next step at 0.
	require.NoError(t, m.EdgeUpdate(w, c))
	assert.Zero(t, wc.Age)
	assert.Equal(t, 1, ws.Age)
}

func TestEdgeUpdate_DropsStaleEdgesAndPrunes(t *testing.T) {
	m := newBare(t, gng.DefaultConfig(), [][]float64{{0}})
	g := m.Graph()
	w := add(t, g, 0)
	s := add(t, g, 1)
	c := add(t, g, 2)
	wc, err := g.AddEdge(w.ID, c.ID)
	require.NoError(t, err)
	wc.Age = 5

	require.NoError(t, m.EdgeUpdate(w, s))
	_, ok := g.EdgeBetween(w.ID, c.ID)
	assert.False(t, ok)
	assert.False(t, g.HasNode(c.ID), "edgeless node must be pruned")
	assert.Equal(t, 2, g.NodeCount())
	require.NoError(t, m.Validate())
}

func TestNodeUpdate_ErrorDecay(t *testing.T) {
	cfg := gng.DefaultConfig()
	m := newBare(t, cfg, [][]float64{{0}})
	g := m.Graph()
	w := add(t, g, 0)
	s := add(t, g, 3)
	o := add(t, g, 9)
	w.Error, s.Error, o.Error = 1, 2, 0
	g.Advance(3)

	n, err := m.NodeUpdate(w, s, []float64{2})
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.InDelta(t, (1+4)*(1-cfg.Beta), w.Error, 1e-12)
	assert.InDelta(t, 2*(1-cfg.Beta), s.Error, 1e-12)
	assert.Zero(t, o.Error)
}

// qpGraph builds q–p with q at 0 (error 10) and p at 2 (error 4) and runs one
// insertion step presenting a stimulus at q.
func qpStep(t *testing.T, cfg gng.Config) (*gng.GNG, *core.Node, *core.Node, learner.Step) {
	t.Helper()
	m := newBare(t, cfg, [][]float64{{0}, {2}})
	g := m.Graph()
	q := add(t, g, 0)
	p := add(t, g, 2)
	_, err := g.AddEdge(q.ID, p.ID)
	require.NoError(t, err)
	q.Error, p.Error = 10, 4
	g.Advance(4)

	step, err := learner.Execute(m, g, []float64{0}, 0)
	require.NoError(t, err)

	return m, q, p, step
}

func TestNodeUpdate_InsertsBetweenQAndP(t *testing.T) {
	m, q, p, step := qpStep(t, gng.DefaultConfig())
	g := m.Graph()

	r := step.NewNode
	require.NotNil(t, r)
	assert.InDelta(t, 1.2, p.Position[0], 1e-12)
	assert.InDelta(t, 0.6, r.Position[0], 1e-12)

	_, ok := g.EdgeBetween(q.ID, p.ID)
	assert.False(t, ok)
	_, ok = g.EdgeBetween(q.ID, r.ID)
	assert.True(t, ok)
	_, ok = g.EdgeBetween(p.ID, r.ID)
	assert.True(t, ok)

	assert.InDelta(t, 10*0.85*0.9, q.Error, 1e-12)
	assert.InDelta(t, 4*0.85*0.9, p.Error, 1e-12)
	assert.InDelta(t, 0.5*(8.5+3.4)*0.9, r.Error, 1e-12)
	require.NoError(t, m.Validate())
}

func TestNodeUpdate_CapacityRefusalIsSilent(t *testing.T) {
	cfg := gng.DefaultConfig()
	cfg.NodeMax = 2
	m, q, p, step := qpStep(t, cfg)
	g := m.Graph()

	assert.Nil(t, step.NewNode)
	assert.Equal(t, 2, g.NodeCount())
	_, ok := g.EdgeBetween(q.ID, p.ID)
	assert.True(t, ok)
	assert.InDelta(t, 9, q.Error, 1e-12)
	assert.InDelta(t, 3.6, p.Error, 1e-12)
}

func TestTrain_RequiresPrepare(t *testing.T) {
	m := newBare(t, gng.DefaultConfig(), [][]float64{{0}})
	_, err := m.Train()
	require.ErrorIs(t, err, core.ErrTooFewNodes)
}

func TestTrain_InvariantsAndBoundedGrowth(t *testing.T) {
	cfg := gng.DefaultConfig()
	cfg.NodeMax = 20
	for seed := int64(1); seed <= 5; seed++ {
		m, err := gng.New(cloud(seed, 200, 2), cfg, learner.WithSeed(seed))
		require.NoError(t, err)
		_, err = m.Prepare()
		require.NoError(t, err)

		for i := 0; i < 400; i++ {
			_, err = m.Train()
			require.NoError(t, err)
			require.NoError(t, m.Validate(), "seed %d step %d", seed, i)
			require.LessOrEqual(t, m.Graph().NodeCount(), cfg.NodeMax)
		}
		assert.Greater(t, m.Graph().NodeCount(), cfg.NodeMin, "map should grow")
	}
}

func TestTrain_Deterministic(t *testing.T) {
	pts := cloud(3, 100, 3)
	run := func() [][]float64 {
		m, err := gng.New(pts, gng.DefaultConfig(), learner.WithSeed(42))
		require.NoError(t, err)
		_, err = m.Prepare()
		require.NoError(t, err)
		for i := 0; i < 150; i++ {
			_, err = m.Train()
			require.NoError(t, err)
		}
		var out [][]float64
		for _, n := range m.Graph().Nodes() {
			out = append(out, n.Position)
		}

		return out
	}
	assert.Equal(t, run(), run())
}
