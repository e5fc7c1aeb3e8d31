// SPDX-License-Identifier: MIT

package som_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/topomap/learner"
	"github.com/katalvlaran/topomap/som"
)

func square(seed int64, n int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = []float64{rng.Float64(), rng.Float64()}
	}

	return pts
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, som.DefaultConfig().Validate())

	cases := map[string]func(*som.Config){
		"dim four":        func(c *som.Config) { c.Dim = 4 },
		"dim zero":        func(c *som.Config) { c.Dim = 0 },
		"size one":        func(c *som.Config) { c.NetworkSize = 1 },
		"sigma zero":      func(c *som.Config) { c.Sigma = 0 },
		"eta above one":   func(c *som.Config) { c.Eta = 2 },
		"negative budget": func(c *som.Config) { c.MaxIterations = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := som.DefaultConfig()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), learner.ErrInvalidConfig)
		})
	}
}

func TestNew_RejectsDimFour(t *testing.T) {
	cfg := som.DefaultConfig()
	cfg.Dim = 4

	m, err := som.New(square(1, 10), cfg)
	require.ErrorIs(t, err, learner.ErrInvalidConfig)
	assert.Nil(t, m)
}

func TestNew_ClampsDimToData(t *testing.T) {
	m, err := som.New(square(1, 10), som.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, m.Config().Dim)
	assert.Equal(t, 49, m.Lattice().Len())
}

func TestPrepare_TwoCellLine(t *testing.T) {
	cfg := som.DefaultConfig()
	cfg.NetworkSize, cfg.Dim = 2, 1

	m, err := som.New([][]float64{{0}, {1}}, cfg, learner.WithSeed(1))
	require.NoError(t, err)
	seed, err := m.Prepare()
	require.NoError(t, err)

	g := m.Graph()
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []int{0}, seed.Nodes[0].GridPosition)
	assert.Equal(t, []int{1}, seed.Nodes[1].GridPosition)
	_, ok := g.EdgeBetween(seed.Nodes[0].ID, seed.Nodes[1].ID)
	assert.True(t, ok)
	assert.Empty(t, seed.StimulusIndices)
	assert.Zero(t, g.Timestep())

	_, err = m.Prepare()
	require.Error(t, err)
}

func TestPrepare_PositionsInsideBoundingBox(t *testing.T) {
	pts := [][]float64{{-1, 2}, {3, 4}, {0, 3}}
	cfg := som.DefaultConfig()
	cfg.NetworkSize, cfg.Dim = 3, 2

	m, err := som.New(pts, cfg, learner.WithSeed(2))
	require.NoError(t, err)
	_, err = m.Prepare()
	require.NoError(t, err)

	for _, n := range m.Graph().Nodes() {
		assert.True(t, n.Position[0] >= -1 && n.Position[0] <= 3, "x=%v", n.Position[0])
		assert.True(t, n.Position[1] >= 2 && n.Position[1] <= 4, "y=%v", n.Position[1])
	}
}

func TestAdapt_GaussianNeighbourhood(t *testing.T) {
	cfg := som.DefaultConfig()
	cfg.NetworkSize, cfg.Dim, cfg.Sigma, cfg.Eta = 5, 1, 1.5, 0.5

	m, err := som.New([][]float64{{0}, {1}}, cfg, learner.WithSeed(3))
	require.NoError(t, err)
	seed, err := m.Prepare()
	require.NoError(t, err)
	for _, n := range seed.Nodes {
		n.Position[0] = 0
	}

	winner := seed.Nodes[2]
	deltas := m.Adapt(winner, []float64{1})
	require.Len(t, deltas, 3, "radius floor(1.5)=1 covers cells 1..3")

	hNeighbour := math.Exp(-1 / (2 * 1.5 * 1.5))
	assert.Same(t, seed.Nodes[1], deltas[0].Node)
	assert.InDelta(t, 0.5*hNeighbour, deltas[0].Shift[0], 1e-12)
	assert.Same(t, winner, deltas[1].Node)
	assert.InDelta(t, 0.5, winner.Position[0], 1e-12)
	assert.InDelta(t, 0.5*hNeighbour, seed.Nodes[3].Position[0], 1e-12)
	assert.Zero(t, seed.Nodes[0].Position[0])
	assert.Zero(t, seed.Nodes[4].Position[0])
}

func TestAdapt_SmallSigmaMovesWinnerOnly(t *testing.T) {
	cfg := som.DefaultConfig()
	cfg.NetworkSize, cfg.Dim, cfg.Sigma = 3, 1, 0.5

	m, err := som.New([][]float64{{0}, {1}}, cfg, learner.WithSeed(3))
	require.NoError(t, err)
	seed, err := m.Prepare()
	require.NoError(t, err)

	deltas := m.Adapt(seed.Nodes[0], []float64{1})
	require.Len(t, deltas, 1)
	assert.Same(t, seed.Nodes[0], deltas[0].Node)
}

func TestTrain_StopsAfterBudget(t *testing.T) {
	cfg := som.DefaultConfig()
	cfg.NetworkSize, cfg.Dim, cfg.MaxIterations = 3, 2, 3

	m, err := som.New(square(4, 20), cfg, learner.WithSeed(4))
	require.NoError(t, err)
	_, err = m.Prepare()
	require.NoError(t, err)

	assert.Equal(t, 4, m.Remaining())
	for i := 0; i <= cfg.MaxIterations; i++ {
		step, err := m.Train()
		require.NoError(t, err)
		assert.Equal(t, i, step.Timestep)
		assert.Nil(t, step.NewNode)
	}
	assert.Zero(t, m.Remaining())
	step, err := m.Train()
	require.ErrorIs(t, err, learner.ErrDone)
	assert.Nil(t, step.Winner)
	assert.Empty(t, step.Deltas)
}

func TestTrain_Anneals(t *testing.T) {
	cfg := som.DefaultConfig()
	cfg.NetworkSize, cfg.Dim = 3, 1

	m, err := som.New([][]float64{{0}, {1}}, cfg, learner.WithSeed(5))
	require.NoError(t, err)
	_, err = m.Prepare()
	require.NoError(t, err)

	_, err = m.Train()
	require.NoError(t, err)
	assert.InDelta(t, cfg.Eta*0.995, m.Eta(), 1e-12)
	assert.InDelta(t, cfg.Sigma*0.995, m.Sigma(), 1e-12)
	assert.Equal(t, 1, m.Graph().Timestep())
}

// StaticTopologySuite checks that training never alters the lattice.
type StaticTopologySuite struct {
	suite.Suite
	m *som.SOM
}

func (s *StaticTopologySuite) SetupTest() {
	cfg := som.DefaultConfig()
	cfg.NetworkSize, cfg.Dim, cfg.Sigma, cfg.MaxIterations = 4, 2, 2, 300

	m, err := som.New(square(6, 100), cfg, learner.WithSeed(6))
	s.Require().NoError(err)
	_, err = m.Prepare()
	s.Require().NoError(err)
	s.m = m
}

func (s *StaticTopologySuite) TestCountsMatchLattice() {
	g := s.m.Graph()
	s.Equal(16, g.NodeCount())
	s.Equal(24, g.EdgeCount())
	s.NoError(s.m.Validate())
}

func (s *StaticTopologySuite) TestTrainingKeepsTopology() {
	g := s.m.Graph()
	edges := g.Edges()
	for {
		_, err := s.m.Train()
		if err != nil {
			s.Require().ErrorIs(err, learner.ErrDone)
			break
		}
		s.Require().NoError(s.m.Validate())
	}
	s.Equal(301, g.Timestep())
	s.Equal(edges, g.Edges())
	s.Equal(16, g.NodeCount())
}

func TestStaticTopologySuite(t *testing.T) {
	suite.Run(t, new(StaticTopologySuite))
}

func TestLattice3D(t *testing.T) {
	cfg := som.DefaultConfig()
	cfg.NetworkSize = 3
	pts := [][]float64{{0, 0, 0}, {1, 1, 1}}

	m, err := som.New(pts, cfg, learner.WithSeed(7))
	require.NoError(t, err)
	seed, err := m.Prepare()
	require.NoError(t, err)

	assert.Equal(t, 27, m.Graph().NodeCount())
	assert.Equal(t, 54, m.Graph().EdgeCount())
	assert.Equal(t, []int{0, 0, 1}, seed.Nodes[1].GridPosition)
	assert.Equal(t, []int{1, 0, 0}, seed.Nodes[9].GridPosition)
}
