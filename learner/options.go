// SPDX-License-Identifier: MIT
//
// options.go: functional options shared by every policy constructor.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs (nil rng,
//     nil logger, nil metric). Policies themselves never panic.
//   • Determinism is explicit: seed with WithSeed or WithRand.

package learner

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/topomap/distance"
)

// Option customizes the Settings a policy is built with.
type Option func(*Settings)

// Settings is the resolved set of cross-cutting knobs.
type Settings struct {
	// Rand drives stimulus sampling and initial positions.
	Rand *rand.Rand
	// Logger receives policy diagnostics.
	Logger *Logger
	// Distance is the metric used for matching and policy rules.
	Distance distance.Func
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(s *Settings) {
		s.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("learner: WithRand(nil)")
	}
	return func(s *Settings) { s.Rand = r }
}

// WithLogger routes policy diagnostics to l. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic("learner: WithLogger(nil)")
	}
	return func(s *Settings) { s.Logger = l }
}

// WithDistance overrides the Euclidean default metric. Panics on nil.
func WithDistance(fn distance.Func) Option {
	if fn == nil {
		panic("learner: WithDistance(nil)")
	}
	return func(s *Settings) { s.Distance = fn }
}

// NewSettings applies opts in order over the defaults: a time-seeded RNG,
// NoopLogger and Euclidean distance.
func NewSettings(opts ...Option) Settings {
	s := Settings{
		Logger:   NoopLogger(),
		Distance: distance.Euclidean,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return s
}
