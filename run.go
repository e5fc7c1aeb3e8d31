// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: Reference driving loop: Prepare once, Train until a budget or the
//       policy's own stop condition, with hooks, validation and tracing.

package topomap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/topomap/core"
	"github.com/katalvlaran/topomap/learner"
)

const tracerName = "topomap"

// ErrUnbounded is returned by Run when no step budget is given for a policy
// that has no stop condition of its own (GNG, ITM).
var ErrUnbounded = errors.New("topomap: step budget required for a policy without a stop condition")

// RunOptions holds parameters and callbacks for Run.
type RunOptions struct {
	// Steps caps the number of Train calls. 0 runs until learner.ErrDone,
	// which requires a learner.Finite policy.
	Steps int

	// Validate checks the policy invariants after Prepare and every step.
	Validate bool

	// LogEvery, if > 0, logs a progress record every LogEvery steps.
	LogEvery int

	// Logger receives run-level records.
	Logger *learner.Logger

	// OnSeed is called once after Prepare. A non-nil error aborts the run.
	OnSeed func(learner.Seed) error

	// OnStep is called after every completed step. A non-nil error aborts the run.
	OnStep func(learner.Step) error
}

// RunOption configures Run.
type RunOption func(*RunOptions)

// DefaultRunOptions returns options with no budget, no validation, a
// discarding logger and no-op hooks.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Logger: learner.NoopLogger(),
		OnSeed: func(learner.Seed) error { return nil },
		OnStep: func(learner.Step) error { return nil },
	}
}

// WithSteps caps the run at n Train calls. Panics if n < 0.
func WithSteps(n int) RunOption {
	if n < 0 {
		panic("topomap: WithSteps(n<0)")
	}
	return func(o *RunOptions) { o.Steps = n }
}

// WithValidation enables invariant checks after every step.
func WithValidation() RunOption {
	return func(o *RunOptions) { o.Validate = true }
}

// WithLogEvery logs progress every n steps. Panics if n < 0.
func WithLogEvery(n int) RunOption {
	if n < 0 {
		panic("topomap: WithLogEvery(n<0)")
	}
	return func(o *RunOptions) { o.LogEvery = n }
}

// WithRunLogger routes run-level records to l. Panics on nil.
func WithRunLogger(l *learner.Logger) RunOption {
	if l == nil {
		panic("topomap: WithRunLogger(nil)")
	}
	return func(o *RunOptions) { o.Logger = l }
}

// WithOnSeed installs the post-Prepare hook. A nil fn is ignored.
func WithOnSeed(fn func(learner.Seed) error) RunOption {
	return func(o *RunOptions) {
		if fn != nil {
			o.OnSeed = fn
		}
	}
}

// WithOnStep installs the per-step hook. A nil fn is ignored.
func WithOnStep(fn func(learner.Step) error) RunOption {
	return func(o *RunOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result summarises a finished (or aborted) run.
type Result struct {
	Policy  string
	Steps   int
	Done    bool
	Stats   core.GraphStats
	Elapsed time.Duration
}

// Run prepares p and trains it until the step budget is spent, the policy
// reports learner.ErrDone, ctx is cancelled, or a step, hook or validation
// fails. Cancellation is observed between steps, never inside one.
// The Result is filled in on every return path.
func Run(ctx context.Context, p learner.Policy, opts ...RunOption) (Result, error) {
	o := DefaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.WithPolicy(p.Name())
	res := Result{Policy: p.Name()}
	start := time.Now()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "topomap.Run", trace.WithAttributes(
		attribute.String("policy", p.Name()),
		attribute.Int("steps.budget", o.Steps),
		attribute.Bool("validate", o.Validate),
	))
	defer span.End()

	fail := func(err error) (Result, error) {
		res.Stats = p.Graph().Stats()
		res.Elapsed = time.Since(start)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorContext(ctx, "run failed", "steps", res.Steps, "error", err)
		return res, err
	}

	if _, finite := p.(learner.Finite); o.Steps == 0 && !finite {
		return fail(ErrUnbounded)
	}

	seed, err := p.Prepare()
	if err != nil {
		return fail(fmt.Errorf("prepare: %w", err))
	}
	if err = o.check(p); err != nil {
		return fail(fmt.Errorf("after prepare: %w", err))
	}
	if err = o.OnSeed(seed); err != nil {
		return fail(fmt.Errorf("seed hook: %w", err))
	}
	span.AddEvent("seeded", trace.WithAttributes(attribute.Int("nodes", len(seed.Nodes))))

	for o.Steps == 0 || res.Steps < o.Steps {
		if err = ctx.Err(); err != nil {
			return fail(err)
		}
		step, err := p.Train()
		if errors.Is(err, learner.ErrDone) {
			res.Done = true
			break
		}
		if err != nil {
			return fail(err)
		}
		res.Steps++

		if err = o.check(p); err != nil {
			return fail(fmt.Errorf("step %d: %w", step.Timestep, err))
		}
		if err = o.OnStep(step); err != nil {
			return fail(fmt.Errorf("step hook: %w", err))
		}
		if o.LogEvery > 0 && res.Steps%o.LogEvery == 0 {
			g := p.Graph()
			log.InfoContext(ctx, "training progress",
				"steps", res.Steps,
				"timestep", g.Timestep(),
				"nodes", g.NodeCount(),
				"edges", g.EdgeCount(),
			)
		}
	}

	res.Stats = p.Graph().Stats()
	res.Elapsed = time.Since(start)
	span.SetAttributes(
		attribute.Int("steps", res.Steps),
		attribute.Bool("done", res.Done),
		attribute.Int("nodes", res.Stats.NodeCount),
		attribute.Int("edges", res.Stats.EdgeCount),
		attribute.Int("components", res.Stats.Components),
	)
	log.InfoContext(ctx, "run completed",
		"steps", res.Steps,
		"done", res.Done,
		"nodes", res.Stats.NodeCount,
		"edges", res.Stats.EdgeCount,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

func (o RunOptions) check(p learner.Policy) error {
	if !o.Validate {
		return nil
	}

	return p.Validate()
}
