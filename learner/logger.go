// SPDX-License-Identifier: MIT

package learner

import (
	"context"
	"log/slog"
	"os"

	"github.com/katalvlaran/topomap/core"
)

// Logger wraps slog.Logger with topomap-specific field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards all output. It is the default for every policy.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithPolicy adds a policy field to the logger.
func (l *Logger) WithPolicy(name string) *Logger {
	return &Logger{Logger: l.Logger.With("policy", name)}
}

// WithReplica adds a replica field to the logger.
func (l *Logger) WithReplica(i int) *Logger {
	return &Logger{Logger: l.Logger.With("replica", i)}
}

// LogSeed logs the result of Prepare.
func (l *Logger) LogSeed(ctx context.Context, nodes, edges int) {
	l.DebugContext(ctx, "graph seeded",
		"nodes", nodes,
		"edges", edges,
	)
}

// LogInsert logs a node insertion.
func (l *Logger) LogInsert(ctx context.Context, t int, id core.NodeID) {
	l.DebugContext(ctx, "node inserted",
		"timestep", t,
		"node", id,
	)
}

// LogRemove logs an explicit node removal.
func (l *Logger) LogRemove(ctx context.Context, t int, id core.NodeID, reason string) {
	l.DebugContext(ctx, "node removed",
		"timestep", t,
		"node", id,
		"reason", reason,
	)
}

// LogPrune logs an edgeless-pruning pass that removed at least one node.
func (l *Logger) LogPrune(ctx context.Context, t int, removed []core.NodeID) {
	if len(removed) == 0 {
		return
	}
	l.DebugContext(ctx, "edgeless nodes pruned",
		"timestep", t,
		"count", len(removed),
		"nodes", removed,
	)
}

// LogCapacity logs a growth refusal at node_max.
func (l *Logger) LogCapacity(ctx context.Context, t, nodeMax int) {
	l.DebugContext(ctx, "node insertion refused at capacity",
		"timestep", t,
		"node_max", nodeMax,
	)
}

// LogStep logs a completed step or the error that aborted it.
func (l *Logger) LogStep(ctx context.Context, s Step, g *core.Graph, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"timestep", g.Timestep(),
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "step completed",
		"timestep", s.Timestep,
		"stimulus", s.StimulusIndex,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"inserted", s.NewNode != nil,
	)
}
