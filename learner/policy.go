// SPDX-License-Identifier: MIT

package learner

import (
	"fmt"

	"github.com/katalvlaran/topomap/core"
)

// Delta is the displacement Adapt applied to one node.
type Delta struct {
	Node  *core.Node
	Shift []float64
}

// Seed is the result of Prepare: the initial nodes and, for stream-seeded
// policies, the data indices they were taken from.
type Seed struct {
	Nodes           []*core.Node
	StimulusIndices []int
}

// Step is the record of one completed training step.
//
// Second is nil only when a policy had a single node to match against.
// NewNode is nil when no node was inserted. Nodes referenced here may have
// been removed later in the same step; the record keeps them for replay.
type Step struct {
	Timestep      int
	Deltas        []Delta
	Stimulus      []float64
	StimulusIndex int
	Winner        *core.Node
	Second        *core.Node
	NewNode       *core.Node
}

// Phases are the three policy-specific parts of a step.
type Phases interface {
	// Adapt moves nodes toward stimulus and returns the exact shifts applied.
	Adapt(winner *core.Node, stimulus []float64) []Delta
	// EdgeUpdate mutates the edge set around winner and second.
	EdgeUpdate(winner, second *core.Node) error
	// NodeUpdate applies the growth/shrink rule and returns the inserted node, if any.
	NodeUpdate(winner, second *core.Node, stimulus []float64) (*core.Node, error)
}

// Policy is a complete topological map learner bound to its own Graph.
type Policy interface {
	Phases

	// Name identifies the policy in logs and traces.
	Name() string
	// Graph exposes the store the policy trains.
	Graph() *core.Graph
	// Prepare seeds the graph. It must be called once, before Train.
	Prepare() (Seed, error)
	// Train samples one stimulus and runs one full step.
	Train() (Step, error)
	// Validate checks the graph invariants this policy maintains.
	Validate() error
}

// Execute runs match, Adapt, EdgeUpdate and NodeUpdate in that fixed order
// for one stimulus and assembles the step record. Any error aborts the step
// and is returned wrapped with the failing phase.
func Execute(p Phases, g *core.Graph, stimulus []float64, index int) (Step, error) {
	winner, second, err := g.FindNearest(stimulus)
	if err != nil {
		return Step{}, fmt.Errorf("match: %w", err)
	}

	step := Step{
		Timestep:      g.Timestep(),
		Stimulus:      stimulus,
		StimulusIndex: index,
		Winner:        winner,
		Second:        second,
	}
	step.Deltas = p.Adapt(winner, stimulus)

	if err = p.EdgeUpdate(winner, second); err != nil {
		return Step{}, fmt.Errorf("edge update: %w", err)
	}
	if step.NewNode, err = p.NodeUpdate(winner, second, stimulus); err != nil {
		return Step{}, fmt.Errorf("node update: %w", err)
	}

	return step, nil
}

// Finite is implemented by policies with an intrinsic stop condition.
// Remaining reports how many more Train calls will perform a step.
type Finite interface {
	Remaining() int
}
