// Package learner defines the step protocol every topological map policy
// implements, and the pieces the policies share: the validated Dataset they
// sample stimuli from, cross-cutting Options (rng, logger, metric), the
// structured Logger, and the configuration error taxonomy.
//
// One training step is the fixed sequence
//
//	match (core.Graph.FindNearest) -> Adapt -> EdgeUpdate -> NodeUpdate
//
// run by Execute and wrapped by each policy's Train, which also samples the
// stimulus and advances the step counter. The returned Step record is the
// sole structured output of a step and is produced on every call.
//
// Errors:
//
//   - ErrInvalidConfig: a policy rejected its parameters at construction.
//   - ErrDone:          a policy reached its own stop condition (SOM).
//   - ErrEmptyData, ErrRaggedData: the input stream cannot be sampled.
package learner
