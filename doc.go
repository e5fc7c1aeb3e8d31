// Package topomap learns topological maps of streamed point data: graphs of
// prototype nodes whose positions follow the data distribution and whose
// edges follow the neighbourhood structure of the underlying manifold.
//
// Three learners share one graph store and one four-phase step
// (match → adapt → edge update → node update):
//
//	gng/  Growing Neural Gas (error-driven growth, age-based edge pruning)
//	itm/  Instantaneous Topological Map (resolution-driven growth, Thales edges)
//	som/  Self-Organizing Map (fixed lattice, annealed Gaussian neighbourhood)
//
// Supporting packages:
//
//	core/       the bounded node/edge store, matching and invariant checks
//	learner/    the Policy contract, step records, datasets, options, logging
//	distance/   metrics and vector helpers
//	gridgraph/  SOM lattice geometry
//
// This package adds the policy factory (New) and a reference driving loop:
// Run trains one map until its budget or stop condition, RunAll trains
// independent maps concurrently. Each map is single-threaded; no Graph is
// ever shared between goroutines.
//
// Quick start:
//
//	p, err := topomap.New(topomap.KindGNG, points, topomap.DefaultConfig(), learner.WithSeed(1))
//	if err != nil { ... }
//	res, err := topomap.Run(ctx, p, topomap.WithSteps(1000), topomap.WithValidation())
package topomap
