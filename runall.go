// SPDX-License-Identifier: MIT

package topomap

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/topomap/core"
	"github.com/katalvlaran/topomap/learner"
)

// ErrSharedGraph is returned by RunAll when two jobs train the same Graph.
var ErrSharedGraph = errors.New("topomap: jobs must not share a graph")

// Job is one independent map to train.
type Job struct {
	Name    string
	Policy  learner.Policy
	Options []RunOption
}

// RunAll trains every job's map concurrently, at most limit at a time
// (limit <= 0 means unbounded). Each map is still trained by exactly one
// goroutine. The first failure cancels the remaining runs; results are
// returned in job order either way.
func RunAll(ctx context.Context, jobs []Job, limit int) ([]Result, error) {
	seen := make(map[*core.Graph]string, len(jobs))
	for _, job := range jobs {
		g := job.Policy.Graph()
		if prev, ok := seen[g]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrSharedGraph, prev, job.Name)
		}
		seen[g] = job.Name
	}

	results := make([]Result, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, job := range jobs {
		eg.Go(func() error {
			res, err := Run(ctx, job.Policy, job.Options...)
			results[i] = res
			if err != nil {
				return fmt.Errorf("job %s: %w", job.Name, err)
			}
			return nil
		})
	}

	return results, eg.Wait()
}
