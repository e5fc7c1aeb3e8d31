// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topomap"
	"github.com/katalvlaran/topomap/distance"
	"github.com/katalvlaran/topomap/learner"
)

func newTrainCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train one or more maps over a CSV data file",
		Example: `  topomap train --policy gng --data points.csv --steps 5000
  topomap train --policy som --data points.csv --config som.yaml --validate
  topomap train --policy itm --data stream.csv --steps 2000 --replicas 4 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.train(cmd)
		},
	}

	f := cmd.Flags()
	f.String("policy", "gng", "learning policy: gng, itm or som")
	f.String("data", "", "CSV file with one numeric point per row (- for stdin)")
	f.Int("steps", 0, "training steps per map; 0 runs until the policy stops (som only)")
	f.Int64("seed", 0, "random seed; replica i uses seed+i (default: time based)")
	f.String("metric", "euclidean", "distance: euclidean, sqeuclidean, manhattan, chebyshev")
	f.Bool("validate", false, "check map invariants after every step")
	f.Int("replicas", 1, "number of independent maps to train")
	f.Int("parallel", 0, "maximum maps trained at once (0: all)")
	f.Int("log-every", 0, "log progress every n steps (0: off)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (a *app) train(cmd *cobra.Command) error {
	v := a.v
	kind, err := topomap.ParseKind(v.GetString("policy"))
	if err != nil {
		return err
	}
	metric, err := distance.ParseMetric(v.GetString("metric"))
	if err != nil {
		return err
	}
	dist, err := distance.Provider(metric)
	if err != nil {
		return err
	}
	replicas := v.GetInt("replicas")
	if replicas < 1 {
		return fmt.Errorf("replicas must be at least 1, got %d", replicas)
	}
	steps, logEvery := v.GetInt("steps"), v.GetInt("log-every")
	if steps < 0 || logEvery < 0 {
		return fmt.Errorf("steps and log-every must not be negative")
	}
	cfg, err := a.policyConfig()
	if err != nil {
		return err
	}
	points, err := readPoints(cmd, v.GetString("data"))
	if err != nil {
		return err
	}

	runOpts := []topomap.RunOption{
		topomap.WithSteps(steps),
		topomap.WithLogEvery(logEvery),
	}
	if v.GetBool("validate") {
		runOpts = append(runOpts, topomap.WithValidation())
	}

	jobs := make([]topomap.Job, replicas)
	for i := range jobs {
		log := a.logger.WithReplica(i)
		opts := []learner.Option{learner.WithDistance(dist), learner.WithLogger(log)}
		if cmd.Flags().Changed("seed") || v.GetInt64("seed") != 0 {
			opts = append(opts, learner.WithSeed(v.GetInt64("seed")+int64(i)))
		}
		p, err := topomap.New(kind, points, cfg, opts...)
		if err != nil {
			return err
		}
		jobs[i] = topomap.Job{
			Name:    fmt.Sprintf("%s/%d", kind, i),
			Policy:  p,
			Options: append(runOpts[:len(runOpts):len(runOpts)], topomap.WithRunLogger(log)),
		}
	}

	results, err := topomap.RunAll(cmd.Context(), jobs, v.GetInt("parallel"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		fmt.Fprintf(out, "%s replica=%d steps=%d done=%t nodes=%d edges=%d components=%d mean_degree=%.3f max_age=%d elapsed=%s\n",
			res.Policy, i, res.Steps, res.Done,
			res.Stats.NodeCount, res.Stats.EdgeCount, res.Stats.Components, res.Stats.MeanDegree, res.Stats.MaxEdgeAge,
			res.Elapsed.Round(time.Millisecond))
	}

	return nil
}

func readPoints(cmd *cobra.Command, path string) ([][]float64, error) {
	if path == "-" {
		return LoadCSV(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCSV(f)
}
