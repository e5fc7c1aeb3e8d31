// SPDX-License-Identifier: MIT

package itm

import "github.com/katalvlaran/topomap/learner"

// Name identifies the policy in errors, logs and traces.
const Name = "itm"

// Config holds the ITM parameters.
type Config struct {
	// Eta is the winner learning rate.
	Eta float64 `mapstructure:"eta"`
	// RMax is the local resolution. Zero is not a usable resolution (every
	// stimulus would spawn a node), so 0 means "derive from the data": Prepare
	// sets it to half the mean distance between consecutive samples.
	RMax float64 `mapstructure:"r_max"`
	// NodeMax is the hard node ceiling.
	NodeMax int `mapstructure:"node_max"`
	// Sampling is "cyclic" (stream order) or "random".
	Sampling string `mapstructure:"sampling"`
}

// DefaultConfig returns the reference parameter set.
func DefaultConfig() Config {
	return Config{
		Eta:      0.1,
		NodeMax:  100,
		Sampling: learner.SampleCyclic.String(),
	}
}

// Validate rejects out-of-range values. Failures wrap learner.ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Eta <= 0 || c.Eta > 1:
		return learner.ConfigErrorf(Name, "eta (%g) must lie in (0,1]", c.Eta)
	case c.RMax < 0:
		return learner.ConfigErrorf(Name, "r_max (%g) must not be negative", c.RMax)
	case c.NodeMax < nodeMin:
		return learner.ConfigErrorf(Name, "node_max (%d) must be at least %d", c.NodeMax, nodeMin)
	}
	if _, err := learner.ParseSampling(c.Sampling); err != nil {
		return learner.ConfigErrorf(Name, "unknown sampling %q", c.Sampling)
	}

	return nil
}
