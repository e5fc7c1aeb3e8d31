// SPDX-License-Identifier: MIT

package som

import (
	"github.com/katalvlaran/topomap/gridgraph"
	"github.com/katalvlaran/topomap/learner"
)

// Name identifies the policy in errors, logs and traces.
const Name = "som"

// Config holds the SOM parameters.
type Config struct {
	// NetworkSize is the number of cells along each lattice axis.
	NetworkSize int `mapstructure:"network_size"`
	// Dim is the lattice dimensionality, 1..3.
	Dim int `mapstructure:"dim"`
	// Sigma is the initial neighbourhood radius in grid units.
	Sigma float64 `mapstructure:"sigma"`
	// Eta is the initial learning rate.
	Eta float64 `mapstructure:"eta"`
	// MaxIterations is the last timestep at which Train still steps.
	MaxIterations int `mapstructure:"max_iterations"`
}

// DefaultConfig returns the reference parameter set.
func DefaultConfig() Config {
	return Config{
		NetworkSize:   7,
		Dim:           3,
		Sigma:         7.5,
		Eta:           0.8,
		MaxIterations: 1000,
	}
}

// Validate rejects out-of-range values. Failures wrap learner.ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Dim < 1 || c.Dim > gridgraph.MaxDim:
		return learner.ConfigErrorf(Name, "dim (%d) must lie in [1,%d]", c.Dim, gridgraph.MaxDim)
	case c.NetworkSize < 2:
		return learner.ConfigErrorf(Name, "network_size (%d) must be at least 2", c.NetworkSize)
	case c.Sigma <= 0:
		return learner.ConfigErrorf(Name, "sigma (%g) must be positive", c.Sigma)
	case c.Eta <= 0 || c.Eta > 1:
		return learner.ConfigErrorf(Name, "eta (%g) must lie in (0,1]", c.Eta)
	case c.MaxIterations < 0:
		return learner.ConfigErrorf(Name, "max_iterations (%d) must not be negative", c.MaxIterations)
	}

	return nil
}
