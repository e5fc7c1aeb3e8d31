// SPDX-License-Identifier: MIT

package gng

import "github.com/katalvlaran/topomap/learner"

// Name identifies the policy in errors, logs and traces.
const Name = "gng"

// Config holds the GNG parameters. Field tags are the option names accepted
// by the configuration surface.
type Config struct {
	// EtaN is the winner learning rate.
	EtaN float64 `mapstructure:"eta_n"`
	// EtaC is the neighbour learning rate; must be below EtaN.
	EtaC float64 `mapstructure:"eta_c"`
	// Alpha is the error reduction applied to q and p on insertion.
	Alpha float64 `mapstructure:"alpha"`
	// Beta is the global per-step error decay.
	Beta float64 `mapstructure:"beta"`
	// AgeMax is the oldest an edge may get before it is removed.
	AgeMax int `mapstructure:"age_max"`
	// NodeInterval is the insertion period in steps (lambda).
	NodeInterval int `mapstructure:"node_interval"`
	// NodeMin is the number of seed nodes.
	NodeMin int `mapstructure:"node_min"`
	// NodeMax is the hard node ceiling.
	NodeMax int `mapstructure:"node_max"`
}

// DefaultConfig returns the reference parameter set.
func DefaultConfig() Config {
	return Config{
		EtaN:         0.7,
		EtaC:         0.4,
		Alpha:        0.15,
		Beta:         0.1,
		AgeMax:       5,
		NodeInterval: 2,
		NodeMin:      2,
		NodeMax:      100,
	}
}

// Validate rejects out-of-range values and inconsistent combinations.
// Every failure wraps learner.ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.EtaN <= c.EtaC:
		return learner.ConfigErrorf(Name, "eta_n (%g) must exceed eta_c (%g)", c.EtaN, c.EtaC)
	case c.EtaC <= 0 || c.EtaN > 1:
		return learner.ConfigErrorf(Name, "learning rates must lie in (0,1], got eta_n=%g eta_c=%g", c.EtaN, c.EtaC)
	case c.Alpha <= 0 || c.Alpha >= 1:
		return learner.ConfigErrorf(Name, "alpha (%g) must lie in (0,1)", c.Alpha)
	case c.Beta <= 0 || c.Beta >= 1:
		return learner.ConfigErrorf(Name, "beta (%g) must lie in (0,1)", c.Beta)
	case c.AgeMax < 1:
		return learner.ConfigErrorf(Name, "age_max (%d) must be positive", c.AgeMax)
	case c.NodeInterval < 1:
		return learner.ConfigErrorf(Name, "node_interval (%d) must be positive", c.NodeInterval)
	case c.NodeMin < 2:
		return learner.ConfigErrorf(Name, "node_min (%d) must be at least 2", c.NodeMin)
	case c.NodeMax < c.NodeMin:
		return learner.ConfigErrorf(Name, "node_max (%d) must not be below node_min (%d)", c.NodeMax, c.NodeMin)
	}

	return nil
}
