// SPDX-License-Identifier: MIT

package topomap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/topomap/gng"
	"github.com/katalvlaran/topomap/itm"
	"github.com/katalvlaran/topomap/learner"
	"github.com/katalvlaran/topomap/som"
)

// ErrUnknownKind is returned for an unrecognised policy name.
var ErrUnknownKind = errors.New("topomap: unknown policy kind")

// Kind selects a learning policy.
type Kind int

const (
	KindGNG Kind = iota
	KindITM
	KindSOM
)

func (k Kind) String() string {
	switch k {
	case KindGNG:
		return gng.Name
	case KindITM:
		return itm.Name
	case KindSOM:
		return som.Name
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ParseKind resolves "gng", "itm" or "som" (case-insensitive).
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case gng.Name:
		return KindGNG, nil
	case itm.Name:
		return KindITM, nil
	case som.Name:
		return KindSOM, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Config bundles the parameters of every policy, keyed the way a config file
// nests them ("gng.eta_n", "som.dim", ...).
type Config struct {
	GNG gng.Config `mapstructure:"gng"`
	ITM itm.Config `mapstructure:"itm"`
	SOM som.Config `mapstructure:"som"`
}

// DefaultConfig returns the reference parameters of all policies.
func DefaultConfig() Config {
	return Config{
		GNG: gng.DefaultConfig(),
		ITM: itm.DefaultConfig(),
		SOM: som.DefaultConfig(),
	}
}

// New builds the policy of the given kind over points. Only the section of
// cfg that belongs to kind is validated and used.
func New(kind Kind, points [][]float64, cfg Config, opts ...learner.Option) (learner.Policy, error) {
	// Each branch returns a nil interface on failure, never a typed nil.
	switch kind {
	case KindGNG:
		p, err := gng.New(points, cfg.GNG, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindITM:
		p, err := itm.New(points, cfg.ITM, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindSOM:
		p, err := som.New(points, cfg.SOM, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}
