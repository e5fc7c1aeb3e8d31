// SPDX-License-Identifier: MIT

package learner

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates an invalid parameter or parameter relationship.
	// It is returned before any graph state exists.
	ErrInvalidConfig = errors.New("learner: invalid configuration")

	// ErrDone indicates the policy's stop condition is reached; no step was performed.
	ErrDone = errors.New("learner: training complete")

	// ErrEmptyData indicates an empty data stream or a zero-dimensional point.
	ErrEmptyData = errors.New("learner: data must contain at least one non-empty point")

	// ErrRaggedData indicates points of differing dimensionality.
	ErrRaggedData = errors.New("learner: all points must have the same dimension")
)

// ConfigErrorf wraps ErrInvalidConfig with the policy name and a formatted
// reason, e.g. "gng: learner: invalid configuration: eta_n (0.3) must exceed eta_c (0.5)".
func ConfigErrorf(policy, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", policy, ErrInvalidConfig, fmt.Sprintf(format, args...))
}
