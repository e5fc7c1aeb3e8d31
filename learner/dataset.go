// SPDX-License-Identifier: MIT

package learner

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/topomap/distance"
)

// Dataset is an immutable, validated stream of fixed-dimension points.
type Dataset struct {
	points [][]float64
	dim    int
}

// NewDataset deep-copies points after checking that the stream is non-empty
// and rectangular.
// Returns ErrEmptyData or ErrRaggedData (wrapped with the offending index).
// Complexity: O(N·D).
func NewDataset(points [][]float64) (*Dataset, error) {
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, ErrEmptyData
	}
	dim := len(points[0])
	cp := make([][]float64, len(points))
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("%w: point %d has dimension %d, want %d", ErrRaggedData, i, len(p), dim)
		}
		cp[i] = append([]float64(nil), p...)
	}

	return &Dataset{points: cp, dim: dim}, nil
}

// Len returns the number of points.
func (d *Dataset) Len() int { return len(d.points) }

// Dim returns the point dimensionality.
func (d *Dataset) Dim() int { return d.dim }

// At returns point i. The slice is shared and must be treated as read-only.
func (d *Dataset) At(i int) []float64 { return d.points[i] }

// Bounds returns the per-axis minimum and maximum of the data.
func (d *Dataset) Bounds() (lo, hi []float64) {
	lo = append([]float64(nil), d.points[0]...)
	hi = append([]float64(nil), d.points[0]...)
	for _, p := range d.points[1:] {
		for a, x := range p {
			lo[a] = min(lo[a], x)
			hi[a] = max(hi[a], x)
		}
	}

	return lo, hi
}

// MeanStepDistance returns the summed distance between temporally
// consecutive points divided by the number of points. A single point yields 0.
func (d *Dataset) MeanStepDistance(dist distance.Func) float64 {
	var sum float64
	for i := 1; i < len(d.points); i++ {
		sum += dist(d.points[i-1], d.points[i])
	}

	return sum / float64(len(d.points))
}

// Sampling selects how Sample walks the stream.
type Sampling int

const (
	// SampleRandom draws indices uniformly at random.
	SampleRandom Sampling = iota
	// SampleCyclic walks the stream in order, wrapping around.
	SampleCyclic
)

func (s Sampling) String() string {
	switch s {
	case SampleRandom:
		return "random"
	case SampleCyclic:
		return "cyclic"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseSampling resolves "random" or "cyclic" (case-insensitive).
func ParseSampling(name string) (Sampling, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return SampleRandom, nil
	case "cyclic":
		return SampleCyclic, nil
	default:
		return 0, fmt.Errorf("%w: unknown sampling %q", ErrInvalidConfig, name)
	}
}

// Sample returns one stimulus and its index. Cyclic sampling uses t modulo
// the stream length; random sampling draws from rng and ignores t.
func (d *Dataset) Sample(rng *rand.Rand, mode Sampling, t int) ([]float64, int) {
	var idx int
	if mode == SampleCyclic {
		idx = t % len(d.points)
		if idx < 0 {
			idx += len(d.points)
		}
	} else {
		idx = rng.Intn(len(d.points))
	}

	return d.points[idx], idx
}

// UniformIn returns a point drawn uniformly from the axis-aligned box [lo, hi].
func UniformIn(rng *rand.Rand, lo, hi []float64) []float64 {
	p := make([]float64, len(lo))
	for a := range p {
		p[a] = lo[a] + rng.Float64()*(hi[a]-lo[a])
	}

	return p
}
