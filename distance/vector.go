// SPDX-License-Identifier: MIT

package distance

import "gonum.org/v1/gonum/floats"

// Dot returns the dot product of a and b.
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// Toward returns rate*(target-pos) as a fresh slice. It is the displacement
// every adaptation rule applies to a node position.
func Toward(rate float64, target, pos []float64) []float64 {
	dw := make([]float64, len(pos))
	floats.SubTo(dw, target, pos)
	floats.Scale(rate, dw)

	return dw
}

// Midpoint returns (a+b)/2 as a fresh slice.
func Midpoint(a, b []float64) []float64 {
	m := make([]float64, len(a))
	floats.AddTo(m, a, b)
	floats.Scale(0.5, m)

	return m
}

// Thales returns dot(a-apex, b-apex). The sign tells on which side of the
// sphere with diameter a-b the apex lies: negative inside, positive outside.
func Thales(apex, a, b []float64) float64 {
	u := make([]float64, len(apex))
	v := make([]float64, len(apex))
	floats.SubTo(u, a, apex)
	floats.SubTo(v, b, apex)

	return Dot(u, v)
}

// Apply adds dw to pos in place.
func Apply(pos, dw []float64) {
	floats.Add(pos, dw)
}
