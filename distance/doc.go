// SPDX-License-Identifier: MIT

// Package distance provides the metric and vector primitives shared by the
// graph store and the learning policies.
//
// What:
//
//   - Func is the pluggable metric signature used by core.Graph.FindNearest
//     and by every policy rule that compares positions.
//   - Euclidean (default), SquaredEuclidean, Manhattan and Chebyshev metrics,
//     selectable by Metric/ParseMetric/Provider.
//   - Small vector helpers for the adaptation rules: Toward, Midpoint, Dot and
//     Thales (the half-space test used by ITM).
//
// All vectors are []float64 of equal length; length agreement is the caller's
// responsibility (the graph store checks it once per stimulus).
//
// Complexity:
//
//   - Every function is O(D) in the vector dimension D.
package distance
