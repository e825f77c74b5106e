// SPDX-License-Identifier: MIT

package sampling

import "gonum.org/v1/gonum/stat"

// Moments returns the sample mean and unbiased variance of xs.
func Moments(xs []float64) (mean, variance float64) {
	return stat.MeanVariance(xs, nil)
}

// Counts converts integer observations into float64 for Moments.
func Counts[T ~int](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
