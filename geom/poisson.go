// SPDX-License-Identifier: MIT

package geom

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// PoissonCount draws N ~ Poisson(mean) with rng as the source.
// A non-positive mean yields 0.
func PoissonCount(rng *rand.Rand, mean float64) int {
	if !(mean > 0) {
		return 0
	}
	return int(distuv.Poisson{Lambda: mean, Src: rng}.Rand())
}

// SamplePoisson draws a homogeneous Poisson point process with the given
// intensity on w: a Poisson(intensity·|w|) number of i.i.d. uniform points.
// Complexity: O(N·d) expected, where N is the returned count.
func SamplePoisson(rng *rand.Rand, w Window, intensity float64) []Point {
	n := PoissonCount(rng, intensity*w.Volume())
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = w.Sample(rng)
	}
	return pts
}
