// SPDX-License-Identifier: MIT

package geom

import (
	"errors"
	"math"
	"math/rand/v2"
)

// Sentinel errors for window construction.
var (
	// ErrEmptyWindow indicates a window with zero or negative extent.
	ErrEmptyWindow = errors.New("geom: window must have positive volume")

	// ErrDimensionMismatch indicates coordinates of different dimensions.
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")
)

// Point is a location in d-dimensional Euclidean space.
type Point []float64

// Dim returns the dimension of p.
func (p Point) Dim() int { return len(p) }

// Clone returns a copy of p that shares no storage with it.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)
	return q
}

// Dist2 returns the squared Euclidean distance between a and b.
// Both points must have the same dimension.
func Dist2(a, b Point) float64 {
	var s float64
	for k := range a {
		d := a[k] - b[k]
		s += d * d
	}
	return s
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Sqrt(Dist2(a, b))
}

// Window is an observation region for spatial point processes.
//
// Sample must return a point distributed uniformly on the window.
// Bounds must return a box that contains the whole window.
type Window interface {
	Dim() int
	Volume() float64
	Contains(p Point) bool
	Sample(rng *rand.Rand) Point
	Bounds() Box
}
