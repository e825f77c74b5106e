// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Box is the axis-aligned box [Min[0],Max[0]] × ... × [Min[d-1],Max[d-1]].
// It is immutable once built by NewBox.
type Box struct {
	Min Point
	Max Point
}

var _ Window = Box{}

// NewBox builds a box from its lower and upper corners.
// Returns ErrDimensionMismatch if the corners differ in dimension or are empty,
// ErrEmptyWindow if some side is not strictly positive.
// Complexity: O(d).
func NewBox(min, max Point) (Box, error) {
	if len(min) == 0 || len(min) != len(max) {
		return Box{}, fmt.Errorf("NewBox: len(min)=%d, len(max)=%d: %w", len(min), len(max), ErrDimensionMismatch)
	}
	for k := range min {
		if !(max[k] > min[k]) {
			return Box{}, fmt.Errorf("NewBox: side %d is [%g,%g]: %w", k, min[k], max[k], ErrEmptyWindow)
		}
	}
	return Box{Min: min.Clone(), Max: max.Clone()}, nil
}

// UnitBox returns [0,1]^d.
func UnitBox(d int) Box {
	b := Box{Min: make(Point, d), Max: make(Point, d)}
	for k := 0; k < d; k++ {
		b.Max[k] = 1
	}
	return b
}

// Dim returns the dimension of the box.
func (b Box) Dim() int { return len(b.Min) }

// Width returns the side length along axis k.
func (b Box) Width(k int) float64 { return b.Max[k] - b.Min[k] }

// Volume returns the Lebesgue measure of the box.
func (b Box) Volume() float64 {
	v := 1.0
	for k := range b.Min {
		v *= b.Max[k] - b.Min[k]
	}
	return v
}

// Contains reports whether p lies in the closed box.
func (b Box) Contains(p Point) bool {
	for k := range b.Min {
		if p[k] < b.Min[k] || p[k] > b.Max[k] {
			return false
		}
	}
	return true
}

// Sample draws a point uniformly in the box.
func (b Box) Sample(rng *rand.Rand) Point {
	p := make(Point, len(b.Min))
	for k := range p {
		p[k] = b.Min[k] + rng.Float64()*(b.Max[k]-b.Min[k])
	}
	return p
}

// Bounds returns the box itself.
func (b Box) Bounds() Box { return b }

// DistToPoint returns the Euclidean distance from p to the closest point
// of the box (0 when p is inside).
func (b Box) DistToPoint(p Point) float64 {
	var s float64
	for k := range b.Min {
		var d float64
		switch {
		case p[k] < b.Min[k]:
			d = b.Min[k] - p[k]
		case p[k] > b.Max[k]:
			d = p[k] - b.Max[k]
		}
		s += d * d
	}
	return math.Sqrt(s)
}

// Intersect returns b ∩ c and whether it has positive volume.
func (b Box) Intersect(c Box) (Box, bool) {
	out := Box{Min: make(Point, len(b.Min)), Max: make(Point, len(b.Min))}
	for k := range b.Min {
		out.Min[k] = math.Max(b.Min[k], c.Min[k])
		out.Max[k] = math.Min(b.Max[k], c.Max[k])
		if !(out.Max[k] > out.Min[k]) {
			return Box{}, false
		}
	}
	return out, true
}

// Around returns the cube of half-side h centred at p.
func Around(p Point, h float64) Box {
	b := Box{Min: make(Point, len(p)), Max: make(Point, len(p))}
	for k := range p {
		b.Min[k] = p[k] - h
		b.Max[k] = p[k] + h
	}
	return b
}
