// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Ball is the closed Euclidean ball of the given radius around Center.
type Ball struct {
	Center Point
	Radius float64
}

var _ Window = Ball{}

// NewBall builds a ball; the radius must be strictly positive.
func NewBall(center Point, radius float64) (Ball, error) {
	if len(center) == 0 {
		return Ball{}, fmt.Errorf("NewBall: empty center: %w", ErrDimensionMismatch)
	}
	if !(radius > 0) {
		return Ball{}, fmt.Errorf("NewBall: radius=%g: %w", radius, ErrEmptyWindow)
	}
	return Ball{Center: center.Clone(), Radius: radius}, nil
}

// Dim returns the dimension of the ball.
func (b Ball) Dim() int { return len(b.Center) }

// Volume returns π^{d/2} r^d / Γ(d/2+1).
func (b Ball) Volume() float64 {
	d := float64(len(b.Center))
	return math.Pow(math.Pi, d/2) * math.Pow(b.Radius, d) / math.Gamma(d/2+1)
}

// Contains reports whether p lies in the closed ball.
func (b Ball) Contains(p Point) bool {
	return Dist2(b.Center, p) <= b.Radius*b.Radius
}

// Bounds returns the smallest axis-aligned box containing the ball.
func (b Ball) Bounds() Box {
	return Around(b.Center, b.Radius)
}

// Sample draws a point uniformly in the ball by rejection from Bounds.
// The acceptance rate is Volume()/Bounds().Volume() (π/4 in the plane).
func (b Ball) Sample(rng *rand.Rand) Point {
	box := b.Bounds()
	for {
		p := box.Sample(rng)
		if b.Contains(p) {
			return p
		}
	}
}
