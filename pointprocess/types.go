// SPDX-License-Identifier: MIT

package pointprocess

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/prs/geom"
)

// Sentinel errors for point process construction.
var (
	// ErrNilWindow indicates a nil window.
	ErrNilWindow = errors.New("pointprocess: nil window")
	// ErrInvalidIntensity indicates β ≤ 0 or a non-finite β.
	ErrInvalidIntensity = errors.New("pointprocess: intensity must be positive and finite")
	// ErrInvalidInteraction indicates γ outside the model's range.
	ErrInvalidInteraction = errors.New("pointprocess: interaction parameter out of range")
	// ErrInvalidRange indicates r ≤ 0 or a non-finite r.
	ErrInvalidRange = errors.New("pointprocess: interaction range must be positive and finite")
	// ErrGridWindow indicates a grid sampler on a window that is not a box.
	ErrGridWindow = errors.New("pointprocess: grid PRS requires a box window")
)

func checkWindow(method string, w geom.Window) error {
	if w == nil {
		return fmt.Errorf("%s: %w", method, ErrNilWindow)
	}
	if !(w.Volume() > 0) {
		return fmt.Errorf("%s: volume=%g: %w", method, w.Volume(), geom.ErrEmptyWindow)
	}
	return nil
}

func checkIntensity(method string, beta float64) error {
	if !(beta > 0) || math.IsInf(beta, 0) {
		return fmt.Errorf("%s: beta=%g: %w", method, beta, ErrInvalidIntensity)
	}
	return nil
}

func checkRange(method string, r float64) error {
	if !(r > 0) || math.IsInf(r, 0) {
		return fmt.Errorf("%s: r=%g: %w", method, r, ErrInvalidRange)
	}
	return nil
}

// closePairs counts the pairs (x, y) ∈ a × b with |x−y| ≤ r.
// Complexity: O(|a|·|b|·d).
func closePairs(a, b []geom.Point, r float64) int {
	r2 := r * r
	n := 0
	for _, x := range a {
		for _, y := range b {
			if geom.Dist2(x, y) <= r2 {
				n++
			}
		}
	}
	return n
}

// ClosePairs returns the number of unordered pairs of pts at distance at
// most r.
// Complexity: O(n²·d).
func ClosePairs(pts []geom.Point, r float64) int {
	r2 := r * r
	n := 0
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if geom.Dist2(pts[i], pts[j]) <= r2 {
				n++
			}
		}
	}
	return n
}
