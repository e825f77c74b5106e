// SPDX-License-Identifier: MIT

package dcftp

import (
	"errors"

	"github.com/katalvlaran/prs/geom"
)

// Sentinel errors for dominated CFTP.
var (
	// ErrNilModel indicates a nil model.
	ErrNilModel = errors.New("dcftp: nil model")
	// ErrNotMonotone indicates a model that is neither repulsive nor attractive.
	ErrNotMonotone = errors.New("dcftp: model is neither repulsive nor attractive")
	// ErrInvalidBound indicates a non-positive or non-finite intensity bound.
	ErrInvalidBound = errors.New("dcftp: upper bound intensity must be positive and finite")
)

// Model is the dominated CFTP capability.
type Model interface {
	// Window returns the observation window.
	Window() geom.Window
	// UpperBoundIntensity returns β ≥ λ(x | X) for all x and X.
	UpperBoundIntensity() float64
	// PapangelouIntensity returns λ(x | X).
	PapangelouIntensity(x geom.Point, X []geom.Point) float64
	// IsRepulsive reports λ(x | X) ≥ λ(x | Y) whenever X ⊆ Y.
	IsRepulsive() bool
	// IsAttractive reports λ(x | X) ≤ λ(x | Y) whenever X ⊆ Y.
	IsAttractive() bool
}

// restricted wraps a model on a sub-window.
type restricted struct {
	Model
	w geom.Window
}

func (r restricted) Window() geom.Window { return r.w }

// Restrict returns m observed on the sub-window w. Interactions with points
// outside w are ignored, so the result is m's law on w with empty boundary.
func Restrict(m Model, w geom.Window) Model {
	return restricted{Model: m, w: w}
}
