// SPDX-License-Identifier: MIT

package pointprocess

import (
	"fmt"
	"math"

	"github.com/katalvlaran/prs/dcftp"
	"github.com/katalvlaran/prs/geom"
	"github.com/katalvlaran/prs/sampling"
)

// Strauss is the Strauss process: density ∝ β^n · γ^{s(X)} where s(X)
// counts the pairs at distance at most r.
type Strauss struct {
	beta, gamma, r float64
	w              geom.Window
}

var _ dcftp.Model = (*Strauss)(nil)

// NewStrauss validates β > 0, 0 ≤ γ ≤ 1 and r > 0.
//
// Errors: ErrNilWindow, geom.ErrEmptyWindow, ErrInvalidIntensity,
// ErrInvalidInteraction, ErrInvalidRange.
func NewStrauss(beta, gamma, r float64, w geom.Window) (*Strauss, error) {
	const method = "NewStrauss"
	if err := checkWindow(method, w); err != nil {
		return nil, err
	}
	if err := checkIntensity(method, beta); err != nil {
		return nil, err
	}
	if !(gamma >= 0 && gamma <= 1) {
		return nil, fmt.Errorf("%s: gamma=%g not in [0,1]: %w", method, gamma, ErrInvalidInteraction)
	}
	if err := checkRange(method, r); err != nil {
		return nil, err
	}
	return &Strauss{beta: beta, gamma: gamma, r: r, w: w}, nil
}

// Window returns the observation window.
func (s *Strauss) Window() geom.Window { return s.w }

// Beta returns β.
func (s *Strauss) Beta() float64 { return s.beta }

// Gamma returns γ.
func (s *Strauss) Gamma() float64 { return s.gamma }

// Range returns r.
func (s *Strauss) Range() float64 { return s.r }

// UpperBoundIntensity returns β.
func (s *Strauss) UpperBoundIntensity() float64 { return s.beta }

// PapangelouIntensity returns β·γ^{#{y ∈ X : |x−y| ≤ r}}.
// Complexity: O(|X|·d).
func (s *Strauss) PapangelouIntensity(x geom.Point, X []geom.Point) float64 {
	k := closePairs([]geom.Point{x}, X, s.r)
	if k == 0 {
		return s.beta
	}
	return s.beta * math.Pow(s.gamma, float64(k))
}

// IsRepulsive is true for every γ ≤ 1.
func (s *Strauss) IsRepulsive() bool { return true }

// IsAttractive is true only for γ = 1.
func (s *Strauss) IsAttractive() bool { return s.gamma == 1 }

// Sample is SampleDCFTP.
func (s *Strauss) Sample(opts ...sampling.Option) ([]geom.Point, error) {
	return s.SampleDCFTP(opts...)
}

// SampleDCFTP samples by dominated CFTP.
func (s *Strauss) SampleDCFTP(opts ...sampling.Option) ([]geom.Point, error) {
	pts, err := dcftp.Sample(s, opts...)
	if err != nil {
		return nil, fmt.Errorf("SampleDCFTP: %w", err)
	}
	return pts, nil
}

// SampleGridPRS samples by grid PRS over cells of side r.
//
// Errors: ErrGridWindow.
func (s *Strauss) SampleGridPRS(opts ...sampling.Option) ([]geom.Point, error) {
	box, ok := s.w.(geom.Box)
	if !ok {
		return nil, fmt.Errorf("SampleGridPRS: %w", ErrGridWindow)
	}
	pts, err := sampleGrid(s, box, s.r, pairwise{gamma: s.gamma, r: s.r}, sampling.NewConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("SampleGridPRS: %w", err)
	}
	return pts, nil
}
