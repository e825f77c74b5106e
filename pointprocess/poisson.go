// SPDX-License-Identifier: MIT

package pointprocess

import (
	"fmt"

	"github.com/katalvlaran/prs/dcftp"
	"github.com/katalvlaran/prs/geom"
	"github.com/katalvlaran/prs/sampling"
)

// poissonCellsPerAxis sets the grid PRS tiling of a Poisson window, which
// has no interaction range of its own.
const poissonCellsPerAxis = 4

// Poisson is the homogeneous Poisson process with intensity β.
type Poisson struct {
	beta float64
	w    geom.Window
}

var _ dcftp.Model = (*Poisson)(nil)

// NewPoisson validates β and w.
//
// Errors: ErrNilWindow, geom.ErrEmptyWindow, ErrInvalidIntensity.
func NewPoisson(beta float64, w geom.Window) (*Poisson, error) {
	if err := checkWindow("NewPoisson", w); err != nil {
		return nil, err
	}
	if err := checkIntensity("NewPoisson", beta); err != nil {
		return nil, err
	}
	return &Poisson{beta: beta, w: w}, nil
}

// Window returns the observation window.
func (p *Poisson) Window() geom.Window { return p.w }

// UpperBoundIntensity returns β.
func (p *Poisson) UpperBoundIntensity() float64 { return p.beta }

// PapangelouIntensity returns β for every configuration.
func (p *Poisson) PapangelouIntensity(geom.Point, []geom.Point) float64 { return p.beta }

// IsRepulsive is true: λ is constant.
func (p *Poisson) IsRepulsive() bool { return true }

// IsAttractive is true: λ is constant.
func (p *Poisson) IsAttractive() bool { return true }

// Sample is SampleDCFTP.
func (p *Poisson) Sample(opts ...sampling.Option) ([]geom.Point, error) {
	return p.SampleDCFTP(opts...)
}

// SampleDCFTP samples by dominated CFTP.
func (p *Poisson) SampleDCFTP(opts ...sampling.Option) ([]geom.Point, error) {
	pts, err := dcftp.Sample(p, opts...)
	if err != nil {
		return nil, fmt.Errorf("SampleDCFTP: %w", err)
	}
	return pts, nil
}

// SampleGridPRS tiles the box window into poissonCellsPerAxis cells per
// axis. With no interaction, grid PRS finishes after one round.
//
// Errors: ErrGridWindow.
func (p *Poisson) SampleGridPRS(opts ...sampling.Option) ([]geom.Point, error) {
	box, ok := p.w.(geom.Box)
	if !ok {
		return nil, fmt.Errorf("SampleGridPRS: %w", ErrGridWindow)
	}
	side := box.Width(0)
	for k := 1; k < box.Dim(); k++ {
		side = max(side, box.Width(k))
	}
	pts, err := sampleGrid(p, box, side/poissonCellsPerAxis, pairwise{gamma: 1}, sampling.NewConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("SampleGridPRS: %w", err)
	}
	return pts, nil
}
