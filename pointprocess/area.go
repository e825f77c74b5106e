// SPDX-License-Identifier: MIT
//
// File: area.go
// Role: Area-interaction process with square grains.
// AI-HINT (file):
//   - Uncovered grain volume is exact: coordinates of the overlapping
//     grains are compressed per axis and the resulting sub-boxes are
//     tested at their centres.

package pointprocess

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/prs/dcftp"
	"github.com/katalvlaran/prs/geom"
	"github.com/katalvlaran/prs/sampling"
)

// AreaInteraction is the area-interaction process with grains G_x, the
// cube of half-side r around x:
//
//	λ(x | X) = β · γ^{−|G_x \ ∪_{y∈X} G_y| / |G|}
//
// It is repulsive for γ ≤ 1 and attractive for γ ≥ 1.
type AreaInteraction struct {
	beta, gamma, r float64
	w              geom.Window
	grain          float64 // (2r)^d
}

var _ dcftp.Model = (*AreaInteraction)(nil)

// NewAreaInteraction validates β > 0, γ > 0 and r > 0.
//
// Errors: ErrNilWindow, geom.ErrEmptyWindow, ErrInvalidIntensity,
// ErrInvalidInteraction, ErrInvalidRange.
func NewAreaInteraction(beta, gamma, r float64, w geom.Window) (*AreaInteraction, error) {
	const method = "NewAreaInteraction"
	if err := checkWindow(method, w); err != nil {
		return nil, err
	}
	if err := checkIntensity(method, beta); err != nil {
		return nil, err
	}
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		return nil, fmt.Errorf("%s: gamma=%g: %w", method, gamma, ErrInvalidInteraction)
	}
	if err := checkRange(method, r); err != nil {
		return nil, err
	}
	return &AreaInteraction{
		beta: beta, gamma: gamma, r: r, w: w,
		grain: math.Pow(2*r, float64(w.Dim())),
	}, nil
}

// Window returns the observation window.
func (a *AreaInteraction) Window() geom.Window { return a.w }

// UpperBoundIntensity returns β for γ ≥ 1 and β/γ for γ < 1.
func (a *AreaInteraction) UpperBoundIntensity() float64 {
	if a.gamma >= 1 {
		return a.beta
	}
	return a.beta / a.gamma
}

// PapangelouIntensity returns β·γ^{−f} where f is the fraction of x's
// grain not covered by the grains of X.
func (a *AreaInteraction) PapangelouIntensity(x geom.Point, X []geom.Point) float64 {
	f := a.UncoveredVolume(x, X) / a.grain
	return a.beta * math.Pow(a.gamma, -f)
}

// IsRepulsive reports γ ≤ 1.
func (a *AreaInteraction) IsRepulsive() bool { return a.gamma <= 1 }

// IsAttractive reports γ ≥ 1.
func (a *AreaInteraction) IsAttractive() bool { return a.gamma >= 1 }

// Sample is SampleDCFTP.
func (a *AreaInteraction) Sample(opts ...sampling.Option) ([]geom.Point, error) {
	return a.SampleDCFTP(opts...)
}

// SampleDCFTP samples by dominated CFTP.
func (a *AreaInteraction) SampleDCFTP(opts ...sampling.Option) ([]geom.Point, error) {
	pts, err := dcftp.Sample(a, opts...)
	if err != nil {
		return nil, fmt.Errorf("SampleDCFTP: %w", err)
	}
	return pts, nil
}

// UncoveredVolume returns |G_x \ ∪_{y∈X} G_y|.
// Complexity: O((2m)^d · m) for the m grains overlapping G_x.
func (a *AreaInteraction) UncoveredVolume(x geom.Point, X []geom.Point) float64 {
	gx := geom.Around(x, a.r)
	var cover []geom.Box
	for _, y := range X {
		if b, ok := gx.Intersect(geom.Around(y, a.r)); ok {
			cover = append(cover, b)
		}
	}
	if len(cover) == 0 {
		return gx.Volume()
	}
	return gx.Volume() - unionVolume(gx, cover)
}

// unionVolume returns the volume of the union of boxes, all inside frame.
func unionVolume(frame geom.Box, boxes []geom.Box) float64 {
	d := frame.Dim()
	axes := make([][]float64, d)
	for k := 0; k < d; k++ {
		cuts := []float64{frame.Min[k], frame.Max[k]}
		for _, b := range boxes {
			cuts = append(cuts, b.Min[k], b.Max[k])
		}
		slices.Sort(cuts)
		axes[k] = slices.Compact(cuts)
	}

	var total float64
	idx := make([]int, d)
	mid := make(geom.Point, d)
	for {
		vol := 1.0
		for k := 0; k < d; k++ {
			lo, hi := axes[k][idx[k]], axes[k][idx[k]+1]
			vol *= hi - lo
			mid[k] = (lo + hi) / 2
		}
		if vol > 0 {
			for _, b := range boxes {
				if b.Contains(mid) {
					total += vol
					break
				}
			}
		}
		// Odometer increment over the compressed grid.
		k := d - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(axes[k])-1 {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			return total
		}
	}
}
