// SPDX-License-Identifier: MIT
//
// File: hardcore.go
// Role: Spatial hard-core process and its direct partial rejection sampler.
// Determinism:
//   - Bad points are found in input order; fresh points are drawn ball by
//     ball in that order.

package pointprocess

import (
	"fmt"

	"github.com/katalvlaran/prs/geom"
	"github.com/katalvlaran/prs/sampling"
)

// HardCore is the hard-core process: a Poisson(β) process conditioned on
// no two points lying within distance r. It is a Strauss process with
// γ = 0.
type HardCore struct {
	*Strauss
}

// NewHardCore validates β and r.
//
// Errors: as NewStrauss.
func NewHardCore(beta, r float64, w geom.Window) (*HardCore, error) {
	s, err := NewStrauss(beta, 0, r, w)
	if err != nil {
		return nil, fmt.Errorf("NewHardCore: %w", err)
	}
	return &HardCore{Strauss: s}, nil
}

// Valid reports whether no two points of pts lie within distance r.
func (h *HardCore) Valid(pts []geom.Point) bool { return ClosePairs(pts, h.r) == 0 }

// SamplePRS samples by partial rejection sampling on the window: the
// resampling region is the union of the closed r-balls around every point
// that violates the hard core, refilled with a fresh Poisson(β) process.
// There is no iteration cap.
func (h *HardCore) SamplePRS(opts ...sampling.Option) ([]geom.Point, error) {
	cfg := sampling.NewConfig(opts...)
	rng := cfg.Rand

	pts := geom.SamplePoisson(rng, h.w, h.beta)
	for round := 1; ; round++ {
		bad, keep := h.split(pts)
		if len(bad) == 0 {
			cfg.Logger.Debug("pointprocess: hard-core prs done", "engine", sampling.EnginePRS,
				"rounds", round-1, "points", len(pts))
			cfg.Observer.Done(sampling.EnginePRS, round-1)
			return pts, nil
		}

		balls := make([]geom.Ball, len(bad))
		for k, x := range bad {
			balls[k] = geom.Ball{Center: x, Radius: h.r}
		}
		fresh := 0
		for k, b := range balls {
			for _, p := range geom.SamplePoisson(rng, b, h.beta) {
				if h.w.Contains(p) && !inAny(balls[:k], p) {
					keep = append(keep, p)
					fresh++
				}
			}
		}
		pts = keep
		cfg.Logger.Debug("pointprocess: hard-core prs round", "engine", sampling.EnginePRS,
			"round", round, "bad", len(bad), "fresh", fresh)
		cfg.Observer.Round(sampling.EnginePRS, round, len(bad))
	}
}

// split partitions pts into points with a neighbour within r and the rest.
// Complexity: O(n²·d).
func (h *HardCore) split(pts []geom.Point) (bad, keep []geom.Point) {
	r2 := h.r * h.r
	isBad := make([]bool, len(pts))
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if geom.Dist2(pts[i], pts[j]) <= r2 {
				isBad[i], isBad[j] = true, true
			}
		}
	}
	for i, p := range pts {
		if isBad[i] {
			bad = append(bad, p)
		} else {
			keep = append(keep, p)
		}
	}
	return bad, keep
}

func inAny(balls []geom.Ball, p geom.Point) bool {
	for _, b := range balls {
		if b.Contains(p) {
			return true
		}
	}
	return false
}
