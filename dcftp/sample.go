// SPDX-License-Identifier: MIT
//
// File: sample.go
// Role: Backward extension of the dominating process and forward sandwich
// coupling.
// AI-HINT (file):
//   - events[0] is the most recent step; the replay walks events backward.
//   - Point identity is an int id; coordinates are never compared.

package dcftp

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/prs/geom"
	"github.com/katalvlaran/prs/sampling"
)

// event is one step of the dominating process in forward time. A zero
// mark is a death; a positive mark is a birth.
type event struct {
	id   int
	mark float64
}

// dominating holds the backward simulation of D and the event log.
type dominating struct {
	w      geom.Window
	rate   float64 // β·|W|
	points []geom.Point
	d      *pointSet // D at the deepest simulated time
	events []event
}

// Sample returns an exact sample of m by dominated CFTP.
// There is no iteration cap; the horizon doubles until coalescence.
func Sample(m Model, opts ...sampling.Option) ([]geom.Point, error) {
	return SampleWithConfig(m, sampling.NewConfig(opts...))
}

// SampleWithConfig is Sample with an already resolved configuration, for
// callers that run many restricted samplers on one stream.
func SampleWithConfig(m Model, cfg sampling.Config) ([]geom.Point, error) {
	if m == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilModel)
	}
	repulsive := m.IsRepulsive()
	if !repulsive && !m.IsAttractive() {
		return nil, fmt.Errorf("Sample: %w", ErrNotMonotone)
	}
	beta := m.UpperBoundIntensity()
	if !(beta > 0) || math.IsInf(beta, 0) {
		return nil, fmt.Errorf("Sample: beta=%g: %w", beta, ErrInvalidBound)
	}

	rng := cfg.Rand
	w := m.Window()
	if !(w.Volume() > 0) {
		return nil, fmt.Errorf("Sample: volume=%g: %w", w.Volume(), geom.ErrEmptyWindow)
	}
	dom := &dominating{w: w, rate: beta * w.Volume(), d: newPointSet()}
	for _, p := range geom.SamplePoisson(rng, w, beta) {
		dom.d.add(dom.newPoint(p), p)
	}

	horizon := cfg.InitialHorizon
	for attempt := 1; ; attempt++ {
		dom.extend(rng, horizon-len(dom.events))
		lower, coalesced := dom.couple(m, beta, repulsive, cfg.CouplingHook)
		if coalesced {
			cfg.Logger.Debug("dcftp: coalesced", "engine", sampling.EngineDCFTP,
				"attempts", attempt, "horizon", horizon, "points", len(lower))
			cfg.Observer.Horizon(horizon)
			cfg.Observer.Done(sampling.EngineDCFTP, attempt)
			return lower, nil
		}
		cfg.Logger.Debug("dcftp: no coalescence", "engine", sampling.EngineDCFTP, "attempt", attempt, "horizon", horizon)
		cfg.Observer.Round(sampling.EngineDCFTP, attempt, horizon)
		horizon *= 2
	}
}

// newPoint registers p and returns its id.
func (dom *dominating) newPoint(p geom.Point) int {
	dom.points = append(dom.points, p)
	return len(dom.points) - 1
}

// extend runs D backward by steps events.
func (dom *dominating) extend(rng *rand.Rand, steps int) {
	for s := 0; s < steps; s++ {
		n := float64(dom.d.len())
		if rng.Float64()*(dom.rate+n) < dom.rate {
			// Backward birth: the point dies in forward time.
			p := dom.w.Sample(rng)
			id := dom.newPoint(p)
			dom.d.add(id, p)
			dom.events = append(dom.events, event{id: id})
			continue
		}
		// Backward death: the point is born in forward time.
		id := dom.d.at(rng.IntN(dom.d.len()))
		dom.d.remove(id)
		dom.events = append(dom.events, event{id: id, mark: 1 - rng.Float64()})
	}
}

// couple replays the log forward from D at the deepest time and reports
// whether the lower and upper processes met at time 0.
func (dom *dominating) couple(m Model, beta float64, repulsive bool, hook sampling.CouplingHook) ([]geom.Point, bool) {
	lower := newPointSet()
	upper := dom.d.clone()

	step := 0
	for k := len(dom.events) - 1; k >= 0; k-- {
		ev := dom.events[k]
		if ev.mark == 0 {
			lower.remove(ev.id)
			upper.remove(ev.id)
		} else {
			x := dom.points[ev.id]
			lamL := m.PapangelouIntensity(x, lower.points())
			lamU := m.PapangelouIntensity(x, upper.points())
			toLower, toUpper := lamU, lamL
			if !repulsive {
				toLower, toUpper = lamL, lamU
			}
			if ev.mark < toLower/beta {
				lower.add(ev.id, x)
			}
			if ev.mark < toUpper/beta {
				upper.add(ev.id, x)
			}
		}
		if hook != nil {
			hook(step, lower.points(), upper.points())
		}
		step++
	}

	if lower.len() != upper.len() {
		return nil, false
	}
	return append([]geom.Point(nil), lower.points()...), true
}
