// SPDX-License-Identifier: MIT
//
// File: ising.go
// Role: Ising model, Bayes-filter and grid PRS adapters.
// AI-HINT (file):
//   - Spins are int ±1 so products and sums stay exact.
//   - The filter proposal tilts toward flipping by exp(|J|·|c−x_u|·d_F);
//     the acceptance exp(J·S_F·(c−x_u) − |J|·|c−x_u|·d_F) undoes the tilt
//     and is at most 1.

package ising

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/prs/core"
	"github.com/katalvlaran/prs/gridprs"
	"github.com/katalvlaran/prs/prs"
	"github.com/katalvlaran/prs/sampling"
)

// Sentinel errors for the Ising model.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("ising: nil graph")
	// ErrInvalidParameter indicates a non-finite coupling or field.
	ErrInvalidParameter = errors.New("ising: coupling and field must be finite")
)

// Model is the Ising model with coupling J and external field H.
type Model struct {
	g    *core.Graph
	j, h float64
}

// New validates J and h and returns the model.
//
// Errors: ErrNilGraph, ErrInvalidParameter.
func New(g *core.Graph, j, h float64) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	for _, v := range []float64{j, h} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("New: J=%g h=%g: %w", j, h, ErrInvalidParameter)
		}
	}
	return &Model{g: g, j: j, h: h}, nil
}

// Graph returns the underlying graph.
func (m *Model) Graph() *core.Graph { return m.g }

// Coupling returns J.
func (m *Model) Coupling() float64 { return m.j }

// Field returns h.
func (m *Model) Field() float64 { return m.h }

// Threshold returns ln(1 + 1/Δ)/(2Δ), the coupling strength below which
// the samplers run in expected linear time. It is +Inf for edgeless graphs.
func (m *Model) Threshold() float64 {
	d := float64(m.g.MaxDegree())
	if d == 0 {
		return math.Inf(1)
	}
	return math.Log1p(1/d) / (2 * d)
}

// LogWeight returns J·Σ x_i x_j + h·Σ x_i, the unnormalised log-density.
// Complexity: O(V + E).
func (m *Model) LogWeight(x []int) float64 {
	var pair, field int
	for _, e := range m.g.Edges() {
		pair += x[e.From] * x[e.To]
	}
	for _, s := range x {
		field += s
	}
	return m.j*float64(pair) + m.h*float64(field)
}

// Magnetization returns the mean spin of x.
func Magnetization(x []int) float64 {
	if len(x) == 0 {
		return 0
	}
	s := 0
	for _, v := range x {
		s += v
	}
	return float64(s) / float64(len(x))
}

// Sample is SampleGibbsPerfect.
func (m *Model) Sample(opts ...sampling.Option) ([]int, error) {
	return m.SampleGibbsPerfect(opts...)
}

// SampleGibbsPerfect returns an exact Ising sample by the Bayes filter.
func (m *Model) SampleGibbsPerfect(opts ...sampling.Option) ([]int, error) {
	cfg := sampling.NewConfig(opts...)
	m.advise(cfg)
	x, err := prs.Filter[int](filterModel{m}, cfg.Options()...)
	if err != nil {
		return nil, fmt.Errorf("SampleGibbsPerfect: %w", err)
	}
	return x, nil
}

// SampleGridPRS returns an exact Ising sample by grid PRS.
func (m *Model) SampleGridPRS(opts ...sampling.Option) ([]int, error) {
	cfg := sampling.NewConfig(opts...)
	m.advise(cfg)
	x, err := gridprs.Sample[int](gridModel{m}, cfg.Options()...)
	if err != nil {
		return nil, fmt.Errorf("SampleGridPRS: %w", err)
	}
	return x, nil
}

func (m *Model) advise(cfg sampling.Config) {
	if th := m.Threshold(); math.Abs(m.j) >= th {
		cfg.Logger.Warn("ising: coupling above the fast-mixing threshold; sampling may be slow",
			"J", m.j, "threshold", th, "max_degree", m.g.MaxDegree())
	}
}

// fieldSpin draws +1 with probability e^h/(e^h + e^{-h}).
func (m *Model) fieldSpin(rng *rand.Rand) int {
	if rng.Float64() < 1/(1+math.Exp(-2*m.h)) {
		return 1
	}
	return -1
}

// filterModel adapts Model to prs.FilterModel.
type filterModel struct{ *Model }

func (a filterModel) Len() int { return a.g.Order() }

func (a filterModel) Neighbors(i int) []int { return a.g.Neighbors(i) }

// Initial starts every spin at +1.
func (a filterModel) Initial(*rand.Rand, int) int { return 1 }

func (a filterModel) Propose(rng *rand.Rand, x []int, und []bool, u int) int {
	sR, _, dF := a.split(x, und, u)
	absJ := math.Abs(a.j)
	logq := func(c int) float64 {
		flip := 0.0
		if c != x[u] {
			flip = 2
		}
		return a.h*float64(c) + a.j*float64(c*sR) + absJ*flip*float64(dF)
	}
	up, down := logq(1), logq(-1)
	if rng.Float64() < 1/(1+math.Exp(down-up)) {
		return 1
	}
	return -1
}

func (a filterModel) Accept(x []int, und []bool, u, c int) float64 {
	_, sF, dF := a.split(x, und, u)
	if c == x[u] {
		return 1
	}
	diff := float64(c - x[u])
	return math.Exp(a.j*float64(sF)*diff - math.Abs(a.j)*math.Abs(diff)*float64(dF))
}

// split returns the spin sums over the undetermined and determined
// neighbours of u, and the number of determined neighbours.
func (a filterModel) split(x []int, und []bool, u int) (sR, sF, dF int) {
	for _, v := range a.g.Neighbors(u) {
		if und[v] {
			sR += x[v]
		} else {
			sF += x[v]
			dF++
		}
	}
	return sR, sF, dF
}

// gridModel adapts Model to gridprs.Model with one vertex per cell.
type gridModel struct{ *Model }

func (a gridModel) Graph() *core.Graph { return a.g }

func (a gridModel) SampleCell(rng *rand.Rand, _ int) int { return a.fieldSpin(rng) }

func (a gridModel) GibbsInteraction(_, _ int, ci, cj int) float64 {
	return math.Exp(a.j*float64(ci*cj) - math.Abs(a.j))
}

func (a gridModel) InnerInteractionPossible(i, j int, ci, cj int) bool {
	return a.GibbsInteraction(i, j, ci, cj) < 1
}

// OuterInteractionPossible compares the mark with the smallest interaction
// over both spins of the outside cell, exp(−2|J|).
func (a gridModel) OuterInteractionPossible(_, _ int, _ int, mark float64) bool {
	return mark > math.Exp(-2*math.Abs(a.j))
}
