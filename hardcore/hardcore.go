// SPDX-License-Identifier: MIT
//
// File: hardcore.go
// Role: Hard-core model on graphs and its PRS / grid PRS adapters.
// Determinism:
//   - Occupied vertices are returned in ascending order.

package hardcore

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

// Sentinel errors for the hard-core model.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("hardcore: nil graph")
	// ErrInvalidFugacity indicates λ ≤ 0 or a non-finite λ.
	ErrInvalidFugacity = errors.New("hardcore: fugacity must be positive and finite")
)

// Model is the hard-core model with fugacity Lambda on a graph.
type Model struct {
	g      *core.Graph
	lambda float64
	p      float64 // λ/(1+λ)
}

// New validates λ and returns the model.
//
// Errors: ErrNilGraph, ErrInvalidFugacity.
func New(g *core.Graph, lambda float64) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	if !(lambda > 0) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("New: lambda=%g: %w", lambda, ErrInvalidFugacity)
	}
	return &Model{g: g, lambda: lambda, p: lambda / (1 + lambda)}, nil
}

// Graph returns the underlying graph.
func (m *Model) Graph() *core.Graph { return m.g }

// Lambda returns the fugacity.
func (m *Model) Lambda() float64 { return m.lambda }

// Threshold returns 1/(2√e·Δ − 1), the fugacity below which the PRS
// samplers run in expected linear time. It is +Inf for edgeless graphs.
func (m *Model) Threshold() float64 {
	d := float64(m.g.MaxDegree())
	den := 2*math.Sqrt(math.E)*d - 1
	if den <= 0 {
		return math.Inf(1)
	}
	return 1 / den
}

// Sample is SamplePRS.
func (m *Model) Sample(opts ...sampling.Option) ([]int, error) {
	return m.SamplePRS(opts...)
}

// SamplePRS returns an exact hard-core sample by partial rejection sampling.
func (m *Model) SamplePRS(opts ...sampling.Option) ([]int, error) {
	cfg := sampling.NewConfig(opts...)
	m.advise(cfg)
	x, err := prs.Sample[bool](prsModel{m}, cfg.Options()...)
	if err != nil {
		return nil, fmt.Errorf("SamplePRS: %w", err)
	}
	return occupied(x), nil
}

// SampleGridPRS returns an exact hard-core sample by grid PRS over the
// graph's own vertices.
func (m *Model) SampleGridPRS(opts ...sampling.Option) ([]int, error) {
	cfg := sampling.NewConfig(opts...)
	m.advise(cfg)
	x, err := gridprs.Sample[bool](gridModel{m}, cfg.Options()...)
	if err != nil {
		return nil, fmt.Errorf("SampleGridPRS: %w", err)
	}
	return occupied(x), nil
}

func (m *Model) advise(cfg sampling.Config) {
	if th := m.Threshold(); m.lambda > th {
		cfg.Logger.Warn("hardcore: fugacity above the fast-mixing threshold; sampling may be slow",
			"lambda", m.lambda, "threshold", th, "max_degree", m.g.MaxDegree())
	}
}

func (m *Model) bernoulli(rng *rand.Rand) bool { return rng.Float64() < m.p }

// IsIndependent reports whether no two vertices of set are adjacent in g.
// Vertices outside g make the set invalid.
// Complexity: O(|set|·Δ).
func IsIndependent(g *core.Graph, set []int) bool {
	in := make(map[int]bool, len(set))
	for _, v := range set {
		if !g.HasVertex(v) {
			return false
		}
		in[v] = true
	}
	for _, v := range set {
		for _, u := range g.Neighbors(v) {
			if in[u] {
				return false
			}
		}
	}
	return true
}

func occupied(x []bool) []int {
	var out []int
	for v, on := range x {
		if on {
			out = append(out, v)
		}
	}
	return out
}

// prsModel adapts Model to prs.Model with one occupancy bit per vertex.
type prsModel struct{ *Model }

func (a prsModel) Len() int { return a.g.Order() }

func (a prsModel) SampleVar(rng *rand.Rand, _ int) bool { return a.bernoulli(rng) }

// BadSet returns the occupied vertices with an occupied neighbour.
func (a prsModel) BadSet(x []bool) []int {
	var bad []int
	for v, on := range x {
		if !on {
			continue
		}
		for _, u := range a.g.Neighbors(v) {
			if x[u] {
				bad = append(bad, v)
				break
			}
		}
	}
	return bad
}

func (a prsModel) Neighbors(i int) []int { return a.g.Neighbors(i) }

// Propagate adds every neighbour of an occupied vertex in R: its edge
// constraint cannot be ruled out while i may be redrawn as occupied.
func (a prsModel) Propagate(x []bool, _ []bool, i, _ int) bool { return x[i] }

// gridModel adapts Model to gridprs.Model with one vertex per cell.
type gridModel struct{ *Model }

func (a gridModel) Graph() *core.Graph { return a.g }

func (a gridModel) SampleCell(rng *rand.Rand, _ int) bool { return a.bernoulli(rng) }

func (a gridModel) GibbsInteraction(_, _ int, ci, cj bool) float64 {
	if ci && cj {
		return 0
	}
	return 1
}

func (a gridModel) InnerInteractionPossible(_, _ int, ci, cj bool) bool { return ci && cj }

// OuterInteractionPossible: an occupied ci is blocked by an occupied cj
// for every mark in (0,1].
func (a gridModel) OuterInteractionPossible(_, _ int, ci bool, mark float64) bool {
	return ci && mark > 0
}
