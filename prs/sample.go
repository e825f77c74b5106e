// SPDX-License-Identifier: MIT
//
// File: sample.go
// Role: Family-1 partial rejection sampling and the resampling-set closure.
// Determinism:
//   - For a fixed stream, the output is a pure function of the model:
//     variables are drawn in index order and R is redrawn in insertion order.

package prs

import (
	"fmt"

	"github.com/katalvlaran/prs/sampling"
)

// Sample returns an exact sample from the product distribution of m
// conditioned on no constraint being violated.
//
// If the initial draw has an empty bad set, Sample returns it without
// further calls to SampleVar.
func Sample[V any](m Model[V], opts ...sampling.Option) ([]V, error) {
	if m == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilModel)
	}
	cfg := sampling.NewConfig(opts...)
	rng := cfg.Rand

	n := m.Len()
	state := make([]V, n)
	for i := range state {
		state[i] = m.SampleVar(rng, i)
	}

	for round := 1; ; round++ {
		bad := m.BadSet(state)
		if len(bad) == 0 {
			cfg.Logger.Debug("prs: done", "engine", sampling.EnginePRS, "rounds", round-1)
			cfg.Observer.Done(sampling.EnginePRS, round-1)
			return state, nil
		}
		r := Closure(m, state, bad)
		for _, i := range r {
			state[i] = m.SampleVar(rng, i)
		}
		cfg.Logger.Debug("prs: round", "engine", sampling.EnginePRS, "round", round, "bad", len(bad), "resampled", len(r))
		cfg.Observer.Round(sampling.EnginePRS, round, len(r))
	}
}

// Closure grows the resampling set from bad by breadth-first propagation
// and returns it in insertion order (bad first, deduplicated).
//
// Complexity: O(|R| · Δ) Propagate calls, where Δ bounds len(Neighbors).
func Closure[V any](m Model[V], state []V, bad []int) []int {
	inR := make([]bool, m.Len())
	r := make([]int, 0, len(bad))
	for _, i := range bad {
		if !inR[i] {
			inR[i] = true
			r = append(r, i)
		}
	}

	frontier := append([]int(nil), r...)
	for len(frontier) > 0 {
		var next []int
		for _, i := range frontier {
			for _, j := range m.Neighbors(i) {
				if inR[j] || !m.Propagate(state, inR, i, j) {
					continue
				}
				inR[j] = true
				r = append(r, j)
				next = append(next, j)
			}
		}
		frontier = next
	}
	return r
}
