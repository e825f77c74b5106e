// SPDX-License-Identifier: MIT
//
// File: sample.go
// Role: Grid PRS outer loop and resampling-set construction.
// Determinism:
//   - Marks are drawn in edge-ID order; cells in R are redrawn in
//     insertion order; bad edges are scanned in edge-ID order.

package gridprs

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/prs/core"
	"github.com/katalvlaran/prs/sampling"
)

// Sample returns the cell contents of an exact sample from m.
// There is no iteration cap.
func Sample[C any](m Model[C], opts ...sampling.Option) ([]C, error) {
	if m == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilModel)
	}
	g := m.Graph()
	if g == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNilGraph)
	}
	cfg := sampling.NewConfig(opts...)
	rng := cfg.Rand

	n := g.Order()
	marks := core.NewWeighted(g, func(core.Edge) float64 { return rng.Float64() })
	cells := make([]C, n)

	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	for round := 1; ; round++ {
		for _, i := range r {
			cells[i] = m.SampleCell(rng, i)
		}
		r = resamplingSet(m, g, marks, cells, rng)
		if len(r) == 0 {
			cfg.Logger.Debug("gridprs: done", "engine", sampling.EngineGrid, "rounds", round, "cells", n)
			cfg.Observer.Done(sampling.EngineGrid, round)
			return cells, nil
		}
		cfg.Logger.Debug("gridprs: round", "engine", sampling.EngineGrid, "round", round, "resampled", len(r))
		cfg.Observer.Round(sampling.EngineGrid, round, len(r))
	}
}

// resamplingSet finds the bad edges, redraws their marks and grows R
// breadth-first. Marks touched by the closure are redrawn in place.
func resamplingSet[C any](m Model[C], g *core.Graph, marks *core.Weighted, cells []C, rng *rand.Rand) []int {
	inR := make([]bool, g.Order())
	var r []int
	add := func(v int) bool {
		if inR[v] {
			return false
		}
		inR[v] = true
		r = append(r, v)
		return true
	}

	for _, e := range g.Edges() {
		if marks.Weight(e.ID) > m.GibbsInteraction(e.From, e.To, cells[e.From], cells[e.To]) {
			marks.SetWeight(e.ID, rng.Float64())
			add(e.From)
			add(e.To)
		}
	}

	frontier := append([]int(nil), r...)
	for len(frontier) > 0 {
		var next []int
		for _, i := range frontier {
			nb, ids := g.Neighbors(i), g.IncidentEdges(i)
			for k, j := range nb {
				id := ids[k]
				if inR[j] {
					if m.InnerInteractionPossible(i, j, cells[i], cells[j]) {
						marks.SetWeight(id, rng.Float64())
					}
					continue
				}
				if m.OuterInteractionPossible(i, j, cells[i], marks.Weight(id)) {
					add(j)
					next = append(next, j)
				}
				marks.SetWeight(id, rng.Float64())
			}
		}
		frontier = next
	}
	return r
}
