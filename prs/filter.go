// SPDX-License-Identifier: MIT
//
// File: filter.go
// Role: Family-2 rejection-free Bayes filter.
// AI-HINT (file):
//   - undetermined is kept as a slice plus position index for O(1) uniform
//     pick, insert and delete.

package prs

import (
	"fmt"

	"github.com/katalvlaran/prs/sampling"
)

// Filter runs the Bayes filter on m and returns the final state once every
// variable is determined. There is no iteration cap.
func Filter[V any](m FilterModel[V], opts ...sampling.Option) ([]V, error) {
	if m == nil {
		return nil, fmt.Errorf("Filter: %w", ErrNilModel)
	}
	cfg := sampling.NewConfig(opts...)
	rng := cfg.Rand

	n := m.Len()
	state := make([]V, n)
	und := newIndexSet(n)
	for i := 0; i < n; i++ {
		state[i] = m.Initial(rng, i)
		und.add(i)
	}

	steps := 0
	for und.len() > 0 {
		steps++
		u := und.items[rng.IntN(und.len())]
		c := m.Propose(rng, state, und.member, u)
		accept := rng.Float64() < m.Accept(state, und.member, u, c)
		state[u] = c
		if accept {
			und.remove(u)
			continue
		}
		for _, j := range m.Neighbors(u) {
			und.add(j)
		}
		cfg.Observer.Round(sampling.EngineFilter, steps, und.len())
	}

	cfg.Logger.Debug("prs: done", "engine", sampling.EngineFilter, "steps", steps)
	cfg.Observer.Done(sampling.EngineFilter, steps)
	return state, nil
}

// indexSet is a set of ints in 0..n-1 with O(1) add/remove/random access.
type indexSet struct {
	items  []int
	pos    []int
	member []bool
}

func newIndexSet(n int) *indexSet {
	return &indexSet{pos: make([]int, n), member: make([]bool, n)}
}

func (s *indexSet) len() int { return len(s.items) }

func (s *indexSet) add(i int) {
	if s.member[i] {
		return
	}
	s.member[i] = true
	s.pos[i] = len(s.items)
	s.items = append(s.items, i)
}

func (s *indexSet) remove(i int) {
	if !s.member[i] {
		return
	}
	last := s.items[len(s.items)-1]
	s.items[s.pos[i]] = last
	s.pos[last] = s.pos[i]
	s.items = s.items[:len(s.items)-1]
	s.member[i] = false
}
