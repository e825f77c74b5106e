// SPDX-License-Identifier: MIT

package prs_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prs/prs"
	"github.com/katalvlaran/prs/sampling"
)

// pathModel is a path of n binary variables; a constraint is violated when
// two adjacent variables are both 1. It counts SampleVar calls.
type pathModel struct {
	n     int
	p     float64
	calls int
}

func (m *pathModel) Len() int { return m.n }

func (m *pathModel) SampleVar(rng *rand.Rand, i int) int {
	m.calls++
	if rng.Float64() < m.p {
		return 1
	}
	return 0
}

func (m *pathModel) BadSet(state []int) []int {
	var bad []int
	for i := 0; i+1 < m.n; i++ {
		if state[i] == 1 && state[i+1] == 1 {
			bad = append(bad, i, i+1)
		}
	}
	return bad
}

func (m *pathModel) Neighbors(i int) []int {
	var nb []int
	if i > 0 {
		nb = append(nb, i-1)
	}
	if i+1 < m.n {
		nb = append(nb, i+1)
	}
	return nb
}

func (m *pathModel) Propagate(state []int, _ []bool, i, _ int) bool { return state[i] == 1 }

func TestSample_NoViolationReturnsImmediately(t *testing.T) {
	m := &pathModel{n: 10, p: 0}
	obs := &countingObserver{}
	state, err := prs.Sample[int](m, sampling.WithSeed(1), sampling.WithObserver(obs))
	require.NoError(t, err)
	assert.Equal(t, 10, m.calls, "only the initial draw")
	assert.Equal(t, make([]int, 10), state)
	assert.Zero(t, obs.rounds)
	assert.Equal(t, 1, obs.done)
}

func TestSample_SatisfiesConstraints(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		m := &pathModel{n: 30, p: 0.4}
		state, err := prs.Sample[int](m, sampling.WithSeed(seed))
		require.NoError(t, err)
		assert.Empty(t, m.BadSet(state))
	}
}

func TestSample_Deterministic(t *testing.T) {
	a, err := prs.Sample[int](&pathModel{n: 40, p: 0.5}, sampling.WithSeed(9))
	require.NoError(t, err)
	b, err := prs.Sample[int](&pathModel{n: 40, p: 0.5}, sampling.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSample_ExactOnShortPath(t *testing.T) {
	// On a path of 3 binary variables with p=1/2 the hard-core conditional
	// law is uniform over the 5 independent sets.
	const runs = 20000
	counts := map[[3]int]int{}
	rng := rand.New(rand.NewPCG(5, 6))
	for k := 0; k < runs; k++ {
		s, err := prs.Sample[int](&pathModel{n: 3, p: 0.5}, sampling.WithRand(rng))
		require.NoError(t, err)
		counts[[3]int{s[0], s[1], s[2]}]++
	}
	require.Len(t, counts, 5)
	for k, c := range counts {
		assert.InDelta(t, runs/5, c, 300, "state %v", k)
	}
}

func TestClosure(t *testing.T) {
	m := &pathModel{n: 7}
	// Occupied bad vertices pull in both neighbours; the empty 0 and 3
	// block further growth.
	state := []int{0, 1, 1, 0, 1, 1, 1}
	r := prs.Closure[int](m, state, []int{1, 2})
	assert.Equal(t, []int{1, 2, 0, 3}, r)

	// An occupied neighbour keeps the closure growing until an empty vertex.
	state = []int{1, 1, 1, 1, 0, 1, 0}
	r = prs.Closure[int](m, state, []int{1, 2})
	assert.Equal(t, []int{1, 2, 0, 3, 4}, r)
}

func TestSample_NilModel(t *testing.T) {
	_, err := prs.Sample[int](nil)
	assert.ErrorIs(t, err, prs.ErrNilModel)
	_, err = prs.Filter[int](nil)
	assert.ErrorIs(t, err, prs.ErrNilModel)
}

// coinFilter proposes fair bits and always accepts.
type coinFilter struct{ n int }

func (m coinFilter) Len() int                    { return m.n }
func (m coinFilter) Neighbors(i int) []int       { return (&pathModel{n: m.n}).Neighbors(i) }
func (m coinFilter) Initial(*rand.Rand, int) int { return 0 }

func (m coinFilter) Propose(rng *rand.Rand, _ []int, _ []bool, _ int) int {
	return rng.IntN(2)
}

func (m coinFilter) Accept(_ []int, _ []bool, _ int, _ int) float64 { return 1 }

func TestFilter_AcceptAll(t *testing.T) {
	obs := &countingObserver{}
	state, err := prs.Filter[int](coinFilter{n: 64}, sampling.WithSeed(2), sampling.WithObserver(obs))
	require.NoError(t, err)
	require.Len(t, state, 64)
	assert.Zero(t, obs.rounds, "no rejections")
	assert.Equal(t, 1, obs.done)
	assert.Equal(t, 64, obs.lastRounds, "one step per variable")
}

type countingObserver struct {
	rounds, done, lastRounds int
}

func (o *countingObserver) Round(string, int, int) { o.rounds++ }
func (o *countingObserver) Done(_ string, rounds int) {
	o.done++
	o.lastRounds = rounds
}
func (o *countingObserver) Horizon(int) {}
