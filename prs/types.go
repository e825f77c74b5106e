// SPDX-License-Identifier: MIT

package prs

import (
	"errors"
	"math/rand/v2"
)

// ErrNilModel indicates a nil model was passed to an engine.
var ErrNilModel = errors.New("prs: nil model")

// Model is the family-1 capability: an independent per-variable sampler,
// a violation oracle and a propagation oracle over a dependency graph.
type Model[V any] interface {
	// Len returns the number of variables.
	Len() int
	// SampleVar draws variable i from its exact marginal.
	SampleVar(rng *rand.Rand, i int) V
	// BadSet returns the variables directly involved in a violated constraint.
	// An empty result ends sampling.
	BadSet(state []V) []int
	// Neighbors returns the variables sharing a constraint with i.
	Neighbors(i int) []int
	// Propagate reports whether j ∉ R must join R given that i ∈ R will be
	// redrawn: true when a constraint shared by i and j is not ruled out by
	// the current values of the variables already in R. inR is the
	// membership of R so far.
	Propagate(state []V, inR []bool, i, j int) bool
}

// FilterModel is the family-2 capability consumed by Filter.
type FilterModel[V any] interface {
	// Len returns the number of variables.
	Len() int
	// Neighbors returns the variables interacting with i.
	Neighbors(i int) []int
	// Initial returns the starting value of variable i. Any value is valid.
	Initial(rng *rand.Rand, i int) V
	// Propose draws a candidate value for i given the current state and the
	// undetermined set.
	Propose(rng *rand.Rand, state []V, undetermined []bool, i int) V
	// Accept returns the probability in [0,1] of accepting c for i.
	Accept(state []V, undetermined []bool, i int, c V) float64
}
