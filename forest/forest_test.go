// SPDX-License-Identifier: MIT

package forest_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/prs/builder"
	"github.com/katalvlaran/prs/core"
	"github.com/katalvlaran/prs/forest"
	"github.com/katalvlaran/prs/sampling"
)

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	g := builder.MustBuild(builder.Grid(2, 2))
	_, err := forest.New(nil, []int{0})
	assert.ErrorIs(t, err, forest.ErrNilGraph)
	_, err = forest.New(g, nil)
	assert.ErrorIs(t, err, forest.ErrNoRoots)
	_, err = forest.New(g, []int{0, 4})
	assert.ErrorIs(t, err, forest.ErrRootNotFound)
	_, err = forest.New(core.NewGraph(3), []int{0})
	assert.ErrorIs(t, err, forest.ErrDisconnected)
	_, err = forest.New(core.NewGraph(2, core.WithDirected(true)), []int{0})
	assert.ErrorIs(t, err, forest.ErrDirectedGraph)

	m, err := forest.New(g, []int{3, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, m.Roots())
}

func TestSample_ValidAndReproducible(t *testing.T) {
	t.Parallel()

	g := builder.MustBuild(builder.Grid(5, 5))
	m, err := forest.New(g, []int{1, 13})
	require.NoError(t, err)

	f, err := m.Sample(sampling.WithSeed(42))
	require.NoError(t, err)
	require.NoError(t, f.Validate(g))
	assert.Equal(t, []int{1, 13}, f.Roots)
	for v := range f.Successor {
		r := f.RootOf(v)
		assert.True(t, r == 1 || r == 13, "vertex %d reaches %d", v, r)
	}

	d, err := f.ToGraph()
	require.NoError(t, err)
	assert.True(t, d.Directed())
	assert.Equal(t, g.Order()-2, d.Size())

	again, err := m.Sample(sampling.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, f.Successor, again.Successor)
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	g := builder.MustBuild(builder.Cycle(4))
	tests := []struct {
		name string
		f    forest.Forest
	}{
		{"length", forest.Forest{Successor: []int{-1, 0, 1}, Roots: []int{0}}},
		{"root with successor", forest.Forest{Successor: []int{1, 0, 1, 0}, Roots: []int{0}}},
		{"missing successor", forest.Forest{Successor: []int{-1, 0, -1, 0}, Roots: []int{0}}},
		{"non-edge", forest.Forest{Successor: []int{-1, 0, 0, 0}, Roots: []int{0}}},
		{"cycle", forest.Forest{Successor: []int{-1, 2, 1, 0}, Roots: []int{0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.f.Validate(g), forest.ErrInvalidForest)
		})
	}
	ok := forest.Forest{Successor: []int{-1, 0, 1, 0}, Roots: []int{0}}
	assert.NoError(t, ok.Validate(g))
}

func TestSample_UniformOnSmallGrid(t *testing.T) {
	g := builder.MustBuild(builder.Grid(2, 3))
	roots := []int{0, 5}
	m, err := forest.New(g, roots)
	require.NoError(t, err)

	// Enumerate every successor vector and keep the valid forests.
	index := map[string]int{}
	succ := make([]int, g.Order())
	var walk func(v int)
	walk = func(v int) {
		if v == g.Order() {
			f := forest.Forest{Successor: succ, Roots: roots}
			if f.Validate(g) == nil {
				index[fmt.Sprint(succ)] = len(index)
			}
			return
		}
		if v == 0 || v == 5 {
			succ[v] = forest.NoSuccessor
			walk(v + 1)
			return
		}
		for _, u := range g.Neighbors(v) {
			succ[v] = u
			walk(v + 1)
		}
	}
	walk(0)
	require.Greater(t, len(index), 1)

	const runs = 10000
	counts := make([]float64, len(index))
	rng := rand.New(rand.NewPCG(31, 32))
	for k := 0; k < runs; k++ {
		f, err := m.Sample(sampling.WithRand(rng))
		require.NoError(t, err)
		idx, ok := index[fmt.Sprint(f.Successor)]
		require.True(t, ok, "invalid forest %v", f.Successor)
		counts[idx]++
	}

	exp := float64(runs) / float64(len(counts))
	var chi2 float64
	for _, c := range counts {
		chi2 += (c - exp) * (c - exp) / exp
	}
	p := distuv.ChiSquared{K: float64(len(counts) - 1)}.Survival(chi2)
	assert.Greater(t, p, 0.001, "chi2=%.2f over %d forests", chi2, len(counts))
}

func TestSample_SingleVertex(t *testing.T) {
	t.Parallel()

	m, err := forest.New(core.NewGraph(1), []int{0})
	require.NoError(t, err)
	f, err := m.Sample(sampling.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []int{forest.NoSuccessor}, f.Successor)
}

func TestSampleVar_EveryNonRootHasSuccessor(t *testing.T) {
	t.Parallel()

	// Isolated non-root vertices are rejected up front.
	isolated := core.NewGraph(2)
	_, err := forest.New(isolated, []int{0})
	assert.ErrorIs(t, err, forest.ErrDisconnected)

	g := builder.MustBuild(builder.Path(4))
	m, err := forest.New(g, []int{2})
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < m.Len(); i++ {
		for k := 0; k < 20; k++ {
			j := m.SampleVar(rng, i)
			if i == 2 {
				assert.Equal(t, forest.NoSuccessor, j)
				continue
			}
			assert.True(t, g.HasEdge(i, j), "vertex %d drew %d", i, j)
		}
	}
}
