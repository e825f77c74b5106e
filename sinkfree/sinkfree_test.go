// SPDX-License-Identifier: MIT

package sinkfree_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/prs/builder"
	"github.com/katalvlaran/prs/core"
	"github.com/katalvlaran/prs/sampling"
	"github.com/katalvlaran/prs/sinkfree"
)

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := sinkfree.New(nil)
	assert.ErrorIs(t, err, sinkfree.ErrNilGraph)

	_, err = sinkfree.New(core.NewGraph(3, core.WithDirected(true)))
	assert.ErrorIs(t, err, sinkfree.ErrDirectedGraph)

	// A tree has one edge too few.
	_, err = sinkfree.New(builder.MustBuild(builder.Path(4)))
	assert.ErrorIs(t, err, sinkfree.ErrNoSinkFreeOrientation)

	// A cycle plus an isolated vertex.
	g := core.NewGraph(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	_, err = sinkfree.New(g)
	assert.ErrorIs(t, err, sinkfree.ErrNoSinkFreeOrientation)
}

func TestCount(t *testing.T) {
	t.Parallel()

	n, err := sinkfree.Count(builder.MustBuild(builder.Cycle(5)))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = sinkfree.Count(builder.MustBuild(builder.Grid(3, 3)))
	require.NoError(t, err)
	assert.Equal(t, 352, n)

	_, err = sinkfree.Count(builder.MustBuild(builder.Complete(8)))
	assert.ErrorIs(t, err, sinkfree.ErrTooManyEdges)
}

func TestSample_SinkFree(t *testing.T) {
	t.Parallel()

	g := builder.MustBuild(builder.RandomSparse(30, 0.2), builder.WithSeed(3))
	m, err := sinkfree.New(g)
	if err != nil {
		t.Skipf("random graph has no sink-free orientation: %v", err)
	}
	for seed := uint64(0); seed < 20; seed++ {
		o, err := m.Sample(sampling.WithSeed(seed))
		require.NoError(t, err)
		assert.Empty(t, o.Sinks())
		assert.Equal(t, g.Size(), o.Len())
	}
}

func TestSample_Deterministic(t *testing.T) {
	t.Parallel()

	m, err := sinkfree.New(builder.MustBuild(builder.Grid(4, 4)))
	require.NoError(t, err)
	a, err := m.Sample(sampling.WithSeed(9))
	require.NoError(t, err)
	b, err := m.Sample(sampling.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, a.Key(), b.Key())
}

func TestSample_UniformOnGrid(t *testing.T) {
	g := builder.MustBuild(builder.Grid(3, 3))
	m, err := sinkfree.New(g)
	require.NoError(t, err)

	index := map[string]int{}
	require.NoError(t, sinkfree.Enumerate(g, func(o *core.Orientation) {
		index[o.Key()] = len(index)
	}))
	require.Len(t, index, 352)

	const runs = 20000
	counts := make([]float64, len(index))
	rng := rand.New(rand.NewPCG(21, 22))
	for k := 0; k < runs; k++ {
		o, err := m.Sample(sampling.WithRand(rng))
		require.NoError(t, err)
		idx, ok := index[o.Key()]
		require.True(t, ok, "sample %s is not sink-free", o.Key())
		counts[idx]++
	}

	exp := float64(runs) / float64(len(counts))
	var chi2 float64
	for _, c := range counts {
		chi2 += (c - exp) * (c - exp) / exp
	}
	p := distuv.ChiSquared{K: float64(len(counts) - 1)}.Survival(chi2)
	assert.Greater(t, p, 0.01, "chi2=%.2f", chi2)
}
