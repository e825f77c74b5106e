// SPDX-License-Identifier: MIT

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prs/builder"
	"github.com/katalvlaran/prs/geom"
	"github.com/katalvlaran/prs/hardcore"
	"github.com/katalvlaran/prs/pointprocess"
	"github.com/katalvlaran/prs/sampling"
)

func TestNewRecorder_Errors(t *testing.T) {
	_, err := NewRecorder(nil)
	assert.ErrorIs(t, err, ErrNilRegisterer)

	reg := prometheus.NewRegistry()
	_, err = NewRecorder(reg)
	require.NoError(t, err)
	_, err = NewRecorder(reg)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}

func TestRecorder_CountsSamples(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	m, err := hardcore.New(builder.MustBuild(builder.Grid(6, 6)), 0.5)
	require.NoError(t, err)
	const runs = 5
	for seed := uint64(0); seed < runs; seed++ {
		_, err := m.SamplePRS(sampling.WithSeed(seed), sampling.WithObserver(rec))
		require.NoError(t, err)
	}
	assert.Equal(t, float64(runs), testutil.ToFloat64(rec.samples.WithLabelValues(sampling.EnginePRS)))
	rounds := testutil.ToFloat64(rec.rounds.WithLabelValues(sampling.EnginePRS))
	assert.GreaterOrEqual(t, rounds, 0.0)

	p, err := pointprocess.NewPoisson(5, geom.UnitBox(2))
	require.NoError(t, err)
	_, err = p.SampleDCFTP(sampling.WithSeed(1), sampling.WithObserver(rec))
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.samples.WithLabelValues(sampling.EngineDCFTP)))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.horizon))

	n, err := testutil.GatherAndCount(reg, "prs_samples_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecorder_ParallelSafe(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	m, err := hardcore.New(builder.MustBuild(builder.Cycle(10)), 0.3)
	require.NoError(t, err)
	const runs = 64
	_, err = sampling.Parallel(runs, func(cfg sampling.Config) ([]int, error) {
		return m.SampleGridPRS(cfg.Options()...)
	}, sampling.WithSeed(2), sampling.WithObserver(rec), sampling.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, float64(runs), testutil.ToFloat64(rec.samples.WithLabelValues(sampling.EngineGrid)))
}
