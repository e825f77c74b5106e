// SPDX-License-Identifier: MIT

package pointprocess_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/prs/geom"
	"github.com/katalvlaran/prs/pointprocess"
	"github.com/katalvlaran/prs/sampling"
)

func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	w := geom.UnitBox(2)
	flat := geom.Box{Min: geom.Point{0, 0}, Max: geom.Point{1, 0}}

	_, err := pointprocess.NewPoisson(1, nil)
	assert.ErrorIs(t, err, pointprocess.ErrNilWindow)
	_, err = pointprocess.NewPoisson(1, flat)
	assert.ErrorIs(t, err, geom.ErrEmptyWindow)
	_, err = pointprocess.NewPoisson(0, w)
	assert.ErrorIs(t, err, pointprocess.ErrInvalidIntensity)
	_, err = pointprocess.NewStrauss(1, 1.5, 0.1, w)
	assert.ErrorIs(t, err, pointprocess.ErrInvalidInteraction)
	_, err = pointprocess.NewStrauss(1, math.NaN(), 0.1, w)
	assert.ErrorIs(t, err, pointprocess.ErrInvalidInteraction)
	_, err = pointprocess.NewStrauss(1, 0.5, 0, w)
	assert.ErrorIs(t, err, pointprocess.ErrInvalidRange)
	_, err = pointprocess.NewHardCore(math.Inf(1), 0.1, w)
	assert.ErrorIs(t, err, pointprocess.ErrInvalidIntensity)
	_, err = pointprocess.NewAreaInteraction(1, 0, 0.1, w)
	assert.ErrorIs(t, err, pointprocess.ErrInvalidInteraction)
	_, err = pointprocess.NewAreaInteraction(1, 2, -1, w)
	assert.ErrorIs(t, err, pointprocess.ErrInvalidRange)
}

func TestStrauss_Papangelou(t *testing.T) {
	t.Parallel()

	s, err := pointprocess.NewStrauss(10, 0.5, 0.2, geom.UnitBox(2))
	require.NoError(t, err)
	x := geom.Point{0.5, 0.5}
	X := []geom.Point{{0.6, 0.5}, {0.5, 0.7}, {0.9, 0.9}}
	// Two points within 0.2, one of them exactly at distance r.
	assert.InDelta(t, 10*0.25, s.PapangelouIntensity(x, X), 1e-12)
	assert.Equal(t, 10.0, s.PapangelouIntensity(x, nil))
	assert.True(t, s.IsRepulsive())
	assert.False(t, s.IsAttractive())
	assert.Equal(t, 2, pointprocess.ClosePairs(append(X, x), 0.2))

	h, err := pointprocess.NewHardCore(10, 0.2, geom.UnitBox(2))
	require.NoError(t, err)
	assert.Zero(t, h.PapangelouIntensity(x, X))
	assert.False(t, h.Valid(append(X, x)))
	assert.True(t, h.Valid(X[1:]))
}

func TestAreaInteraction_UncoveredVolume(t *testing.T) {
	t.Parallel()

	const r = 0.1
	a, err := pointprocess.NewAreaInteraction(5, 2, r, geom.UnitBox(2))
	require.NoError(t, err)
	x := geom.Point{0.5, 0.5}

	assert.InDelta(t, 4*r*r, a.UncoveredVolume(x, nil), 1e-12)
	assert.InDelta(t, 4*r*r, a.UncoveredVolume(x, []geom.Point{{0.9, 0.9}}), 1e-12)
	assert.InDelta(t, 2*r*r, a.UncoveredVolume(x, []geom.Point{{0.5 + r, 0.5}}), 1e-12)
	// Two half-overlaps meeting in a quarter.
	assert.InDelta(t, r*r, a.UncoveredVolume(x, []geom.Point{{0.5 + r, 0.5}, {0.5, 0.5 + r}}), 1e-12)
	assert.InDelta(t, 0, a.UncoveredVolume(x, []geom.Point{{0.5, 0.5}}), 1e-12)

	// λ(x | ∅) = β·γ^{-1}; a fully covered grain leaves β.
	assert.InDelta(t, 2.5, a.PapangelouIntensity(x, nil), 1e-12)
	assert.InDelta(t, 5, a.PapangelouIntensity(x, []geom.Point{{0.5, 0.5}}), 1e-12)
}

func TestAreaInteraction_Monotone(t *testing.T) {
	t.Parallel()

	w := geom.UnitBox(2)
	attr, err := pointprocess.NewAreaInteraction(5, 3, 0.1, w)
	require.NoError(t, err)
	rep, err := pointprocess.NewAreaInteraction(5, 0.4, 0.1, w)
	require.NoError(t, err)
	assert.True(t, attr.IsAttractive())
	assert.False(t, attr.IsRepulsive())
	assert.True(t, rep.IsRepulsive())
	assert.Equal(t, 5.0, attr.UpperBoundIntensity())
	assert.InDelta(t, 12.5, rep.UpperBoundIntensity(), 1e-12)

	x := geom.Point{0.3, 0.3}
	small := []geom.Point{{0.35, 0.3}}
	large := append(slices.Clone(small), geom.Point{0.3, 0.38}, geom.Point{0.25, 0.25})
	assert.LessOrEqual(t, attr.PapangelouIntensity(x, small), attr.PapangelouIntensity(x, large))
	assert.GreaterOrEqual(t, rep.PapangelouIntensity(x, small), rep.PapangelouIntensity(x, large))
	for _, X := range [][]geom.Point{nil, small, large} {
		assert.LessOrEqual(t, attr.PapangelouIntensity(x, X), attr.UpperBoundIntensity())
		assert.LessOrEqual(t, rep.PapangelouIntensity(x, X), rep.UpperBoundIntensity()+1e-12)
	}
}

func TestAreaInteraction_SampleOrdering(t *testing.T) {
	w := geom.UnitBox(2)
	const beta, runs = 20, 200
	attr, err := pointprocess.NewAreaInteraction(beta, 2, 0.1, w)
	require.NoError(t, err)
	rep, err := pointprocess.NewAreaInteraction(beta, 0.5, 0.1, w)
	require.NoError(t, err)

	mAttr, _ := sampling.Moments(counts(t, runs, 1, attr.Sample))
	mRep, _ := sampling.Moments(counts(t, runs, 2, rep.Sample))
	// λ ≤ β for γ > 1 and λ ≥ β for γ < 1.
	assert.Less(t, mAttr, beta*w.Volume())
	assert.Greater(t, mRep, beta*w.Volume())
}

func TestHardCore_SamplersAgree(t *testing.T) {
	h, err := pointprocess.NewHardCore(40, 0.08, geom.UnitBox(2))
	require.NoError(t, err)

	const runs = 1000
	for name, sample := range map[string]func(...sampling.Option) ([]geom.Point, error){
		"dcftp": h.SampleDCFTP,
		"grid":  h.SampleGridPRS,
		"prs":   h.SamplePRS,
	} {
		pts, err := sample(sampling.WithSeed(3))
		require.NoError(t, err, name)
		assert.True(t, h.Valid(pts), name)
		for _, p := range pts {
			assert.True(t, h.Window().Contains(p), name)
		}
	}

	refN, refNN := summaries(t, runs, 10, h.SampleDCFTP)
	for name, sample := range map[string]func(...sampling.Option) ([]geom.Point, error){
		"grid": h.SampleGridPRS,
		"prs":  h.SamplePRS,
	} {
		n, nn := summaries(t, runs, 20, sample)
		assertSameLaw(t, refN, n, name+" count")
		assertSameLaw(t, refNN, nn, name+" nearest neighbour")
	}
}

func TestStrauss_GridMatchesDCFTP(t *testing.T) {
	s, err := pointprocess.NewStrauss(30, 0.4, 0.1, geom.UnitBox(2))
	require.NoError(t, err)

	const runs = 1000
	refN, refNN := summaries(t, runs, 30, s.SampleDCFTP)
	n, nn := summaries(t, runs, 40, s.SampleGridPRS)
	assertSameLaw(t, refN, n, "strauss count")
	assertSameLaw(t, refNN, nn, "strauss nearest neighbour")
}

func TestPoisson_GridSingleRound(t *testing.T) {
	t.Parallel()

	p, err := pointprocess.NewPoisson(50, geom.UnitBox(2))
	require.NoError(t, err)
	obs := &doneRecorder{}
	pts, err := p.SampleGridPRS(sampling.WithSeed(4), sampling.WithObserver(obs))
	require.NoError(t, err)
	assert.Equal(t, 1, obs.rounds[sampling.EngineGrid])
	for _, x := range pts {
		assert.True(t, p.Window().Contains(x))
	}

	const runs = 200
	xs := counts(t, runs, 50, p.SampleGridPRS)
	mean, _ := sampling.Moments(xs)
	assert.InDelta(t, 50, mean, 4*math.Sqrt(50.0/runs))
}

func TestGridPRS_RequiresBox(t *testing.T) {
	t.Parallel()

	ball, err := geom.NewBall(geom.Point{0, 0}, 1)
	require.NoError(t, err)
	s, err := pointprocess.NewStrauss(5, 0.5, 0.1, ball)
	require.NoError(t, err)
	_, err = s.SampleGridPRS(sampling.WithSeed(1))
	assert.ErrorIs(t, err, pointprocess.ErrGridWindow)

	pts, err := s.Sample(sampling.WithSeed(1))
	require.NoError(t, err)
	for _, x := range pts {
		assert.True(t, ball.Contains(x))
	}
}

// counts draws runs samples in parallel and returns their point counts.
func counts(t *testing.T, runs int, seed uint64, sample func(...sampling.Option) ([]geom.Point, error)) []float64 {
	t.Helper()
	ns, _ := summaries(t, runs, seed, sample)
	return ns
}

type summary struct{ n, nn float64 }

// summaries draws runs samples in parallel and returns their point counts
// and the mean nearest-neighbour distance of every sample with two or more
// points.
func summaries(t *testing.T, runs int, seed uint64, sample func(...sampling.Option) ([]geom.Point, error)) (ns, nns []float64) {
	t.Helper()
	out, err := sampling.Parallel(runs, func(cfg sampling.Config) (summary, error) {
		pts, err := sample(cfg.Options()...)
		return summary{n: float64(len(pts)), nn: meanNearest(pts)}, err
	}, sampling.WithSeed(seed))
	require.NoError(t, err)
	for _, s := range out {
		ns = append(ns, s.n)
		if !math.IsNaN(s.nn) {
			nns = append(nns, s.nn)
		}
	}
	return ns, nns
}

// meanNearest returns the mean distance from each point to its nearest
// neighbour, or NaN for fewer than two points.
func meanNearest(pts []geom.Point) float64 {
	if len(pts) < 2 {
		return math.NaN()
	}
	var sum float64
	for i, p := range pts {
		best := math.Inf(1)
		for j, q := range pts {
			if i != j {
				best = math.Min(best, geom.Dist(p, q))
			}
		}
		sum += best
	}
	return sum / float64(len(pts))
}

// assertSameLaw runs a two-sample Kolmogorov–Smirnov test at level 0.001.
func assertSameLaw(t *testing.T, a, b []float64, name string) {
	t.Helper()
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	d := stat.KolmogorovSmirnov(a, nil, b, nil)
	n, m := float64(len(a)), float64(len(b))
	crit := 1.95 * math.Sqrt((n+m)/(n*m))
	assert.Less(t, d, crit, "%s: KS D=%.3f", name, d)
}

type doneRecorder struct{ rounds map[string]int }

func (o *doneRecorder) Round(string, int, int) {}
func (o *doneRecorder) Done(engine string, rounds int) {
	if o.rounds == nil {
		o.rounds = map[string]int{}
	}
	o.rounds[engine] = rounds
}
func (o *doneRecorder) Horizon(int) {}
