// SPDX-License-Identifier: MIT

// Package metrics exports sampler progress to Prometheus. A Recorder is a
// sampling.Observer; pass it with sampling.WithObserver. It is safe for
// concurrent use, including from sampling.Parallel.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/prs/sampling"
)

// ErrNilRegisterer indicates a nil Prometheus registerer.
var ErrNilRegisterer = errors.New("metrics: nil registerer")

// Recorder counts rounds, resampled set sizes, finished samples and
// dominated CFTP horizons, labelled by engine.
type Recorder struct {
	rounds    *prometheus.CounterVec
	resampled *prometheus.HistogramVec
	samples   *prometheus.CounterVec
	perSample *prometheus.HistogramVec
	horizon   prometheus.Histogram
}

var _ sampling.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg.
//
// Errors: ErrNilRegisterer, or the registration error from reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		return nil, fmt.Errorf("NewRecorder: %w", ErrNilRegisterer)
	}
	r := &Recorder{
		rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prs_rounds_total",
			Help: "Resampling rounds (dCFTP: failed coalescence attempts).",
		}, []string{"engine"}),
		resampled: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prs_resampled_variables",
			Help:    "Size of the resampling set per round.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"engine"}),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prs_samples_total",
			Help: "Exact samples produced.",
		}, []string{"engine"}),
		perSample: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prs_rounds_per_sample",
			Help:    "Rounds (filter: steps; dCFTP: attempts) needed per sample.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 16),
		}, []string{"engine"}),
		horizon: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "prs_dcftp_horizon_steps",
			Help:    "Backward horizon at which dominated CFTP coalesced.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 24),
		}),
	}
	for _, c := range []prometheus.Collector{r.rounds, r.resampled, r.samples, r.perSample, r.horizon} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("NewRecorder: %w", err)
		}
	}
	return r, nil
}

// Round records one round. For dominated CFTP the third argument is the
// failed horizon and is not a set size, so only the counter moves.
func (r *Recorder) Round(engine string, _ int, resampled int) {
	r.rounds.WithLabelValues(engine).Inc()
	if engine != sampling.EngineDCFTP {
		r.resampled.WithLabelValues(engine).Observe(float64(resampled))
	}
}

// Done records a finished sample.
func (r *Recorder) Done(engine string, rounds int) {
	r.samples.WithLabelValues(engine).Inc()
	r.perSample.WithLabelValues(engine).Observe(float64(rounds))
}

// Horizon records a coalescence horizon.
func (r *Recorder) Horizon(steps int) {
	r.horizon.Observe(float64(steps))
}
