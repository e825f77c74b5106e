// SPDX-License-Identifier: MIT
//
// config.go: functional options resolved into a Config.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil RNG, nil logger, non-positive counts). Samplers never panic.
//   • Later options override earlier ones.

package sampling

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"runtime"

	"github.com/katalvlaran/prs/geom"
)

// Default knobs.
const (
	// DefaultInitialHorizon is the number of backward steps of the first
	// dominated CFTP attempt.
	DefaultInitialHorizon = 1
)

// CouplingHook observes the lower and upper processes after the forward
// replay of dominated CFTP processes event `step` (0-based, oldest first).
// The slices are only valid during the call.
type CouplingHook func(step int, lower, upper []geom.Point)

// Config is the resolved sampler configuration.
type Config struct {
	// Rand is the random stream for every draw.
	Rand *rand.Rand
	// Logger receives Debug round traces and Warn advisories.
	Logger *slog.Logger
	// Observer receives round/termination callbacks.
	Observer Observer
	// InitialHorizon is the first dominated CFTP backward horizon.
	InitialHorizon int
	// CouplingHook instruments the dominated CFTP forward replay; may be nil.
	CouplingHook CouplingHook
	// Workers bounds the goroutines used by Parallel.
	Workers int

	seed   uint64
	seeded bool
}

// Option customizes a Config.
type Option func(*Config)

// NewConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func NewConfig(opts ...Option) Config {
	cfg := Config{
		Logger:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Observer:       NopObserver{},
		InitialHorizon: DefaultInitialHorizon,
		Workers:        runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rand == nil {
		cfg.Rand = defaultRand()
	}
	return cfg
}

// WithSeed selects a deterministic PCG stream.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Rand = newPCG(seed)
		c.seed, c.seeded = seed, true
	}
}

// WithRand threads an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampling: WithRand(nil)")
	}
	return func(c *Config) {
		c.Rand = r
		c.seeded = false
	}
}

// WithLogger sets a structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sampling: WithLogger(nil)")
	}
	return func(c *Config) { c.Logger = l }
}

// WithObserver sets the round observer. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("sampling: WithObserver(nil)")
	}
	return func(c *Config) { c.Observer = o }
}

// WithInitialHorizon sets the first dominated CFTP horizon. Panics if n < 1.
func WithInitialHorizon(n int) Option {
	if n < 1 {
		panic("sampling: WithInitialHorizon(n<1)")
	}
	return func(c *Config) { c.InitialHorizon = n }
}

// WithCouplingHook installs a dominated CFTP instrumentation hook. Panics on nil.
func WithCouplingHook(h CouplingHook) Option {
	if h == nil {
		panic("sampling: WithCouplingHook(nil)")
	}
	return func(c *Config) { c.CouplingHook = h }
}

// WithWorkers bounds the number of goroutines Parallel uses. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sampling: WithWorkers(n<1)")
	}
	return func(c *Config) { c.Workers = n }
}
