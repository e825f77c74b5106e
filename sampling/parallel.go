// SPDX-License-Identifier: MIT

package sampling

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel draws n independent samples with fn across cfg.Workers goroutines.
// Draw k runs on its own derived stream, so for a fixed WithSeed the result
// slice is identical regardless of scheduling. The first error stops
// scheduling further draws and is returned.
//
// fn must not share mutable state between calls. Every draw receives the
// same cfg.Observer and cfg.Logger, so the Observer must be safe for
// concurrent use when Workers > 1; metrics.Recorder is.
func Parallel[T any](n int, fn func(cfg Config) (T, error), opts ...Option) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	base := NewConfig(opts...)
	rngs := base.streams(n)
	out := make([]T, n)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(base.Workers)
	for k := 0; k < n; k++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Rand = rngs[k]
			cfg.seeded = false
			v, err := fn(cfg)
			if err != nil {
				return fmt.Errorf("Parallel: draw %d: %w", k, err)
			}
			out[k] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Options returns opts that reproduce cfg inside a nested sampler call.
func (c Config) Options() []Option {
	opts := []Option{
		WithRand(c.Rand),
		WithLogger(c.Logger),
		WithObserver(c.Observer),
		WithInitialHorizon(c.InitialHorizon),
		WithWorkers(c.Workers),
	}
	if c.CouplingHook != nil {
		opts = append(opts, WithCouplingHook(c.CouplingHook))
	}
	return opts
}
