// SPDX-License-Identifier: MIT

// Package sampling carries the configuration shared by every exact sampler
// in this module: the random stream, logging, observation hooks and the
// parallel batch helper.
//
// RNG policy:
//
//   - WithSeed(seed) gives a deterministic PCG stream.
//   - WithRand(r) threads an explicit *rand.Rand.
//   - Absent both, a fresh PCG stream seeded from the runtime source is used.
//
// The resolved *rand.Rand is passed explicitly through every draw; engines
// never call package-level random functions. A *rand.Rand is NOT safe for
// concurrent use: run independent samplers on independent streams
// (DeriveRand, Parallel).
//
// Logging uses log/slog and discards by default. Observers receive one
// callback per resampling round and one per finished sample; see the
// metrics package for a Prometheus-backed Observer.
package sampling
