// SPDX-License-Identifier: MIT

// Package hardcore samples the hard-core model on a graph: independent
// sets I drawn with probability proportional to λ^|I|.
//
// Two exact samplers are provided. SamplePRS runs partial rejection
// sampling with one Bernoulli(λ/(1+λ)) variable per vertex; the resampling
// set is the bad set together with its neighbourhood. SampleGridPRS treats
// every vertex as a cell of the grid PRS engine with interaction
// φ = 0 when both endpoints are occupied and 1 otherwise.
//
// Both terminate with probability one for every λ > 0. Their expected
// running time is small only below the uniqueness regime; the samplers log
// a Warn advisory when λ exceeds 1/(2√e·Δ − 1).
package hardcore
