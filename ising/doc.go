// SPDX-License-Identifier: MIT

// Package ising samples the Ising model on a graph with spins ±1 and law
//
//	π(x) ∝ exp(J·Σ_{ij∈E} x_i x_j + h·Σ_i x_i)
//
// SampleGibbsPerfect runs the rejection-free Bayes filter: spins are
// determined one at a time against their already determined neighbours,
// and a rejection returns the whole neighbourhood to the undetermined set.
// SampleGridPRS runs grid PRS with one cell per vertex and edge
// interaction exp(J x_i x_j − |J|).
//
// Both samplers are exact for every finite J and h and terminate with
// probability one; there is no iteration cap. They are fast when
// |J| < ln(1 + 1/Δ)/(2Δ) and log a Warn advisory otherwise.
package ising
