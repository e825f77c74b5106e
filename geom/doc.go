// SPDX-License-Identifier: MIT

// Package geom provides the window primitives used by the spatial samplers:
// points, axis-aligned boxes and Euclidean balls in any dimension.
//
// What:
//
//   - Point is a coordinate vector; Dist / Dist2 give Euclidean distances.
//   - Window is the capability every observation region exposes:
//     dimension, volume, membership, uniform sampling and a bounding box.
//   - Box and Ball implement Window.
//   - SamplePoisson draws a homogeneous Poisson process on a Window.
//
// Randomness:
//
//   - Every draw takes an explicit *rand.Rand (math/rand/v2); nothing here
//     touches a global stream.
//
// Errors:
//
//   - ErrEmptyWindow: a box side or ball radius is not strictly positive.
//   - ErrDimensionMismatch: coordinates of different dimensions were mixed.
package geom
