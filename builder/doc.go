// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for the undirected
// graphs the samplers run on.
//
// Every constructor is a Constructor closure resolved by Build:
//
//	g, err := builder.Build(builder.Grid(3, 3))
//	g, err := builder.Build(builder.RandomSparse(50, 0.1), builder.WithSeed(7))
//
// Vertices are the integers 0..n-1. Edge IDs follow a stable, documented
// emission order, so fixtures are reproducible across runs.
//
// Topologies:
//   - Path(n), Cycle(n), Complete(n)
//   - Grid(rows, cols): 4-neighbourhood, vertex r*cols+c
//   - King(rows, cols): 8-neighbourhood, the strong product of two paths
//   - StrongProduct(g, h): vertex a*|H|+b for a ∈ G, b ∈ H
//   - RandomSparse(n, p): Erdős–Rényi G(n, p), requires WithSeed/WithRand
//
// Errors:
//   - ErrTooFewVertices     – size parameter below the constructor minimum
//   - ErrInvalidProbability – p outside [0,1]
//   - ErrNeedRandSource     – stochastic constructor without an RNG
//   - ErrConstructFailed    – nil constructor or nil operand graph
package builder
