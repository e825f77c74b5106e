// SPDX-License-Identifier: MIT

// Package gridprs implements grid partial rejection sampling.
//
// The domain is split into cells that form the vertices of a dependency
// graph (a king lattice for spatial models, the native graph for graph
// models). Every edge {i,j} carries an i.i.d. Uniform(0,1) mark U. The
// target law is the product of the per-cell laws weighted by the pairwise
// Gibbs interaction φ(c_i, c_j) ∈ [0,1]; the edge is bad when U > φ.
//
// Algorithm:
//
//  1. R = every cell.
//  2. Redraw the content of every cell in R.
//  3. R = endpoints of bad edges; their marks are redrawn.
//  4. Breadth-first from R over incident edges {i,j}, i ∈ R:
//     - j ∈ R: the mark is redrawn when InnerInteractionPossible.
//     - j ∉ R: j joins R when OuterInteractionPossible(i, j, c_i, U);
//     the mark is redrawn either way.
//  5. Stop when R is empty; otherwise go to 2.
//
// Marks live in a core.Weighted arena keyed by edge ID and are owned by the
// single call. The outer predicate may look only at cell i's content and the
// mark, never at cell j: the resampling set must not depend on anything
// outside it.
package gridprs
