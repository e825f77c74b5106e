// SPDX-License-Identifier: MIT

// Package gridgraph partitions an axis-aligned box window into a
// d-dimensional lattice of cells and exposes the lattice as a graph.
//
// What:
//
//   - Lattice splits a geom.Box into ⌈width_k/side⌉ cells along each axis k.
//     Cells in the last slab of an axis are clipped to the window.
//   - Cells are indexed row-major: the last axis varies fastest.
//   - Neighbourhoods are face-adjacent (ConnFace, 2d neighbours) or
//     king-adjacent (ConnKing, 3^d−1 neighbours, the default).
//   - Graph() returns the lattice as a *core.Graph; with ConnKing this is the
//     strong product of d paths.
//
// Complexity:
//
//   - NewLattice: O(N·3^d) for N cells (graph construction).
//   - Locate, Index, Coordinate, Cell: O(d).
//
// Errors:
//
//   - ErrInvalidCellSize: side is not a positive finite number.
//   - ErrEmptyWindow: the window has zero volume.
package gridgraph
