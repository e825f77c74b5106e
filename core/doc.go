// SPDX-License-Identifier: MIT

// Package core provides the integer-indexed graph used by every sampler in
// this module, together with the graph utilities the samplers share.
//
// The Graph G = (V,E) has vertices 0..n-1 fixed at construction and edges
// with stable IDs 0..m-1 assigned in insertion order. It supports:
//
//   - Undirected (default) or directed edges (WithDirected)
//   - Simple graphs only: self-loops → ErrLoopNotAllowed,
//     parallel edges → ErrMultiEdgeNotAllowed
//   - Deterministic iteration: Neighbors(v) is sorted ascending,
//     Edges() is ordered by edge ID
//   - A sync.RWMutex (mu) guarding construction, so a finished graph may be
//     shared read-only by concurrent sampling calls
//
// Graph utilities built on top:
//
//	Components(g, keep)       // BFS connected components of an induced subgraph
//	Connected(g)              // single component check
//	NewOrientation(g)         // one direction bit per edge; Sinks(), Flip(), ToDirected()
//	RandomNeighbor(rng, g, v) // uniform neighbour (random successor assignment)
//	NewWeighted(g, fill)      // edge-weight arena keyed by edge ID
//
// Errors:
//
//	ErrVertexOutOfRange    – vertex index outside 0..n-1
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
//	ErrEdgeNotFound        – unknown edge ID or endpoint pair
//	ErrIsolatedVertex      – RandomNeighbor on a vertex without neighbours
package core
