// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeID/Edge/Edges/Size.
// Determinism:
//   - Edge IDs are assigned 0,1,2,... in insertion order.
//   - Edges() returns edges sorted by ID.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the edge u-v (u→v if directed) and returns its ID.
//
// Returns ErrVertexOutOfRange, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(deg(u)+deg(v)) for the sorted adjacency insert.
func (g *Graph) AddEdge(u, v int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return -1, fmt.Errorf("AddEdge(%d,%d) with n=%d: %w", u, v, g.n, ErrVertexOutOfRange)
	}
	if u == v {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	key := g.key(u, v)
	if _, ok := g.index[key]; ok {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	id := len(g.edges)
	e := Edge{ID: id, From: key[0], To: key[1]}
	g.edges = append(g.edges, e)
	g.index[key] = id

	insertSorted(&g.adj[e.From], &g.adjEdge[e.From], e.To, id)
	if g.directed {
		insertSorted(&g.pred[e.To], &g.predEdge[e.To], e.From, id)
	} else {
		insertSorted(&g.adj[e.To], &g.adjEdge[e.To], e.From, id)
	}

	return id, nil
}

// HasEdge reports whether the edge u-v (u→v if directed) exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.EdgeID(u, v)
	return ok
}

// EdgeID returns the ID of the edge u-v (u→v if directed).
// Complexity: O(1).
func (g *Graph) EdgeID(u, v int) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.index[g.key(u, v)]
	return id, ok
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("Edge(%d): %w", id, ErrEdgeNotFound)
	}
	return g.edges[id], nil
}

// Edges returns a copy of all edges ordered by ID.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// key normalises an endpoint pair: sorted for undirected graphs.
func (g *Graph) key(u, v int) [2]int {
	if !g.directed && u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// insertSorted inserts (w, id) into the parallel slices keeping ws ascending.
func insertSorted(ws, ids *[]int, w, id int) {
	i := sort.SearchInts(*ws, w)
	*ws = append(*ws, 0)
	*ids = append(*ids, 0)
	copy((*ws)[i+1:], (*ws)[i:])
	copy((*ids)[i+1:], (*ids)[i:])
	(*ws)[i] = w
	(*ids)[i] = id
}
