// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside 0..Order()-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrIsolatedVertex indicates a vertex with no neighbours where one is required.
	ErrIsolatedVertex = errors.New("core: vertex has no neighbours")
)

// Edge is a connection between two vertices.
//
// For undirected graphs From < To always holds; for directed graphs the
// edge points From → To.
type Edge struct {
	// ID is the stable index of the edge, 0..Size()-1.
	ID int

	// From is the source (or smaller) endpoint.
	From int

	// To is the destination (or larger) endpoint.
	To int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of every edge (true = directed).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a simple graph on the vertices 0..n-1.
//
// adj[v] lists the neighbours of v in ascending order and adjEdge[v] the IDs
// of the corresponding edges; for directed graphs adj holds successors and
// pred/predEdge hold predecessors. index maps an endpoint key to its edge ID.
type Graph struct {
	mu sync.RWMutex // guards everything below

	directed bool

	n        int
	edges    []Edge
	adj      [][]int
	adjEdge  [][]int
	pred     [][]int
	predEdge [][]int
	index    map[[2]int]int
}

// NewGraph creates an edgeless Graph on n vertices. A negative n is treated as 0.
// By default the graph is undirected.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		n:       n,
		adj:     make([][]int, n),
		adjEdge: make([][]int, n),
		index:   make(map[[2]int]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.pred = make([][]int, n)
		g.predEdge = make([][]int, n)
	}

	return g
}
