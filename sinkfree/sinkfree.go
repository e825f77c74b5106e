// SPDX-License-Identifier: MIT
//
// File: sinkfree.go
// Role: Sink-free orientation model and its partial rejection sampler.
// Determinism:
//   - Edge variables are indexed by core edge ID; the bad set is reported in
//     vertex order, then incident-edge order.

package sinkfree

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/prs/core"
	"github.com/katalvlaran/prs/prs"
	"github.com/katalvlaran/prs/sampling"
)

// Sentinel errors for sink-free orientations.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("sinkfree: nil graph")
	// ErrDirectedGraph indicates a directed input graph.
	ErrDirectedGraph = errors.New("sinkfree: graph must be undirected")
	// ErrNoSinkFreeOrientation indicates a component with fewer edges than vertices.
	ErrNoSinkFreeOrientation = errors.New("sinkfree: some component has fewer edges than vertices")
	// ErrTooManyEdges indicates a graph too large to enumerate.
	ErrTooManyEdges = errors.New("sinkfree: too many edges to enumerate")
)

// MaxEnumerateEdges bounds the graphs accepted by Enumerate and Count.
const MaxEnumerateEdges = 24

// Model is the sink-free orientation model on a fixed undirected graph.
type Model struct {
	g     *core.Graph
	edges []core.Edge
	adj   [][]int // edge IDs sharing an endpoint with each edge
}

// New validates g and returns its sink-free orientation model.
//
// Errors: ErrNilGraph, ErrDirectedGraph, ErrNoSinkFreeOrientation.
// Complexity: O(V + Σ deg²).
func New(g *core.Graph) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	if g.Directed() {
		return nil, fmt.Errorf("New: %w", ErrDirectedGraph)
	}
	for _, comp := range core.Components(g, nil) {
		deg := 0
		for _, v := range comp {
			deg += len(g.IncidentEdges(v))
		}
		if deg/2 < len(comp) {
			return nil, fmt.Errorf("New: component of %d vertices has %d edges: %w",
				len(comp), deg/2, ErrNoSinkFreeOrientation)
		}
	}

	edges := g.Edges()
	adj := make([][]int, len(edges))
	for _, e := range edges {
		for _, v := range [2]int{e.From, e.To} {
			for _, id := range g.IncidentEdges(v) {
				if id != e.ID {
					adj[e.ID] = append(adj[e.ID], id)
				}
			}
		}
	}
	return &Model{g: g, edges: edges, adj: adj}, nil
}

// Graph returns the underlying graph.
func (m *Model) Graph() *core.Graph { return m.g }

// Sample returns a uniformly random sink-free orientation of the graph.
func (m *Model) Sample(opts ...sampling.Option) (*core.Orientation, error) {
	bits, err := prs.Sample[bool](m, opts...)
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	o := core.NewOrientation(m.g)
	for id, rev := range bits {
		o.SetReversed(id, rev)
	}
	return o, nil
}

// Len returns the number of edge variables.
func (m *Model) Len() int { return len(m.edges) }

// SampleVar flips a fair coin for the direction of edge i.
func (m *Model) SampleVar(rng *rand.Rand, _ int) bool { return rng.IntN(2) == 1 }

// BadSet returns the edges incident to a sink.
// Complexity: O(V + E).
func (m *Model) BadSet(state []bool) []int {
	var bad []int
	for v := 0; v < m.g.Order(); v++ {
		ids := m.g.IncidentEdges(v)
		if len(ids) == 0 || !m.isSink(state, v, ids) {
			continue
		}
		bad = append(bad, ids...)
	}
	return bad
}

// Neighbors returns the edges sharing an endpoint with edge i.
func (m *Model) Neighbors(i int) []int { return m.adj[i] }

// Propagate is always false: flipping the sink edges alone preserves the
// uniform law on sink-free orientations.
func (m *Model) Propagate([]bool, []bool, int, int) bool { return false }

func (m *Model) isSink(state []bool, v int, ids []int) bool {
	for _, id := range ids {
		if tail(m.edges[id], state[id]) == v {
			return false
		}
	}
	return true
}

func tail(e core.Edge, reversed bool) int {
	if reversed {
		return e.To
	}
	return e.From
}
