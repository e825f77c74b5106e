// SPDX-License-Identifier: MIT
//
// File: forest.go
// Role: Rooted spanning forest model and cycle-popping sampler.
// Determinism:
//   - Vertices are drawn in index order; cycle vertices are reported in
//     order of discovery from the smallest unvisited vertex.

package forest

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/prs/core"
	"github.com/katalvlaran/prs/prs"
	"github.com/katalvlaran/prs/sampling"
)

// NoSuccessor marks a root in a successor vector.
const NoSuccessor = -1

// Sentinel errors for rooted spanning forests.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("forest: nil graph")
	// ErrDirectedGraph indicates a directed input graph.
	ErrDirectedGraph = errors.New("forest: graph must be undirected")
	// ErrNoRoots indicates an empty root set.
	ErrNoRoots = errors.New("forest: at least one root is required")
	// ErrRootNotFound indicates a root outside the vertex set.
	ErrRootNotFound = errors.New("forest: root is not a vertex")
	// ErrDisconnected indicates a disconnected graph.
	ErrDisconnected = errors.New("forest: graph must be connected")
	// ErrInvalidForest indicates a successor vector that is not a rooted
	// spanning forest of the graph.
	ErrInvalidForest = errors.New("forest: not a rooted spanning forest")
)

// Model is the rooted spanning forest model on a connected graph.
type Model struct {
	g      *core.Graph
	roots  []int
	isRoot []bool
}

// New validates g and roots. Duplicate roots are merged.
//
// Errors: ErrNilGraph, ErrDirectedGraph, ErrNoRoots, ErrRootNotFound,
// ErrDisconnected.
// Complexity: O(V + E).
func New(g *core.Graph, roots []int) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	if g.Directed() {
		return nil, fmt.Errorf("New: %w", ErrDirectedGraph)
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoRoots)
	}
	isRoot := make([]bool, g.Order())
	var uniq []int
	for _, r := range roots {
		if !g.HasVertex(r) {
			return nil, fmt.Errorf("New: root %d: %w", r, ErrRootNotFound)
		}
		if !isRoot[r] {
			isRoot[r] = true
			uniq = append(uniq, r)
		}
	}
	if !core.Connected(g) {
		return nil, fmt.Errorf("New: %w", ErrDisconnected)
	}
	sort.Ints(uniq)
	return &Model{g: g, roots: uniq, isRoot: isRoot}, nil
}

// Graph returns the underlying graph.
func (m *Model) Graph() *core.Graph { return m.g }

// Roots returns the sorted root set.
func (m *Model) Roots() []int { return append([]int(nil), m.roots...) }

// Sample returns a uniformly random spanning forest rooted at the model's
// roots.
func (m *Model) Sample(opts ...sampling.Option) (*Forest, error) {
	succ, err := prs.Sample[int](m, opts...)
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	return &Forest{Successor: succ, Roots: m.Roots()}, nil
}

// Len returns the number of vertex variables.
func (m *Model) Len() int { return m.g.Order() }

// SampleVar returns NoSuccessor for a root and a uniform neighbour otherwise.
func (m *Model) SampleVar(rng *rand.Rand, i int) int {
	if m.isRoot[i] {
		return NoSuccessor
	}
	j, err := core.RandomNeighbor(rng, m.g, i)
	if err != nil {
		// New rejects graphs where a non-root vertex has no neighbour.
		panic(fmt.Sprintf("forest: SampleVar(%d): %v", i, err))
	}
	return j
}

// BadSet returns the vertices lying on a cycle of the successor graph.
// Complexity: O(V).
func (m *Model) BadSet(state []int) []int {
	return cycleVertices(state)
}

// Neighbors returns the graph neighbours of i.
func (m *Model) Neighbors(i int) []int { return m.g.Neighbors(i) }

// Propagate is always false: popping cycles never requires redrawing a
// vertex off the cycle.
func (m *Model) Propagate([]int, []bool, int, int) bool { return false }

// cycleVertices walks the functional graph succ and collects every vertex
// on a cycle. NoSuccessor ends a walk.
func cycleVertices(succ []int) []int {
	const (
		unseen = iota
		onPath
		done
	)
	color := make([]uint8, len(succ))
	var cyc []int
	for v0 := range succ {
		if color[v0] != unseen {
			continue
		}
		var path []int
		v := v0
		for v != NoSuccessor && color[v] == unseen {
			color[v] = onPath
			path = append(path, v)
			v = succ[v]
		}
		if v != NoSuccessor && color[v] == onPath {
			for u := v; ; {
				cyc = append(cyc, u)
				u = succ[u]
				if u == v {
					break
				}
			}
		}
		for _, u := range path {
			color[u] = done
		}
	}
	return cyc
}
