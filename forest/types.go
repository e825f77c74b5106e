// SPDX-License-Identifier: MIT

package forest

import (
	"fmt"

	"github.com/katalvlaran/prs/core"
)

// Forest is a rooted spanning forest stored as successor pointers.
// Successor[v] is v's parent, or NoSuccessor when v is a root.
type Forest struct {
	Successor []int
	Roots     []int
}

// ToGraph returns the forest as a directed graph with one edge from every
// non-root vertex to its successor.
// Complexity: O(V log Δ).
func (f *Forest) ToGraph() (*core.Graph, error) {
	d := core.NewGraph(len(f.Successor), core.WithDirected(true))
	for v, s := range f.Successor {
		if s == NoSuccessor {
			continue
		}
		if _, err := d.AddEdge(v, s); err != nil {
			return nil, fmt.Errorf("ToGraph: %d→%d: %w", v, s, err)
		}
	}
	return d, nil
}

// Validate checks that f is a spanning forest of g in which every tree
// holds exactly one root: roots have no successor, every other vertex
// points at a graph neighbour, and no successor chain cycles.
//
// Errors: ErrInvalidForest.
// Complexity: O(V + E).
func (f *Forest) Validate(g *core.Graph) error {
	n := g.Order()
	if len(f.Successor) != n {
		return fmt.Errorf("Validate: %d pointers for %d vertices: %w", len(f.Successor), n, ErrInvalidForest)
	}
	isRoot := make([]bool, n)
	for _, r := range f.Roots {
		if r < 0 || r >= n {
			return fmt.Errorf("Validate: root %d: %w", r, ErrInvalidForest)
		}
		isRoot[r] = true
	}
	for v, s := range f.Successor {
		switch {
		case isRoot[v] && s != NoSuccessor:
			return fmt.Errorf("Validate: root %d has successor %d: %w", v, s, ErrInvalidForest)
		case !isRoot[v] && s == NoSuccessor:
			return fmt.Errorf("Validate: vertex %d has no successor: %w", v, ErrInvalidForest)
		case !isRoot[v] && !g.HasEdge(v, s):
			return fmt.Errorf("Validate: %d→%d is not an edge: %w", v, s, ErrInvalidForest)
		}
	}
	if cyc := cycleVertices(f.Successor); len(cyc) > 0 {
		return fmt.Errorf("Validate: cycle through %d: %w", cyc[0], ErrInvalidForest)
	}
	return nil
}

// RootOf follows successors from v to its root.
// Complexity: O(depth). Assumes a validated forest.
func (f *Forest) RootOf(v int) int {
	for f.Successor[v] != NoSuccessor {
		v = f.Successor[v]
	}
	return v
}
