// SPDX-License-Identifier: MIT
// Package: prs/builder
//
// impl_grid.go: Grid(rows, cols), King(rows, cols) and StrongProduct(g, h).
//
// Canonical model:
//   • Vertex (r,c) is r*cols+c (row-major).
//   • Grid emits Right then Bottom per cell, cells in row-major order.
//   • StrongProduct joins (a,b) and (a',b') when a≃a' and b≃b', where ≃ is
//     "equal or adjacent", excluding (a,b) itself. Edges are emitted from the
//     lower-indexed vertex in row-major order.
//
// Complexity:
//   • Grid: O(rows*cols). StrongProduct: O(|V(G)||V(H)| Δ(G) Δ(H)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/prs/core"
)

const (
	methodGrid          = "Grid"
	methodKing          = "King"
	methodStrongProduct = "StrongProduct"
	minGridDim          = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		g := core.NewGraph(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addEdges(methodGrid, g, [][2]int{{u, u + 1}}); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err := addEdges(methodGrid, g, [][2]int{{u, u + cols}}); err != nil {
						return nil, err
					}
				}
			}
		}
		return g, nil
	}
}

// King returns a Constructor for the rows×cols king graph (8-neighbourhood),
// i.e. the strong product P_rows ⊠ P_cols.
func King(rows, cols int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodKing, rows, cols, minGridDim, ErrTooFewVertices)
		}
		pr, err := Path(rows)(cfg)
		if err != nil {
			return nil, err
		}
		pc, err := Path(cols)(cfg)
		if err != nil {
			return nil, err
		}
		return strongProduct(pr, pc)
	}
}

// StrongProduct returns a Constructor for G ⊠ H. Vertex (a,b) is a*|V(H)|+b.
func StrongProduct(g, h *core.Graph) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if g == nil || h == nil {
			return nil, fmt.Errorf("%s: nil operand: %w", methodStrongProduct, ErrConstructFailed)
		}
		return strongProduct(g, h)
	}
}

func strongProduct(g, h *core.Graph) (*core.Graph, error) {
	ng, nh := g.Order(), h.Order()
	out := core.NewGraph(ng * nh)

	for a := 0; a < ng; a++ {
		as := closedNeighborhood(g, a)
		for b := 0; b < nh; b++ {
			u := a*nh + b
			for _, a2 := range as {
				for _, b2 := range closedNeighborhood(h, b) {
					v := a2*nh + b2
					if v <= u {
						continue
					}
					if err := addEdges(methodStrongProduct, out, [][2]int{{u, v}}); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return out, nil
}

// closedNeighborhood returns v followed by its neighbours in ascending order.
func closedNeighborhood(g *core.Graph, v int) []int {
	nb := g.Neighbors(v)
	out := make([]int, 0, len(nb)+1)
	out = append(out, v)
	return append(out, nb...)
}
