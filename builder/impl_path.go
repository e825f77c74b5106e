// SPDX-License-Identifier: MIT
// Package: prs/builder
//
// impl_path.go: Path(n), Cycle(n) and Complete(n).
//
// Determinism:
//   • Path emits i-(i+1) for i asc; Cycle appends the closing (n-1)-0 edge.
//   • Complete emits i-j for i asc, j>i asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/prs/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// Path returns a Constructor for the path P_n on 0..n-1 (n ≥ 1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		g := core.NewGraph(n)
		for i := 0; i+1 < n; i++ {
			if err := addEdges(methodPath, g, [][2]int{{i, i + 1}}); err != nil {
				return nil, err
			}
		}
		return g, nil
	}
}

// Cycle returns a Constructor for the cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		g, err := Path(n)(cfg)
		if err != nil {
			return nil, err
		}
		if err = addEdges(methodCycle, g, [][2]int{{n - 1, 0}}); err != nil {
			return nil, err
		}
		return g, nil
	}
}

// Complete returns a Constructor for K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*core.Graph, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		g := core.NewGraph(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdges(methodComplete, g, [][2]int{{i, j}}); err != nil {
					return nil, err
				}
			}
		}
		return g, nil
	}
}
