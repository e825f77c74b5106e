// SPDX-License-Identifier: MIT
// Package: prs/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(c, opts...). Resolves cfg, runs c once.
//   - Determinism: same inputs/options/seed ⇒ identical graphs and edge IDs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/prs/core"
)

// Constructor builds an undirected core.Graph from the resolved builderConfig.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(cfg builderConfig) (*core.Graph, error)

// Build resolves the builder configuration from opts and runs c.
// Any constructor error is wrapped with the context "Build: %w".
//
// Complexity: O(len(opts)) plus the cost of c.
func Build(c Constructor, opts ...BuilderOption) (*core.Graph, error) {
	if c == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	g, err := c(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	return g, nil
}

// MustBuild is Build for fixtures known to be valid; it panics on error.
func MustBuild(c Constructor, opts ...BuilderOption) *core.Graph {
	g, err := Build(c, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// addEdges inserts the given pairs in order, wrapping failures with method context.
func addEdges(method string, g *core.Graph, pairs [][2]int) error {
	for _, p := range pairs {
		if _, err := g.AddEdge(p[0], p[1]); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, p[0], p[1], err)
		}
	}
	return nil
}
