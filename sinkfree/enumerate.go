// SPDX-License-Identifier: MIT

package sinkfree

import (
	"fmt"

	"github.com/katalvlaran/prs/core"
)

// Enumerate calls visit once for every sink-free orientation of g, in
// increasing order of the direction bits read as a binary number with
// edge 0 as the least significant bit. The orientation passed to visit is
// reused between calls; Clone it to retain it.
//
// Errors: ErrNilGraph, ErrTooManyEdges.
// Complexity: O(2^E · (V + E)).
func Enumerate(g *core.Graph, visit func(o *core.Orientation)) error {
	if g == nil {
		return fmt.Errorf("Enumerate: %w", ErrNilGraph)
	}
	m := g.Size()
	if m > MaxEnumerateEdges {
		return fmt.Errorf("Enumerate: %d edges > %d: %w", m, MaxEnumerateEdges, ErrTooManyEdges)
	}
	o := core.NewOrientation(g)
	for mask := uint64(0); mask < 1<<m; mask++ {
		for id := 0; id < m; id++ {
			o.SetReversed(id, mask>>id&1 == 1)
		}
		if len(o.Sinks()) == 0 {
			visit(o)
		}
	}
	return nil
}

// Count returns the number of sink-free orientations of g.
//
// Errors: as Enumerate.
func Count(g *core.Graph) (int, error) {
	n := 0
	if err := Enumerate(g, func(*core.Orientation) { n++ }); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
