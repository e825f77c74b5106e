// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math/rand/v2"
)

// RandomNeighbor returns a neighbour of v chosen uniformly at random.
//
// Errors: ErrVertexOutOfRange, ErrIsolatedVertex.
// Complexity: O(1).
func RandomNeighbor(rng *rand.Rand, g *Graph, v int) (int, error) {
	if !g.HasVertex(v) {
		return -1, fmt.Errorf("RandomNeighbor(%d): %w", v, ErrVertexOutOfRange)
	}
	nb := g.Neighbors(v)
	if len(nb) == 0 {
		return -1, fmt.Errorf("RandomNeighbor(%d): %w", v, ErrIsolatedVertex)
	}
	return nb[rng.IntN(len(nb))], nil
}
