// SPDX-License-Identifier: MIT

package gridprs

import (
	"errors"
	"math/rand/v2"

	"github.com/katalvlaran/prs/core"
)

// Sentinel errors for grid PRS.
var (
	// ErrNilModel indicates a nil model.
	ErrNilModel = errors.New("gridprs: nil model")
	// ErrNilGraph indicates a model without a dependency graph.
	ErrNilGraph = errors.New("gridprs: model has no dependency graph")
)

// Model is the grid PRS capability over cell contents of type C.
type Model[C any] interface {
	// Graph returns the cell dependency graph. Vertex i is cell i.
	Graph() *core.Graph
	// SampleCell draws the content of cell i from its exact law.
	SampleCell(rng *rand.Rand, i int) C
	// GibbsInteraction returns φ(ci, cj) ∈ [0,1] for adjacent cells.
	GibbsInteraction(i, j int, ci, cj C) float64
	// InnerInteractionPossible reports whether the edge {i,j} with both
	// cells in R could still register bad; that is, φ(ci, cj) < 1.
	InnerInteractionPossible(i, j int, ci, cj C) bool
	// OuterInteractionPossible reports whether some content of cell j
	// would make the edge bad given ci and the mark: mark > inf φ(ci, ·).
	OuterInteractionPossible(i, j int, ci C, mark float64) bool
}
