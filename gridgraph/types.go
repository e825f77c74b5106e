// SPDX-License-Identifier: MIT

// Package gridgraph defines core types, options, and sentinel errors
// for the lattice partition.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/prs/core"
	"github.com/katalvlaran/prs/geom"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidCellSize indicates a non-positive or non-finite cell side.
	ErrInvalidCellSize = errors.New("gridgraph: cell side must be positive and finite")
	// ErrEmptyWindow indicates a window with zero volume.
	ErrEmptyWindow = errors.New("gridgraph: window must have positive volume")
)

// Connectivity selects neighbour connectivity: face-adjacent or king-adjacent.
type Connectivity int

const (
	// ConnFace joins cells differing by one step along exactly one axis.
	ConnFace Connectivity = iota
	// ConnKing joins cells differing by at most one step along every axis.
	ConnKing
)

// LatticeOptions contains tunable parameters for the partition.
type LatticeOptions struct {
	// Conn chooses face or king connectivity.
	Conn Connectivity
}

// DefaultLatticeOptions returns LatticeOptions with Conn=ConnKing.
func DefaultLatticeOptions() LatticeOptions {
	return LatticeOptions{Conn: ConnKing}
}

// Lattice is an immutable partition of a box window into cells.
// Shape[k] is the number of cells along axis k.
type Lattice struct {
	Window geom.Box
	Side   float64
	Shape  []int
	Conn   Connectivity

	strides         []int
	neighborOffsets [][]int
	graph           *core.Graph
}
