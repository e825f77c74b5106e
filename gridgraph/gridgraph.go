// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/prs/core"
	"github.com/katalvlaran/prs/geom"
)

// shapeTolerance absorbs float error in width/side so that an exact
// multiple never yields an extra sliver cell.
const shapeTolerance = 1e-9

// NewLattice partitions w into cells of side `side`. The last cell along
// an axis extends to the window boundary.
// Returns ErrInvalidCellSize or ErrEmptyWindow.
// Complexity: O(N·3^d) time and memory for N cells.
func NewLattice(w geom.Box, side float64, opts LatticeOptions) (*Lattice, error) {
	if !(side > 0) || math.IsInf(side, 0) {
		return nil, fmt.Errorf("NewLattice: side=%g: %w", side, ErrInvalidCellSize)
	}
	if !(w.Volume() > 0) {
		return nil, fmt.Errorf("NewLattice: volume=%g: %w", w.Volume(), ErrEmptyWindow)
	}

	d := w.Dim()
	shape := make([]int, d)
	for k := 0; k < d; k++ {
		shape[k] = int(math.Ceil(w.Width(k)/side - shapeTolerance))
		if shape[k] < 1 {
			shape[k] = 1
		}
	}
	strides := make([]int, d)
	stride := 1
	for k := d - 1; k >= 0; k-- {
		strides[k] = stride
		stride *= shape[k]
	}

	l := &Lattice{
		Window:          w,
		Side:            side,
		Shape:           shape,
		Conn:            opts.Conn,
		strides:         strides,
		neighborOffsets: offsets(d, opts.Conn),
	}
	g, err := l.buildGraph()
	if err != nil {
		return nil, err
	}
	l.graph = g

	return l, nil
}

// offsets precomputes the neighbour displacement vectors for dimension d.
func offsets(d int, conn Connectivity) [][]int {
	var out [][]int
	if conn == ConnFace {
		for k := 0; k < d; k++ {
			for _, s := range []int{-1, 1} {
				o := make([]int, d)
				o[k] = s
				out = append(out, o)
			}
		}
		return out
	}
	// All vectors in {-1,0,1}^d except zero, enumerated in base 3.
	total := 1
	for k := 0; k < d; k++ {
		total *= 3
	}
	for code := 0; code < total; code++ {
		o := make([]int, d)
		zero := true
		c := code
		for k := d - 1; k >= 0; k-- {
			o[k] = c%3 - 1
			c /= 3
			if o[k] != 0 {
				zero = false
			}
		}
		if !zero {
			out = append(out, o)
		}
	}
	return out
}

// Len returns the number of cells.
func (l *Lattice) Len() int {
	n := 1
	for _, s := range l.Shape {
		n *= s
	}
	return n
}

// Dim returns the lattice dimension.
func (l *Lattice) Dim() int { return len(l.Shape) }

// InBounds reports whether coord addresses a cell.
// Complexity: O(d).
func (l *Lattice) InBounds(coord []int) bool {
	if len(coord) != len(l.Shape) {
		return false
	}
	for k, c := range coord {
		if c < 0 || c >= l.Shape[k] {
			return false
		}
	}
	return true
}

// Index maps coord to a row-major index.
// Complexity: O(d).
func (l *Lattice) Index(coord []int) int {
	idx := 0
	for k, c := range coord {
		idx += c * l.strides[k]
	}
	return idx
}

// Coordinate converts a row-major index back to per-axis cell coordinates.
// Complexity: O(d).
func (l *Lattice) Coordinate(idx int) []int {
	coord := make([]int, len(l.Shape))
	for k, s := range l.strides {
		coord[k] = idx / s
		idx %= s
	}
	return coord
}

// Cell returns the box covered by cell idx. Cells on the upper boundary
// end at the window edge.
func (l *Lattice) Cell(idx int) geom.Box {
	coord := l.Coordinate(idx)
	d := len(coord)
	b := geom.Box{Min: make(geom.Point, d), Max: make(geom.Point, d)}
	for k, c := range coord {
		b.Min[k] = l.Window.Min[k] + float64(c)*l.Side
		b.Max[k] = math.Min(b.Min[k]+l.Side, l.Window.Max[k])
		if c == l.Shape[k]-1 {
			b.Max[k] = l.Window.Max[k]
		}
	}
	return b
}

// Locate returns the index of the cell containing p, or -1 if p lies
// outside the window. Points on a shared face belong to the higher cell.
// Complexity: O(d).
func (l *Lattice) Locate(p geom.Point) int {
	if len(p) != len(l.Shape) || !l.Window.Contains(p) {
		return -1
	}
	coord := make([]int, len(p))
	for k := range p {
		c := int(math.Floor((p[k] - l.Window.Min[k]) / l.Side))
		if c >= l.Shape[k] {
			c = l.Shape[k] - 1
		}
		coord[k] = c
	}
	return l.Index(coord)
}

// Neighbors returns the cells adjacent to idx under l.Conn, ascending.
func (l *Lattice) Neighbors(idx int) []int {
	return l.graph.Neighbors(idx)
}

// Graph returns the lattice adjacency graph. Vertex i is cell i.
// The graph is shared; callers must not add edges to it.
func (l *Lattice) Graph() *core.Graph { return l.graph }

// buildGraph emits each edge once, from the lower index, in row-major
// order of cells and offset order within a cell.
func (l *Lattice) buildGraph() (*core.Graph, error) {
	n := l.Len()
	g := core.NewGraph(n)
	nb := make([]int, len(l.Shape))
	for i := 0; i < n; i++ {
		coord := l.Coordinate(i)
		for _, o := range l.neighborOffsets {
			for k := range nb {
				nb[k] = coord[k] + o[k]
			}
			if !l.InBounds(nb) {
				continue
			}
			j := l.Index(nb)
			if j <= i {
				continue
			}
			if _, err := g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("NewLattice: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}
	return g, nil
}
