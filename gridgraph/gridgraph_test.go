// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prs/builder"
	"github.com/katalvlaran/prs/core"
	"github.com/katalvlaran/prs/geom"
	"github.com/katalvlaran/prs/gridgraph"
)

// endpoints drops edge IDs so graphs with different emission orders compare equal.
func endpoints(g *core.Graph) [][2]int {
	var out [][2]int
	for _, e := range g.Edges() {
		out = append(out, [2]int{e.From, e.To})
	}
	return out
}

func TestNewLattice_Errors(t *testing.T) {
	w := geom.UnitBox(2)
	_, err := gridgraph.NewLattice(w, 0, gridgraph.DefaultLatticeOptions())
	assert.ErrorIs(t, err, gridgraph.ErrInvalidCellSize)
	_, err = gridgraph.NewLattice(w, math.Inf(1), gridgraph.DefaultLatticeOptions())
	assert.ErrorIs(t, err, gridgraph.ErrInvalidCellSize)

	flat := geom.Box{Min: geom.Point{0, 0}, Max: geom.Point{1, 0}}
	_, err = gridgraph.NewLattice(flat, 0.5, gridgraph.DefaultLatticeOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyWindow)
}

func TestLattice_ShapeAndClipping(t *testing.T) {
	w, err := geom.NewBox(geom.Point{0, 0}, geom.Point{1, 0.5})
	require.NoError(t, err)
	l, err := gridgraph.NewLattice(w, 0.3, gridgraph.DefaultLatticeOptions())
	require.NoError(t, err)

	assert.Equal(t, []int{4, 2}, l.Shape)
	assert.Equal(t, 8, l.Len())

	// Last cell is clipped to the window.
	last := l.Cell(l.Len() - 1)
	assert.InDelta(t, 0.9, last.Min[0], 1e-12)
	assert.InDelta(t, 1.0, last.Max[0], 1e-12)
	assert.InDelta(t, 0.5, last.Max[1], 1e-12)

	// Cell volumes sum to the window volume.
	var total float64
	for i := 0; i < l.Len(); i++ {
		total += l.Cell(i).Volume()
	}
	assert.InDelta(t, w.Volume(), total, 1e-12)
}

func TestLattice_NoSliverCell(t *testing.T) {
	// 2.1/0.3 evaluates slightly above 7 in floating point.
	w, err := geom.NewBox(geom.Point{0}, geom.Point{2.1})
	require.NoError(t, err)
	l, err := gridgraph.NewLattice(w, 0.3, gridgraph.DefaultLatticeOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{7}, l.Shape)
	last := l.Cell(l.Len() - 1)
	assert.Greater(t, last.Volume(), 0.29)
	assert.Equal(t, 2.1, last.Max[0])
}

func TestLattice_IndexRoundTrip(t *testing.T) {
	l, err := gridgraph.NewLattice(geom.UnitBox(3), 0.25, gridgraph.DefaultLatticeOptions())
	require.NoError(t, err)
	for i := 0; i < l.Len(); i++ {
		assert.Equal(t, i, l.Index(l.Coordinate(i)))
	}
	assert.False(t, l.InBounds([]int{0, 4, 0}))
}

func TestLattice_Locate(t *testing.T) {
	l, err := gridgraph.NewLattice(geom.UnitBox(2), 0.5, gridgraph.DefaultLatticeOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, l.Locate(geom.Point{0.1, 0.1}))
	assert.Equal(t, 1, l.Locate(geom.Point{0.1, 0.7}))
	assert.Equal(t, 3, l.Locate(geom.Point{1, 1}), "upper boundary belongs to the last cell")
	assert.Equal(t, -1, l.Locate(geom.Point{1.1, 0.2}))

	for i := 0; i < l.Len(); i++ {
		c := l.Cell(i)
		mid := geom.Point{(c.Min[0] + c.Max[0]) / 2, (c.Min[1] + c.Max[1]) / 2}
		assert.Equal(t, i, l.Locate(mid))
	}
}

func TestLattice_GraphIsKing(t *testing.T) {
	w, err := geom.NewBox(geom.Point{0, 0}, geom.Point{3, 4})
	require.NoError(t, err)
	l, err := gridgraph.NewLattice(w, 1, gridgraph.DefaultLatticeOptions())
	require.NoError(t, err)

	king := builder.MustBuild(builder.King(3, 4))
	assert.ElementsMatch(t, endpoints(king), endpoints(l.Graph()))

	face, err := gridgraph.NewLattice(w, 1, gridgraph.LatticeOptions{Conn: gridgraph.ConnFace})
	require.NoError(t, err)
	grid := builder.MustBuild(builder.Grid(3, 4))
	assert.Equal(t, grid.Size(), face.Graph().Size())
	assert.Equal(t, []int{1, 4}, face.Neighbors(0))
}

func TestLattice_ThreeDimensionalDegree(t *testing.T) {
	w, err := geom.NewBox(geom.Point{0, 0, 0}, geom.Point{3, 3, 3})
	require.NoError(t, err)
	l, err := gridgraph.NewLattice(w, 1, gridgraph.DefaultLatticeOptions())
	require.NoError(t, err)
	centre := l.Index([]int{1, 1, 1})
	assert.Len(t, l.Neighbors(centre), 26)
}
