// SPDX-License-Identifier: MIT
//
// File: grid.go
// Role: Grid PRS adapter for pairwise-interaction point processes.
// AI-HINT (file):
//   - Cells have side ≥ r, so every interacting pair lies in one cell or in
//     two king-adjacent cells.
//   - Each cell is drawn by dominated CFTP on the model restricted to it.

package pointprocess

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/prs/core"
	"github.com/katalvlaran/prs/dcftp"
	"github.com/katalvlaran/prs/geom"
	"github.com/katalvlaran/prs/gridgraph"
	"github.com/katalvlaran/prs/gridprs"
	"github.com/katalvlaran/prs/sampling"
)

// pairwise is the cross-cell interaction φ(a, b) = γ^{#pairs within r}.
type pairwise struct {
	gamma, r float64
}

func (p pairwise) phi(a, b []geom.Point) float64 {
	if p.gamma == 1 {
		return 1
	}
	k := closePairs(a, b, p.r)
	if k == 0 {
		return 1
	}
	return math.Pow(p.gamma, float64(k))
}

// cellModel adapts a pairwise model on a lattice to gridprs.Model.
type cellModel struct {
	lat   *gridgraph.Lattice
	cells []dcftp.Model
	pw    pairwise
	cfg   sampling.Config // nested dCFTP configuration; Rand is set per draw
	err   error
}

var _ gridprs.Model[[]geom.Point] = (*cellModel)(nil)

func (c *cellModel) Graph() *core.Graph { return c.lat.Graph() }

func (c *cellModel) SampleCell(rng *rand.Rand, i int) []geom.Point {
	cfg := c.cfg
	cfg.Rand = rng
	pts, err := dcftp.SampleWithConfig(c.cells[i], cfg)
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("cell %d: %w", i, err)
	}
	return pts
}

func (c *cellModel) GibbsInteraction(_, _ int, ci, cj []geom.Point) float64 {
	return c.pw.phi(ci, cj)
}

func (c *cellModel) InnerInteractionPossible(_, _ int, ci, cj []geom.Point) bool {
	return c.pw.gamma < 1 && closePairs(ci, cj, c.pw.r) > 0
}

// OuterInteractionPossible: some content of cell j drives φ to 0 (or to
// γ^k → 0) iff a point of ci lies within r of cell j's box.
func (c *cellModel) OuterInteractionPossible(_, j int, ci []geom.Point, mark float64) bool {
	if c.pw.gamma == 1 || !(mark > 0) {
		return false
	}
	box := c.lat.Cell(j)
	for _, x := range ci {
		if box.DistToPoint(x) <= c.pw.r {
			return true
		}
	}
	return false
}

// sampleGrid runs grid PRS for m on box with cells of the given side.
func sampleGrid(m dcftp.Model, box geom.Box, side float64, pw pairwise, cfg sampling.Config) ([]geom.Point, error) {
	lat, err := gridgraph.NewLattice(box, side, gridgraph.DefaultLatticeOptions())
	if err != nil {
		return nil, err
	}
	cm := &cellModel{lat: lat, cells: make([]dcftp.Model, lat.Len()), pw: pw, cfg: cfg}
	for i := range cm.cells {
		cm.cells[i] = dcftp.Restrict(m, lat.Cell(i))
	}
	// Per-cell dCFTP runs report to the logger only.
	cm.cfg.Observer = sampling.NopObserver{}
	cm.cfg.CouplingHook = nil

	cfg.Logger.Debug("pointprocess: grid", "cells", lat.Len(), "shape", lat.Shape, "side", side)
	cells, err := gridprs.Sample[[]geom.Point](cm, cfg.Options()...)
	if err != nil {
		return nil, err
	}
	if cm.err != nil {
		return nil, cm.err
	}
	var out []geom.Point
	for _, pts := range cells {
		out = append(out, pts...)
	}
	return out, nil
}
