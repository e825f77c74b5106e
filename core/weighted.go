// SPDX-License-Identifier: MIT

package core

// Weighted attaches one float64 per edge of a graph, indexed by edge ID.
// It does not copy the graph; edges added after construction have no weight.
type Weighted struct {
	g *Graph
	w []float64
}

// NewWeighted creates a weight arena for g. If fill is non-nil it supplies
// the initial weight of every edge, in ID order.
// Complexity: O(E).
func NewWeighted(g *Graph, fill func(e Edge) float64) *Weighted {
	edges := g.Edges()
	w := make([]float64, len(edges))
	if fill != nil {
		for _, e := range edges {
			w[e.ID] = fill(e)
		}
	}
	return &Weighted{g: g, w: w}
}

// Graph returns the underlying graph.
func (wg *Weighted) Graph() *Graph { return wg.g }

// Weight returns the weight of edge id.
func (wg *Weighted) Weight(id int) float64 { return wg.w[id] }

// SetWeight sets the weight of edge id.
func (wg *Weighted) SetWeight(id int, w float64) { wg.w[id] = w }
