// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected components of induced subgraphs (BFS with a queue slice).
// Determinism:
//   - Components are emitted in order of their smallest vertex; vertices
//     inside a component appear in BFS order from that vertex.

package core

// Components returns the connected components of the subgraph induced by
// the vertices for which keep returns true. A nil keep selects every vertex.
// Edge direction is ignored.
//
// Time:   O(V+E).
// Memory: O(V) for visited flags and output.
func Components(g *Graph, keep func(v int) bool) [][]int {
	n := g.Order()
	seen := make([]bool, n)
	var comps [][]int

	for v0 := 0; v0 < n; v0++ {
		if seen[v0] || (keep != nil && !keep(v0)) {
			continue
		}
		queue := []int{v0}
		seen[v0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			visit := func(w int) {
				if seen[w] || (keep != nil && !keep(w)) {
					return
				}
				seen[w] = true
				queue = append(queue, w)
			}
			for _, w := range g.Neighbors(u) {
				visit(w)
			}
			if g.Directed() {
				for _, w := range g.InNeighbors(u) {
					visit(w)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Connected reports whether g has exactly one connected component.
// The empty graph is not connected.
func Connected(g *Graph) bool {
	return len(Components(g, nil)) == 1
}
