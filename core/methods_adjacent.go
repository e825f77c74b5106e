// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Vertex-centric queries: Order, Directed, Neighbors, Degree, Clone.
// AI-HINT (file):
//   - Neighbors/IncidentEdges return live read-only views; never mutate them.

package core

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// Directed reports whether edges are directed.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.Order()
}

// Neighbors returns the vertices adjacent to v in ascending order: all
// neighbours for undirected graphs, successors for directed graphs.
// The returned slice is a live view and must not be modified.
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[v]
}

// IncidentEdges returns the IDs of the edges behind Neighbors(v), in the same order.
// The returned slice is a live view and must not be modified.
func (g *Graph) IncidentEdges(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjEdge[v]
}

// OutNeighbors is Neighbors; it exists for symmetry with InNeighbors.
func (g *Graph) OutNeighbors(v int) []int {
	return g.Neighbors(v)
}

// InNeighbors returns the predecessors of v in a directed graph, or the
// neighbours of v in an undirected one. Live view.
func (g *Graph) InNeighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.directed {
		return g.pred[v]
	}
	return g.adj[v]
}

// Degree returns the in- and out-degree of v. For undirected graphs both
// equal the number of neighbours.
func (g *Graph) Degree(v int) (in, out int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.directed {
		return len(g.pred[v]), len(g.adj[v])
	}
	return len(g.adj[v]), len(g.adj[v])
}

// MaxDegree returns the largest number of neighbours of any vertex
// (in + out for directed graphs).
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := 0
	for v := 0; v < g.n; v++ {
		d := len(g.adj[v])
		if g.directed {
			d += len(g.pred[v])
		}
		if d > best {
			best = d
		}
	}
	return best
}

// Clone returns a deep copy with the same edge IDs.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(g.n, WithDirected(g.directed))
	c.edges = append(c.edges, g.edges...)
	for k, id := range g.index {
		c.index[k] = id
	}
	for v := 0; v < g.n; v++ {
		c.adj[v] = append([]int(nil), g.adj[v]...)
		c.adjEdge[v] = append([]int(nil), g.adjEdge[v]...)
		if g.directed {
			c.pred[v] = append([]int(nil), g.pred[v]...)
			c.predEdge[v] = append([]int(nil), g.predEdge[v]...)
		}
	}
	return c
}
