// SPDX-License-Identifier: MIT
//
// File: orientation.go
// Role: Orientation of an undirected graph: one direction bit per edge ID.
// AI-HINT (file):
//   - reversed[id] == false means the edge points From → To (From < To).
//   - A sink is a vertex with out-degree zero.

package core

import "fmt"

// Orientation assigns a direction to every edge of an undirected graph.
type Orientation struct {
	g        *Graph
	edges    []Edge
	reversed []bool
}

// NewOrientation returns the orientation of g in which every edge points
// from its smaller to its larger endpoint.
// Complexity: O(E).
func NewOrientation(g *Graph) *Orientation {
	edges := g.Edges()
	return &Orientation{g: g, edges: edges, reversed: make([]bool, len(edges))}
}

// Graph returns the underlying undirected graph.
func (o *Orientation) Graph() *Graph { return o.g }

// Len returns the number of edges.
func (o *Orientation) Len() int { return len(o.edges) }

// Tail returns the vertex edge id leaves.
func (o *Orientation) Tail(id int) int {
	if o.reversed[id] {
		return o.edges[id].To
	}
	return o.edges[id].From
}

// Head returns the vertex edge id enters.
func (o *Orientation) Head(id int) int {
	if o.reversed[id] {
		return o.edges[id].From
	}
	return o.edges[id].To
}

// Reversed reports whether edge id points To → From.
func (o *Orientation) Reversed(id int) bool { return o.reversed[id] }

// SetReversed sets the direction bit of edge id.
func (o *Orientation) SetReversed(id int, rev bool) { o.reversed[id] = rev }

// Flip reverses edge id.
func (o *Orientation) Flip(id int) { o.reversed[id] = !o.reversed[id] }

// OutDegree returns the number of edges leaving v.
// Complexity: O(deg v).
func (o *Orientation) OutDegree(v int) int {
	out := 0
	for _, id := range o.g.IncidentEdges(v) {
		if o.Tail(id) == v {
			out++
		}
	}
	return out
}

// InDegree returns the number of edges entering v.
func (o *Orientation) InDegree(v int) int {
	return len(o.g.IncidentEdges(v)) - o.OutDegree(v)
}

// IsSink reports whether v has no outgoing edge.
func (o *Orientation) IsSink(v int) bool {
	for _, id := range o.g.IncidentEdges(v) {
		if o.Tail(id) == v {
			return false
		}
	}
	return true
}

// Sinks returns every sink in ascending order.
// Complexity: O(V+E).
func (o *Orientation) Sinks() []int {
	var sinks []int
	for v := 0; v < o.g.Order(); v++ {
		if o.IsSink(v) {
			sinks = append(sinks, v)
		}
	}
	return sinks
}

// InEdges returns the IDs of the edges entering v, in neighbour order.
func (o *Orientation) InEdges(v int) []int {
	var ids []int
	for _, id := range o.g.IncidentEdges(v) {
		if o.Head(id) == v {
			ids = append(ids, id)
		}
	}
	return ids
}

// ToDirected materialises the orientation as a directed Graph whose edge
// IDs match the undirected ones.
// Complexity: O(E log Δ).
func (o *Orientation) ToDirected() (*Graph, error) {
	d := NewGraph(o.g.Order(), WithDirected(true))
	for id := range o.edges {
		if _, err := d.AddEdge(o.Tail(id), o.Head(id)); err != nil {
			return nil, fmt.Errorf("ToDirected: edge %d: %w", id, err)
		}
	}
	return d, nil
}

// Clone returns an independent copy sharing the underlying graph.
func (o *Orientation) Clone() *Orientation {
	return &Orientation{g: o.g, edges: o.edges, reversed: append([]bool(nil), o.reversed...)}
}

// Key encodes the direction bits as a string, for counting orientations.
func (o *Orientation) Key() string {
	b := make([]byte, len(o.reversed))
	for i, r := range o.reversed {
		b[i] = '0'
		if r {
			b[i] = '1'
		}
	}
	return string(b)
}
