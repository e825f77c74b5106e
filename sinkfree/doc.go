// SPDX-License-Identifier: MIT

// Package sinkfree samples uniformly random sink-free orientations of an
// undirected graph by partial rejection sampling.
//
// Each edge is a variable holding one direction bit. A vertex whose every
// incident edge points into it is a sink, and the edges incident to sinks
// form the bad set. Those edges, and only those, are flipped with
// probability 1/2 each round, so the resampling set never grows beyond the
// bad set.
//
// A sink-free orientation exists iff every connected component has at
// least as many edges as vertices; New rejects graphs that fail this.
//
//	g := builder.MustBuild(builder.Grid(3, 3))
//	m, _ := sinkfree.New(g)
//	o, _ := m.Sample(sampling.WithSeed(7))
//	_ = o.Sinks() // empty
package sinkfree
