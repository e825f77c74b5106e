// SPDX-License-Identifier: MIT

// Package forest samples uniformly random rooted spanning forests of a
// connected graph by cycle popping, the partial rejection sampler whose
// variables are successor pointers.
//
// Every non-root vertex points at a uniformly random neighbour; roots
// point nowhere. The vertices lying on a directed cycle of the successor
// graph are the bad set, and exactly those vertices redraw their pointer
// each round. On termination the pointers form a spanning forest in which
// every tree contains exactly one root, and each such forest is equally
// likely.
package forest
