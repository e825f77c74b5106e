// SPDX-License-Identifier: MIT

// Package prs is a library of exact samplers built on partial rejection
// sampling.
//
// Three engines share one idea: draw every variable independently, find
// what violates a constraint, redraw only a resampling set grown around
// the violation, and repeat until nothing is violated. The output has the
// exact target law, not an approximation.
//
//	prs/          family-1 PRS (closure by propagation) and the Bayes filter
//	gridprs/      grid PRS over cells joined by edges carrying uniform marks
//	dcftp/        dominated coupling from the past for spatial point processes
//
// Models plug into the engines:
//
//	sinkfree/     uniform sink-free orientations
//	forest/       uniform rooted spanning forests (cycle popping)
//	hardcore/     hard-core model on graphs
//	ising/        Ising model
//	pattern/      uniform pattern-avoiding strings
//	pointprocess/ Poisson, Strauss, hard-core and area-interaction processes
//
// Supporting packages:
//
//	core/         thread-safe int-indexed graphs, orientations, edge weights
//	builder/      graph constructors (paths, cycles, grids, king graphs)
//	geom/         boxes, balls and Poisson point sampling
//	gridgraph/    lattice partition of a box window into cells
//	sampling/     options, random streams, observers and parallel batches
//	metrics/      Prometheus observer
//
// Every sampler accepts sampling.Option values. WithSeed makes a run
// reproducible; WithLogger receives Debug round traces and Warn advisories;
// WithObserver receives per-round callbacks. No sampler imposes an
// iteration cap.
package prs
