// SPDX-License-Identifier: MIT

// Package prs implements the generic Partial Rejection Sampling engines.
//
// Family 1 (Sample) runs on a product distribution over Len() variables
// with local constraints:
//
//  1. Draw every variable independently from its marginal.
//  2. Ask the model for the bad set B.
//  3. If B is empty, return the assignment.
//  4. Grow the resampling set R ⊇ B breadth-first: for each i on the frontier
//     ∂R and each neighbour j ∉ R, j joins R (and the next frontier ∂R_tmp)
//     when the model's Propagate oracle says a constraint shared by i and j
//     is not ruled out by the values already inside R. On exit every
//     constraint straddling the boundary of R is blocked by R's own values,
//     so R does not depend on the values outside it.
//  5. Redraw exactly the variables in R and go to 2.
//
// R is rebuilt from scratch every round. Models whose resampling set is the
// bad set itself (sink-free orientations, cycle popping) return false from
// Propagate.
//
// Family 2 (Filter) is the rejection-free Bayes filter: a still-undetermined
// set starts as every variable; an element u is picked uniformly, a value is
// proposed and accepted with a model-supplied probability. Acceptance fixes
// u; rejection returns u's determined neighbours to the undetermined set.
//
// Neither engine caps its iterations. Termination is almost sure under the
// model's parameter regime and has no deterministic bound; callers needing
// a hard timeout must wrap the call.
package prs
