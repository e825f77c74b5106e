// SPDX-License-Identifier: MIT

// Package dcftp implements dominated coupling from the past for spatial
// point processes whose Papangelou conditional intensity λ(x | X) is
// bounded by a constant β and is monotone in X.
//
// State machine:
//
//   - Extend: run the dominating birth-death process D backward in time.
//     D(0) is Poisson(β·|W|). A backward birth (probability β|W|/(β|W|+|D|))
//     adds a uniform point and is recorded with mark 0, a forward death. A
//     backward death removes a uniform point of D and is recorded with a
//     Uniform(0,1] mark, a forward birth.
//   - Couple: replay the log forward from the deepest time with L = ∅ and
//     U = D(−T). A death removes the point from L and U. A birth with mark m
//     joins L when m < λ(x|U)/β and U when m < λ(x|L)/β for repulsive
//     processes; the two conditioning sets swap for attractive ones. The
//     sandwich L ⊆ X ⊆ U ⊆ D holds after every event.
//   - Terminal: if |L| == |U| the chains have coalesced and L is returned.
//     Otherwise the horizon doubles, reusing all recorded randomness, and
//     the machine goes back to Extend.
//
// β must bound λ for every reachable configuration; this cannot be
// checked at runtime and is a precondition on the model.
package dcftp
