// SPDX-License-Identifier: MIT

// Package pattern samples strings of a fixed length, uniform over all
// strings on an alphabet that avoid a given pattern as a contiguous
// substring.
//
// Every position is a variable drawn uniformly from the alphabet; each
// window of len(pattern) positions is a constraint, violated when the
// window spells the pattern. The resampling set starts at the positions
// of every occurrence and grows to a position j when some window holding
// both j and a position already in the set still agrees with the pattern
// on every position in the set.
package pattern
