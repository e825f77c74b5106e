// SPDX-License-Identifier: MIT
//
// rng.go: deterministic stream construction and derivation.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Use DeriveRand to create independent
//     streams for parallel workers.

package sampling

import "math/rand/v2"

// pcgStreamSalt separates the second PCG word from the seed.
const pcgStreamSalt = 0x9e3779b97f4a7c15

// newPCG returns a PCG-backed stream for seed.
func newPCG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStreamSalt))
}

// defaultRand returns a fresh stream seeded from the runtime source.
func defaultRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64 finalizer.
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// DeriveRand creates an independent stream from base and a stream id.
// base.Uint64() is consumed once, so repeated derivations with the same id
// still differ. A nil base uses the runtime source as parent.
//
// Call during setup, not in hot loops.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent uint64
	if base == nil {
		parent = rand.Uint64()
	} else {
		parent = base.Uint64()
	}
	return newPCG(deriveSeed(parent, stream))
}

// streams returns n independent streams for cfg. With WithSeed, stream k
// depends only on the seed and k.
func (c Config) streams(n int) []*rand.Rand {
	out := make([]*rand.Rand, n)
	if c.seeded {
		for k := range out {
			out[k] = newPCG(deriveSeed(c.seed, uint64(k)))
		}
		return out
	}
	parent := c.Rand.Uint64()
	for k := range out {
		out[k] = newPCG(deriveSeed(parent, uint64(k)))
	}
	return out
}
