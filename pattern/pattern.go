// SPDX-License-Identifier: MIT
//
// File: pattern.go
// Role: Pattern-avoiding string model and its PRS adapter.
// Determinism:
//   - Occurrences are scanned left to right; neighbours are listed in
//     increasing position.

package pattern

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/prs/prs"
	"github.com/katalvlaran/prs/sampling"
)

// Sentinel errors for pattern-avoiding strings.
var (
	// ErrEmptyAlphabet indicates an empty alphabet.
	ErrEmptyAlphabet = errors.New("pattern: empty alphabet")
	// ErrEmptyPattern indicates an empty pattern.
	ErrEmptyPattern = errors.New("pattern: empty pattern")
	// ErrDuplicateSymbol indicates a symbol repeated in the alphabet.
	ErrDuplicateSymbol = errors.New("pattern: duplicate alphabet symbol")
	// ErrUnknownSymbol indicates a pattern symbol outside the alphabet.
	ErrUnknownSymbol = errors.New("pattern: pattern symbol not in alphabet")
	// ErrInvalidLength indicates a negative string length.
	ErrInvalidLength = errors.New("pattern: length must be non-negative")
	// ErrUnsatisfiable indicates that every string of the length contains
	// the pattern.
	ErrUnsatisfiable = errors.New("pattern: every string contains the pattern")
)

// Model is the uniform law on length-n strings over an alphabet that avoid
// a pattern.
type Model struct {
	alphabet []rune
	pattern  []rune
	n        int
}

// New validates the alphabet, pattern and length.
//
// Errors: ErrEmptyAlphabet, ErrDuplicateSymbol, ErrEmptyPattern,
// ErrUnknownSymbol, ErrInvalidLength, ErrUnsatisfiable.
func New(alphabet, pat string, n int) (*Model, error) {
	a := []rune(alphabet)
	if len(a) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptyAlphabet)
	}
	seen := make(map[rune]bool, len(a))
	for _, c := range a {
		if seen[c] {
			return nil, fmt.Errorf("New: %q: %w", c, ErrDuplicateSymbol)
		}
		seen[c] = true
	}
	p := []rune(pat)
	if len(p) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptyPattern)
	}
	for _, c := range p {
		if !seen[c] {
			return nil, fmt.Errorf("New: %q: %w", c, ErrUnknownSymbol)
		}
	}
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrInvalidLength)
	}
	// With two or more symbols the constant string of a symbol other than
	// p[0] avoids p, so only a one-letter alphabet can be unsatisfiable.
	if len(a) == 1 && len(p) <= n {
		return nil, fmt.Errorf("New: %q over %q with n=%d: %w", pat, alphabet, n, ErrUnsatisfiable)
	}
	return &Model{alphabet: a, pattern: p, n: n}, nil
}

// Len returns the string length.
func (m *Model) Len() int { return m.n }

// Sample is SamplePRS.
func (m *Model) Sample(opts ...sampling.Option) (string, error) {
	return m.SamplePRS(opts...)
}

// SamplePRS returns a uniformly random pattern-avoiding string.
func (m *Model) SamplePRS(opts ...sampling.Option) (string, error) {
	s, err := prs.Sample[rune](m, opts...)
	if err != nil {
		return "", fmt.Errorf("SamplePRS: %w", err)
	}
	return string(s), nil
}

// Avoids reports whether s does not contain the pattern.
func (m *Model) Avoids(s string) bool {
	return !strings.Contains(s, string(m.pattern))
}

// SampleVar draws a uniform symbol.
func (m *Model) SampleVar(rng *rand.Rand, _ int) rune {
	return m.alphabet[rng.IntN(len(m.alphabet))]
}

// BadSet returns the positions covered by an occurrence of the pattern.
// Complexity: O(n·k).
func (m *Model) BadSet(s []rune) []int {
	k := len(m.pattern)
	var bad []int
	for t := 0; t+k <= m.n; t++ {
		if m.matches(s, nil, t) {
			for q := 0; q < k; q++ {
				bad = append(bad, t+q)
			}
		}
	}
	return bad
}

// Neighbors returns the positions within k−1 of i.
func (m *Model) Neighbors(i int) []int {
	k := len(m.pattern)
	lo, hi := max(0, i-k+1), min(m.n-1, i+k-1)
	nb := make([]int, 0, hi-lo)
	for j := lo; j <= hi; j++ {
		if j != i {
			nb = append(nb, j)
		}
	}
	return nb
}

// Propagate reports whether some window containing i and j agrees with the
// pattern on every position already in R.
// Complexity: O(k²).
func (m *Model) Propagate(s []rune, inR []bool, i, j int) bool {
	k := len(m.pattern)
	for t := max(0, i-k+1, j-k+1); t <= min(i, j) && t+k <= m.n; t++ {
		if m.matches(s, inR, t) {
			return true
		}
	}
	return false
}

// matches reports whether the window at t agrees with the pattern on the
// positions selected by mask; a nil mask selects every position.
func (m *Model) matches(s []rune, mask []bool, t int) bool {
	for q, c := range m.pattern {
		if mask != nil && !mask[t+q] {
			continue
		}
		if s[t+q] != c {
			return false
		}
	}
	return true
}
