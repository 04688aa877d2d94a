// Package permute generates the per-segment band permutations.
//
// The scrambler and descrambler never exchange permutation state; both
// derive the identical sequence from a shared seed and the segment
// index. Within a run, consecutive segments are guaranteed to use
// different permutations (for more than one band), so the band ordering
// audibly changes at every schedule boundary.
package permute

import "math/rand"

// segmentSeedMix decorrelates per-segment rand streams derived from the
// same user seed. Odd constant taken from splitmix64; the mixing runs
// in uint64 so the multiply wraps instead of overflowing.
const segmentSeedMix uint64 = 0x9E3779B97F4A7C15

// Engine derives reproducible permutations for a fixed band count.
type Engine struct {
	seed  int64
	bands int
}

// NewEngine creates an engine for the given seed and band count.
func NewEngine(seed int64, bands int) *Engine {
	return &Engine{seed: seed, bands: bands}
}

// Bands returns the band count the engine permutes.
func (e *Engine) Bands() int { return e.bands }

// Next returns the permutation for the given segment index. prev is the
// permutation of the preceding segment (nil for the first); the result
// is guaranteed to differ from prev when the band count is greater
// than 1. For band counts <= 1 the identity permutation is returned.
//
// The result is a fresh slice; the engine keeps no mutable state, so
// calls for the same (segment, prev) always agree across runs.
func (e *Engine) Next(segment int, prev []int) []int {
	if e.bands <= 1 {
		return Identity(e.bands)
	}

	mixed := uint64(e.seed) ^ (uint64(segment)+1)*segmentSeedMix
	rng := rand.New(rand.NewSource(int64(mixed)))

	p := rng.Perm(e.bands)
	for Equal(p, prev) {
		p = rng.Perm(e.bands)
	}

	return p
}

// Identity returns the identity permutation on {0..n-1}.
func Identity(n int) []int {
	if n < 0 {
		n = 0
	}

	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Inverse returns the inverse permutation q with q[p[i]] = i.
func Inverse(p []int) []int {
	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q
}

// Equal reports whether two permutations are identical.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Valid reports whether p is a bijection on {0..len(p)-1}.
func Valid(p []int) bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
