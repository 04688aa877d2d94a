// Package scramble implements analog-style voice scrambling and
// descrambling by frequency-band inversion with time-segmented band
// permutation.
//
// The pipeline splits the input spectrum into contiguous bands and
// inverts each band by heterodyne carrier multiplication followed by
// low-pass filtering. A per-segment permutation decides which carrier
// each band is mixed with, so the same speech content relocates to a
// different spectral image whenever the permutation changes.
// Descrambling replays the identical segment schedule and permutation
// sequence, isolates each band's image region and applies the inversion
// a second time (frequency inversion is its own inverse) under the
// inverse pairing.
//
// Typical use:
//
//	s, err := scramble.New(
//	    scramble.WithSampleRate(8000),
//	    scramble.WithBands(4),
//	    scramble.WithMode(schedule.ModeHybrid),
//	    scramble.WithRate(2),
//	)
//	bounds, err := s.Plan(signal)
//	scrambled, err := s.Scramble(signal, bounds)
//	restored, err := s.Descramble(scrambled, bounds)
//
// The schedule is planned once from the clear input (gap detection on
// the scrambled signal would find different pauses) and passed to both
// directions. Permutations need no side channel: they derive from the
// configured seed and the segment index.
package scramble
