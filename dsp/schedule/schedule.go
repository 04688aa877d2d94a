// Package schedule decides where in time the scrambling permutation
// changes.
//
// A schedule is an ordered list of sample-index boundaries: strictly
// increasing, starting at 0 and ending at the signal length. The
// segments between consecutive boundaries partition the signal exactly,
// and each segment is scrambled under one fixed band permutation.
package schedule

import (
	"errors"
	"fmt"
)

// Mode selects how permutation-change boundaries are placed.
type Mode int

const (
	// ModeFixed places boundaries at exact multiples of the rate.
	ModeFixed Mode = iota
	// ModeGapOnly places boundaries only at detected speech pauses.
	ModeGapOnly
	// ModeHybrid places boundaries at the fixed rate but snaps each one
	// to a nearby speech pause when possible.
	ModeHybrid
)

// String returns the mode name used in debug output.
func (m Mode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeGapOnly:
		return "gap-only"
	case ModeHybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Errors returned by schedule planning.
var (
	ErrMode       = errors.New("schedule: mode must be 0 (fixed), 1 (gap-only) or 2 (hybrid)")
	ErrRate       = errors.New("schedule: rate must be 0 or in [0.5s, signal duration)")
	ErrLength     = errors.New("schedule: signal length must be positive")
	ErrSampleRate = errors.New("schedule: sample rate must be positive")
)

// ParseMode converts the CLI's numeric mode parameter.
func ParseMode(v int) (Mode, error) {
	if v < int(ModeFixed) || v > int(ModeHybrid) {
		return 0, fmt.Errorf("%w: %d", ErrMode, v)
	}

	return Mode(v), nil
}

// Segment is a contiguous sample-index range [Start, End) of the signal.
type Segment struct {
	Start int
	End   int
}

// Len returns the segment length in samples.
func (s Segment) Len() int { return s.End - s.Start }

// Segments converts a boundary list into the segment ranges it implies.
func Segments(bounds []int) []Segment {
	if len(bounds) < 2 {
		return nil
	}

	segs := make([]Segment, len(bounds)-1)
	for i := range segs {
		segs[i] = Segment{Start: bounds[i], End: bounds[i+1]}
	}

	return segs
}

// Plan computes the boundary list for a signal of the given length.
//
// rate is the number of seconds between permutation changes; 0 means no
// scheduled change (a single segment, except in gap-only mode where the
// rate is ignored entirely). gapMidpoints are the detected pause
// midpoints from the gap detector, in ascending order.
//
// The result is strictly increasing, starts at 0 and ends at length.
func Plan(mode Mode, rate float64, length int, sampleRate float64, gapMidpoints []int) ([]int, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrLength, length)
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrSampleRate, sampleRate)
	}

	duration := float64(length) / sampleRate
	if rate != 0 && (rate < 0.5 || rate >= duration) {
		return nil, fmt.Errorf("%w: %v s for %v s signal", ErrRate, rate, duration)
	}

	switch mode {
	case ModeFixed:
		return planFixed(rate, length, sampleRate), nil
	case ModeGapOnly:
		return planGapOnly(length, gapMidpoints), nil
	case ModeHybrid:
		return planHybrid(rate, length, sampleRate, gapMidpoints), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrMode, int(mode))
	}
}

func planFixed(rate float64, length int, sampleRate float64) []int {
	bounds := []int{0}

	if rate > 0 {
		step := rateStep(rate, sampleRate)
		for t := step; t < length; t += step {
			bounds = append(bounds, t)
		}
	}

	return append(bounds, length)
}

// rateStep converts the change rate to a sample step, clamped to one
// sample so very low sample rates cannot stall boundary placement.
func rateStep(rate, sampleRate float64) int {
	step := int(rate * sampleRate)
	if step < 1 {
		step = 1
	}

	return step
}

func planGapOnly(length int, gapMidpoints []int) []int {
	bounds := []int{0}

	for _, m := range gapMidpoints {
		if m > bounds[len(bounds)-1] && m < length {
			bounds = append(bounds, m)
		}
	}

	return append(bounds, length)
}

func planHybrid(rate float64, length int, sampleRate float64, gapMidpoints []int) []int {
	bounds := []int{0}

	if rate > 0 {
		step := rateStep(rate, sampleRate)
		window := step / 2

		for t := step; t < length; t += step {
			b := snapToGap(t, window, gapMidpoints)
			// Snapping must not break monotonicity; fall back to the
			// exact target, and skip the boundary entirely if even that
			// would collide with the previous one.
			if b <= bounds[len(bounds)-1] || b >= length {
				b = t
			}
			if b > bounds[len(bounds)-1] && b < length {
				bounds = append(bounds, b)
			}
		}
	}

	return append(bounds, length)
}

// snapToGap returns the gap midpoint closest to target within
// [target-window, target+window], or target itself when no gap falls in
// the window.
func snapToGap(target, window int, gapMidpoints []int) int {
	best := target
	bestDist := window + 1

	for _, m := range gapMidpoints {
		d := m - target
		if d < 0 {
			d = -d
		}
		if d <= window && d < bestDist {
			best = m
			bestDist = d
		}
	}

	return best
}
