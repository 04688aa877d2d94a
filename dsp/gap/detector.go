// Package gap detects low-energy pauses in speech signals.
//
// Pauses are natural points to change the scrambling permutation: a
// listener cannot correlate band orderings across a permutation change
// that happens inside silence. Detection works on short-time energy:
// the signal is cut into overlapping frames, frames whose RMS falls
// below a fraction of the whole signal's RMS are flagged silent, and
// consecutive silent frames are merged into gap intervals.
package gap

import (
	"errors"
	"fmt"

	statstime "github.com/cwbudde/algo-scramble/stats/time"
)

const (
	defaultFrameDuration  = 0.025 // 25 ms frames
	defaultThresholdRatio = 0.1   // silent when frame RMS < ratio * signal RMS
)

// ErrSampleRate reports an unusable sample rate.
var ErrSampleRate = errors.New("gap: sample rate must be positive")

// Gap is one detected pause in the signal.
type Gap struct {
	Start    int // first sample of the silent interval
	End      int // one past the last sample of the silent interval
	Midpoint int // sample index halfway through the interval
}

// Duration returns the gap length in seconds at the given sample rate.
func (g Gap) Duration(sampleRate float64) float64 {
	return float64(g.End-g.Start) / sampleRate
}

// Detector finds pauses using short-time energy analysis.
type Detector struct {
	sampleRate     float64
	frameDuration  float64
	thresholdRatio float64
}

// Option configures a Detector.
type Option func(*Detector)

// WithFrameDuration sets the analysis frame length in seconds.
// Defaults to 25 ms. Frames overlap by half their length.
func WithFrameDuration(seconds float64) Option {
	return func(d *Detector) {
		if seconds > 0 {
			d.frameDuration = seconds
		}
	}
}

// WithThresholdRatio sets the silence threshold as a fraction of the
// whole signal's RMS. Defaults to 0.1.
func WithThresholdRatio(ratio float64) Option {
	return func(d *Detector) {
		if ratio > 0 {
			d.thresholdRatio = ratio
		}
	}
}

// NewDetector creates a detector for the given sample rate.
func NewDetector(sampleRate float64, opts ...Option) (*Detector, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrSampleRate, sampleRate)
	}

	d := &Detector{
		sampleRate:     sampleRate,
		frameDuration:  defaultFrameDuration,
		thresholdRatio: defaultThresholdRatio,
	}
	for _, o := range opts {
		if o != nil {
			o(d)
		}
	}

	return d, nil
}

// FindGaps returns every pause longer than minDuration seconds, in time
// order. An empty result means no qualifying pause was found; that is
// not an error. The input signal is not modified.
func (d *Detector) FindGaps(signal []float64, minDuration float64) []Gap {
	frameLen := int(d.frameDuration * d.sampleRate)
	if frameLen < 1 || len(signal) < frameLen {
		return nil
	}

	hop := frameLen / 2
	if hop < 1 {
		hop = 1
	}

	threshold := d.thresholdRatio * statstime.RMS(signal)
	if threshold <= 0 {
		// An all-zero signal has no speech to pause between.
		return nil
	}

	var (
		gaps       []Gap
		inGap      bool
		gapStart   int
		gapEnd     int
		minSamples = int(minDuration * d.sampleRate)
	)

	flush := func() {
		if inGap && gapEnd-gapStart >= minSamples {
			gaps = append(gaps, Gap{
				Start:    gapStart,
				End:      gapEnd,
				Midpoint: gapStart + (gapEnd-gapStart)/2,
			})
		}
		inGap = false
	}

	for start := 0; start+frameLen <= len(signal); start += hop {
		frame := signal[start : start+frameLen]

		if statstime.RMS(frame) < threshold {
			if !inGap {
				inGap = true
				gapStart = start
			}
			gapEnd = start + frameLen
			continue
		}

		flush()
	}
	flush()

	return gaps
}

// Midpoints returns just the midpoint sample indices of the given gaps.
func Midpoints(gaps []Gap) []int {
	mids := make([]int, len(gaps))
	for i, g := range gaps {
		mids[i] = g.Midpoint
	}

	return mids
}
