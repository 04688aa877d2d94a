// Package carrier provides the scrambler's carrier waveforms and the
// low-pass filters paired with them.
//
// Carrier frequencies come from a fixed table of 8 standard analog
// scrambler carriers; band i uses table entry i mod 8. Multiplying a
// band by its carrier produces sum and difference frequency components;
// the paired low-pass filter (cutoff at the carrier frequency) keeps
// only the difference component, which is the spectrally inverted band.
package carrier

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-scramble/dsp/biquad"
	"github.com/cwbudde/algo-scramble/dsp/design"
)

// StandardTable lists the classic analog scrambler carrier frequencies
// in Hz. It is read-only, process-wide configuration.
var StandardTable = [8]float64{2632, 2718, 2868, 3023, 3196, 3339, 3495, 3729}

const (
	lowpassOrder    = 5
	lowpassRippleDB = 4.0
)

// ErrFilterDesign reports that a carrier low-pass could not be designed,
// typically because the sample rate puts the carrier at or above Nyquist.
var ErrFilterDesign = errors.New("carrier: low-pass design failed")

// Bank pairs n carrier frequencies with their low-pass filter
// coefficients. It is immutable after construction and safe to share
// across goroutines.
type Bank struct {
	sampleRate float64
	lowpass    [][]biquad.Coefficients
}

// New builds the carrier bank for n bands at the given sample rate.
func New(n int, sampleRate float64) (*Bank, error) {
	if n < 1 {
		return nil, fmt.Errorf("carrier: band count must be >= 1: %d", n)
	}

	lowpass := make([][]biquad.Coefficients, n)
	for i := range lowpass {
		freq := Frequency(i)

		coeffs := design.Chebyshev1LP(freq, lowpassOrder, lowpassRippleDB, sampleRate)
		if len(coeffs) == 0 {
			return nil, fmt.Errorf("%w: %v Hz at sample rate %v Hz", ErrFilterDesign, freq, sampleRate)
		}

		lowpass[i] = coeffs
	}

	return &Bank{sampleRate: sampleRate, lowpass: lowpass}, nil
}

// Frequency returns the standard-table carrier frequency for band i.
func Frequency(i int) float64 {
	return StandardTable[i%len(StandardTable)]
}

// NumCarriers returns the number of carrier/low-pass pairs in the bank.
func (b *Bank) NumCarriers() int { return len(b.lowpass) }

// SampleRate returns the sample rate the bank was built for.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// Carrier returns band i's carrier waveform evaluated on the absolute
// time axis: sample k of the result corresponds to global sample index
// start+k. Keeping the phase tied to the global index makes carriers
// identical between scramble and descramble runs regardless of how the
// signal was segmented.
func (b *Bank) Carrier(i, start, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * Frequency(i) / b.sampleRate

	for k := range out {
		out[k] = math.Sin(step * float64(start+k))
	}

	return out
}

// LowpassChain returns a freshly constructed zero-state low-pass cascade
// for band i.
func (b *Bank) LowpassChain(i int) *biquad.Chain {
	return biquad.NewChain(b.lowpass[i])
}
