package scramble

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-scramble/dsp/biquad"
	statstime "github.com/cwbudde/algo-scramble/stats/time"
)

// invert performs the heterodyne inversion of one band: sample-wise
// multiplication by the carrier waveform followed by the band's
// low-pass filter. The multiply produces sum and difference frequency
// components; the low-pass keeps only the difference, which is the
// mirrored (inverted) band spectrum. Applying invert a second time with
// the same carrier and filter undoes the inversion up to the filter's
// bounded approximation error.
func invert(band, carrierWave []float64, lowpass *biquad.Chain) []float64 {
	out := make([]float64, len(band))
	vecmath.MulBlock(out, band, carrierWave)
	lowpass.ProcessBlock(out)

	return out
}

// mixDown sums the per-band buffers sample-wise into one full-length
// waveform. Each buffer occupies the full time axis but only its own
// frequency region carries energy, so summation rebuilds the whole
// spectrum.
func mixDown(bands [][]float64, length int) []float64 {
	out := make([]float64, length)
	for _, b := range bands {
		vecmath.AddBlockInPlace(out, b)
	}

	return out
}

// removeDC returns a copy of the signal with its mean subtracted.
func removeDC(signal []float64) []float64 {
	mean := statstime.DC(signal)

	out := make([]float64, len(signal))
	for i, x := range signal {
		out[i] = x - mean
	}

	return out
}

// Normalize scales the signal to the target peak amplitude and returns
// a new slice. An all-zero input stays zero.
func Normalize(signal []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("scramble: normalize target peak must be >= 0: %v", targetPeak)
	}

	if len(signal) == 0 {
		return nil, fmt.Errorf("scramble: normalize input must not be empty")
	}

	out := make([]float64, len(signal))

	maxAbs := vecmath.MaxAbs(signal)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, signal, targetPeak/maxAbs)

	return out, nil
}
