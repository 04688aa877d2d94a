package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// PowerSpectrum returns the one-sided power spectrum |X[k]|^2 of the
// signal, zero-padded to the next power of two. The result has
// fftSize/2+1 bins; bin k corresponds to frequency k*sampleRate/fftSize
// with fftSize = nextPowerOf2(len(signal)).
func PowerSpectrum(signal []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("spectrum: input must not be empty")
	}

	fftSize := nextPowerOf2(len(signal))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	return power, nil
}

// DominantFrequency returns the frequency (Hz) of the strongest bin in
// the signal's power spectrum.
func DominantFrequency(signal []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("spectrum: sample rate must be > 0: %v", sampleRate)
	}

	power, err := PowerSpectrum(signal)
	if err != nil {
		return 0, err
	}

	fftSize := 2 * (len(power) - 1)
	maxBin := 0

	for i, p := range power {
		if p > power[maxBin] {
			maxBin = i
		}
	}

	return float64(maxBin) * sampleRate / float64(fftSize), nil
}

// BandPower sums the power spectrum bins falling inside [low, high) Hz.
func BandPower(signal []float64, low, high, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("spectrum: sample rate must be > 0: %v", sampleRate)
	}

	power, err := PowerSpectrum(signal)
	if err != nil {
		return 0, err
	}

	fftSize := 2 * (len(power) - 1)
	binHz := sampleRate / float64(fftSize)

	var sum float64

	for i, p := range power {
		f := float64(i) * binHz
		if f >= low && f < high {
			sum += p
		}
	}

	return sum, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
