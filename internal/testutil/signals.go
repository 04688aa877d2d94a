package testutil

import "math"

// Sine generates a deterministic sine wave.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Silence returns an all-zero signal.
func Silence(length int) []float64 {
	return make([]float64, length)
}

// Concat joins signals into one buffer, in order.
func Concat(parts ...[]float64) []float64 {
	var n int
	for _, p := range parts {
		n += len(p)
	}

	out := make([]float64, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
