package design

import (
	"math"

	"github.com/cwbudde/algo-scramble/dsp/biquad"
)

// bilinearK computes the bilinear transform frequency warping factor
// tan(pi*freq/sampleRate). Returns (k, true) on success, (0, false) if
// the parameters are invalid.
func bilinearK(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}

	return math.Tan(math.Pi * freq / sampleRate), true
}

// cheby1Poles returns the analog prototype poles of a Chebyshev Type I
// low-pass with cutoff 1 rad/s: the upper-half-plane pole of each
// conjugate pair, followed by the real pole for odd orders. Returns nil
// for unusable order or ripple.
func cheby1Poles(order int, rippleDB float64) []complex128 {
	if order <= 0 || rippleDB <= 0 {
		return nil
	}

	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	mu := math.Asinh(1/eps) / float64(order)
	sinhMu := math.Sinh(mu)
	coshMu := math.Cosh(mu)

	poles := make([]complex128, 0, (order+1)/2)
	for i := 0; i < order/2; i++ {
		theta := float64(2*i+1) * math.Pi / (2 * float64(order))
		poles = append(poles, complex(-sinhMu*math.Sin(theta), coshMu*math.Cos(theta)))
	}

	if order%2 != 0 {
		poles = append(poles, complex(-sinhMu, 0))
	}

	return poles
}

// evenOrderGain is the DC (low-pass) or Nyquist (high-pass) gain of an
// even-order Chebyshev Type I filter, 1/sqrt(1+eps^2). Odd orders peak
// at unity.
func evenOrderGain(order int, rippleDB float64) float64 {
	if order%2 != 0 {
		return 1
	}

	return math.Pow(10, -rippleDB/20)
}

// applyGain folds an overall gain factor into the first section's
// feedforward coefficients.
func applyGain(sections []biquad.Coefficients, g float64) {
	if g == 1 || len(sections) == 0 {
		return
	}

	sections[0].B0 *= g
	sections[0].B1 *= g
	sections[0].B2 *= g
}

// stable reports whether the section's poles lie strictly inside the
// unit circle (the Jury stability triangle for z^2 + A1*z + A2).
func stable(c biquad.Coefficients) bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// allStable reports whether every section of the cascade is stable.
func allStable(sections []biquad.Coefficients) bool {
	for _, s := range sections {
		if !stable(s) {
			return false
		}
	}

	return true
}
