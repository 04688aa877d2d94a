package design

import (
	"github.com/cwbudde/algo-scramble/dsp/biquad"
)

// Chebyshev1LP designs a low-pass Chebyshev Type I cascade with the
// given cutoff frequency (Hz), order and passband ripple (dB).
//
// The analog prototype poles are scaled to the prewarped cutoff and
// mapped through the bilinear transform one section at a time. Returns
// nil when the parameters cannot produce a stable filter (order <= 0,
// ripple <= 0, cutoff outside (0, sampleRate/2), or any resulting
// section with a pole on or outside the unit circle).
func Chebyshev1LP(freq float64, order int, rippleDB, sampleRate float64) []biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}

	poles := cheby1Poles(order, rippleDB)
	if poles == nil {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, len(poles))

	for _, s := range poles {
		p := complex(k, 0) * s

		if imag(p) == 0 {
			// Real pole: first-order section, zero at Nyquist, unity DC
			// gain.
			c := -real(p)
			d := 1 + c
			sections = append(sections, biquad.Coefficients{
				B0: c / d,
				B1: c / d,
				A1: (c - 1) / d,
			})

			continue
		}

		// Conjugate pair p, conj(p): analog denominator s^2 + a*s + b
		// with a = -2*Re(p), b = |p|^2. The feedforward places both
		// zeros at Nyquist and normalizes the section to unity DC gain.
		a := -2 * real(p)
		b := real(p)*real(p) + imag(p)*imag(p)
		d := 1 + a + b
		sections = append(sections, biquad.Coefficients{
			B0: b / d,
			B1: 2 * b / d,
			B2: b / d,
			A1: 2 * (b - 1) / d,
			A2: (1 - a + b) / d,
		})
	}

	applyGain(sections, evenOrderGain(order, rippleDB))

	if !allStable(sections) {
		return nil
	}

	return sections
}

// Chebyshev1HP designs a high-pass Chebyshev Type I cascade with the
// given cutoff frequency (Hz), order and passband ripple (dB).
//
// Returns nil when the parameters cannot produce a stable filter, under
// the same conditions as [Chebyshev1LP].
func Chebyshev1HP(freq float64, order int, rippleDB, sampleRate float64) []biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}

	poles := cheby1Poles(order, rippleDB)
	if poles == nil {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, len(poles))

	for _, s := range poles {
		// Low-pass to high-pass transformation: invert the prototype
		// pole about the prewarped cutoff.
		q := complex(k, 0) / s

		if imag(q) == 0 {
			// Real pole: first-order section, zero at DC, unity Nyquist
			// gain.
			c := -real(q)
			d := 1 + c
			sections = append(sections, biquad.Coefficients{
				B0: 1 / d,
				B1: -1 / d,
				A1: (c - 1) / d,
			})

			continue
		}

		a := -2 * real(q)
		b := real(q)*real(q) + imag(q)*imag(q)
		d := 1 + a + b
		sections = append(sections, biquad.Coefficients{
			B0: 1 / d,
			B1: -2 / d,
			B2: 1 / d,
			A1: 2 * (b - 1) / d,
			A2: (1 - a + b) / d,
		})
	}

	applyGain(sections, evenOrderGain(order, rippleDB))

	if !allStable(sections) {
		return nil
	}

	return sections
}

// Chebyshev1BP designs a bandpass Chebyshev Type I cascade as a
// highpass at the lower cutoff followed by a lowpass at the upper
// cutoff. The cutoffs must satisfy 0 < low < high < sampleRate/2.
func Chebyshev1BP(low, high float64, order int, rippleDB, sampleRate float64) []biquad.Coefficients {
	if low <= 0 || high <= low {
		return nil
	}

	hp := Chebyshev1HP(low, order, rippleDB, sampleRate)
	lp := Chebyshev1LP(high, order, rippleDB, sampleRate)

	if hp == nil || lp == nil {
		return nil
	}

	return append(hp, lp...)
}
