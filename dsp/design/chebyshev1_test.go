package design

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-scramble/dsp/biquad"
)

func assertFiniteCoefficients(t *testing.T, c biquad.Coefficients) {
	t.Helper()

	for _, v := range []float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite coefficient in %+v", c)
		}
	}
}

func TestChebyshev1LP_SectionCount(t *testing.T) {
	sr := 8000.0

	// Order 5: two conjugate-pair biquads plus the real-pole section.
	sections := Chebyshev1LP(1000, 5, 4, sr)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections for order 5, got %d", len(sections))
	}

	for _, s := range sections {
		assertFiniteCoefficients(t, s)
	}
}

func TestChebyshev1LP_Response(t *testing.T) {
	sr := 8000.0
	chain := biquad.NewChain(Chebyshev1LP(1000, 5, 4, sr))

	// Passband: within the 4 dB ripple of 0 dB.
	if db := chain.MagnitudeDB(100, sr); db > 1 || db < -5 {
		t.Errorf("passband magnitude at 100 Hz = %.2f dB, want within ripple", db)
	}

	// Stopband: an octave above cutoff a 5th-order Chebyshev is far down.
	if db := chain.MagnitudeDB(2000, sr); db > -30 {
		t.Errorf("stopband magnitude at 2000 Hz = %.2f dB, want < -30 dB", db)
	}
}

func TestChebyshev1HP_Response(t *testing.T) {
	sr := 8000.0
	chain := biquad.NewChain(Chebyshev1HP(1000, 5, 4, sr))

	if db := chain.MagnitudeDB(3000, sr); db > 1 || db < -5 {
		t.Errorf("passband magnitude at 3000 Hz = %.2f dB, want within ripple", db)
	}

	if db := chain.MagnitudeDB(500, sr); db > -30 {
		t.Errorf("stopband magnitude at 500 Hz = %.2f dB, want < -30 dB", db)
	}
}

func TestChebyshev1BP_Response(t *testing.T) {
	sr := 8000.0
	chain := biquad.NewChain(Chebyshev1BP(1000, 2000, 5, 4, sr))

	if db := chain.MagnitudeDB(1500, sr); db > 2 || db < -10 {
		t.Errorf("mid-band magnitude at 1500 Hz = %.2f dB, want near 0", db)
	}

	for _, f := range []float64{300, 3500} {
		if db := chain.MagnitudeDB(f, sr); db > -25 {
			t.Errorf("out-of-band magnitude at %v Hz = %.2f dB, want < -25 dB", f, db)
		}
	}
}

// assertStableSections fails t if any section has a pole on or outside
// the unit circle.
func assertStableSections(t *testing.T, sections []biquad.Coefficients) {
	t.Helper()

	if sections == nil {
		t.Fatal("design returned nil")
	}

	for i, s := range sections {
		if math.Abs(s.A2) >= 1 || math.Abs(s.A1) >= 1+s.A2 {
			t.Errorf("section %d unstable: A1=%v A2=%v", i, s.A1, s.A2)
		}
	}
}

// TestChebyshev1LP_StableNearNyquist pins stability for cutoffs in the
// upper half of the spectrum, where the carrier low-passes of an 8 kHz
// scrambler live. The impulse response of each design must stay finite
// and decay.
func TestChebyshev1LP_StableNearNyquist(t *testing.T) {
	sr := 8000.0

	for _, freq := range []float64{2632, 2718, 2868, 3023, 3196, 3339, 3495, 3729} {
		sections := Chebyshev1LP(freq, 5, 4, sr)
		assertStableSections(t, sections)

		chain := biquad.NewChain(sections)
		impulse := make([]float64, 4000)
		impulse[0] = 1
		chain.ProcessBlock(impulse)

		var tailPeak float64
		for _, v := range impulse[3000:] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("LP %v Hz: non-finite impulse response", freq)
			}
			if a := math.Abs(v); a > tailPeak {
				tailPeak = a
			}
		}

		if tailPeak > 1e-6 {
			t.Errorf("LP %v Hz: impulse response tail peak %v, want decayed", freq, tailPeak)
		}
	}
}

func TestChebyshev1HP_Stable(t *testing.T) {
	sr := 8000.0

	for _, freq := range []float64{100, 1000, 2000, 3000, 3900} {
		assertStableSections(t, Chebyshev1HP(freq, 5, 4, sr))
	}
}

func TestChebyshev1_InvalidParameters(t *testing.T) {
	sr := 8000.0

	cases := []struct {
		name     string
		sections []biquad.Coefficients
	}{
		{"LP zero order", Chebyshev1LP(1000, 0, 4, sr)},
		{"LP zero ripple", Chebyshev1LP(1000, 5, 0, sr)},
		{"LP cutoff at nyquist", Chebyshev1LP(4000, 5, 4, sr)},
		{"LP negative cutoff", Chebyshev1LP(-100, 5, 4, sr)},
		{"HP cutoff above nyquist", Chebyshev1HP(5000, 5, 4, sr)},
		{"BP inverted cutoffs", Chebyshev1BP(2000, 1000, 5, 4, sr)},
		{"BP zero low", Chebyshev1BP(0, 1000, 5, 4, sr)},
	}

	for _, tc := range cases {
		if tc.sections != nil {
			t.Errorf("%s: got %d sections, want nil", tc.name, len(tc.sections))
		}
	}
}
