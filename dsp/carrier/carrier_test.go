package carrier

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-scramble/internal/testutil"
)

func TestFrequency_TableCycles(t *testing.T) {
	if f := Frequency(0); f != 2632 {
		t.Errorf("Frequency(0) = %v, want 2632", f)
	}

	if f := Frequency(7); f != 3729 {
		t.Errorf("Frequency(7) = %v, want 3729", f)
	}

	// Band 8 wraps back to the first table entry.
	if f := Frequency(8); f != 2632 {
		t.Errorf("Frequency(8) = %v, want 2632", f)
	}

	if f := Frequency(13); f != Frequency(5) {
		t.Errorf("Frequency(13) = %v, want Frequency(5) = %v", f, Frequency(5))
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(0, 48000); err == nil {
		t.Error("New(0, 48000) succeeded, want error")
	}

	// 2632 Hz carrier is above the 2 kHz Nyquist of a 4 kHz rate.
	if _, err := New(1, 4000); !errors.Is(err, ErrFilterDesign) {
		t.Errorf("New(1, 4000) error = %v, want ErrFilterDesign", err)
	}
}

func TestCarrier_AbsoluteTimeBase(t *testing.T) {
	b, err := New(2, 48000)
	if err != nil {
		t.Fatal(err)
	}

	// A carrier generated from an offset must be the tail of the carrier
	// generated from zero. That is what keeps phase continuous across
	// segment boundaries.
	whole := b.Carrier(0, 0, 1000)
	tail := b.Carrier(0, 600, 400)

	testutil.RequireSliceNearlyEqual(t, tail, whole[600:], 1e-12)
}

func TestCarrier_FrequencyAndAmplitude(t *testing.T) {
	sr := 48000.0
	b, err := New(1, sr)
	if err != nil {
		t.Fatal(err)
	}

	// 6000 samples cover every distinct sample phase of a 2632 Hz sine
	// at 48 kHz (2632/48000 = 329/6000), so the sampled peak reaches 1.
	wave := b.Carrier(0, 0, 6000)

	peak := 0.0
	for _, v := range wave {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak > 1 || peak < 0.99 {
		t.Errorf("carrier peak = %v, want close to 1", peak)
	}

	// A sine at f Hz crosses zero 2f times per second.
	crossings := 0
	for i := 1; i < len(wave); i++ {
		if (wave[i-1] < 0) != (wave[i] < 0) {
			crossings++
		}
	}

	wantPerSecond := 2 * Frequency(0)
	gotPerSecond := float64(crossings) * sr / float64(len(wave))
	if math.Abs(gotPerSecond-wantPerSecond) > wantPerSecond*0.01 {
		t.Errorf("zero-crossing rate = %v/s, want about %v/s", gotPerSecond, wantPerSecond)
	}
}

func TestLowpassChain_PassesBelowCutsAbove(t *testing.T) {
	sr := 48000.0
	b, err := New(1, sr)
	if err != nil {
		t.Fatal(err)
	}

	chain := b.LowpassChain(0)

	// Difference components sit well below the 2632 Hz carrier, sum
	// components well above twice the carrier.
	if db := chain.MagnitudeDB(500, sr); db < -5 || db > 1 {
		t.Errorf("magnitude at 500 Hz = %.2f dB, want within ripple", db)
	}

	if db := chain.MagnitudeDB(2*Frequency(0)+500, sr); db > -25 {
		t.Errorf("magnitude at sum-component frequency = %.2f dB, want < -25 dB", db)
	}
}

func TestLowpassChain_FreshState(t *testing.T) {
	b, err := New(1, 48000)
	if err != nil {
		t.Fatal(err)
	}

	input := testutil.Sine(500, 48000, 0.05, 48000)

	a := append([]float64(nil), input...)
	b.LowpassChain(0).ProcessBlock(a)

	c := append([]float64(nil), input...)
	b.LowpassChain(0).ProcessBlock(c)

	testutil.RequireSliceNearlyEqual(t, c, a, 0)
}
