package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// PeakCorrelation returns the maximum normalized cross-correlation of b
// against a over lags 0..maxLag (b delayed relative to a). IIR filters
// delay their output, so round-trip comparisons align signals by their
// best lag instead of comparing sample-wise.
func PeakCorrelation(a, b []float64, maxLag int) float64 {
	best := 0.0

	for lag := 0; lag <= maxLag && lag < len(b); lag++ {
		n := len(a)
		if len(b)-lag < n {
			n = len(b) - lag
		}

		var dot, ea, eb float64
		for i := 0; i < n; i++ {
			dot += a[i] * b[i+lag]
			ea += a[i] * a[i]
			eb += b[i+lag] * b[i+lag]
		}

		if ea == 0 || eb == 0 {
			continue
		}

		if c := dot / math.Sqrt(ea*eb); c > best {
			best = c
		}
	}

	return best
}
