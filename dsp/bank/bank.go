package bank

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-scramble/dsp/biquad"
	"github.com/cwbudde/algo-scramble/dsp/design"
)

const (
	defaultOrder    = 5
	defaultRippleDB = 4.0

	// minStep is the narrowest usable band width in Hz. Below this the
	// integer edge layout degenerates (low >= high).
	minStep = 2.0
)

// Errors returned by bank construction.
var (
	ErrBandCount    = errors.New("bank: band count must be >= 1")
	ErrSampleRate   = errors.New("bank: sample rate must be positive")
	ErrBandsTooFine = errors.New("bank: sample rate too low for requested band count")
	ErrFilterDesign = errors.New("bank: filter design produced no stable sections")
)

// Band is one frequency slot of the bank, ordered by ascending center
// frequency before any permutation is applied.
type Band struct {
	Index  int     // position 0..n-1, low to high
	Low    float64 // lower cutoff in Hz
	High   float64 // upper cutoff in Hz
	coeffs []biquad.Coefficients
}

// Center returns the band's center frequency in Hz.
func (b *Band) Center() float64 {
	return (b.Low + b.High) / 2
}

// Chain returns a freshly constructed zero-state band-pass cascade.
func (b *Band) Chain() *biquad.Chain {
	return biquad.NewChain(b.coeffs)
}

// Bank is an ordered set of contiguous band-pass filters partitioning
// (0, Nyquist]. It is immutable after construction and safe to share
// across goroutines.
type Bank struct {
	bands      []Band
	sampleRate float64
	order      int
	rippleDB   float64
}

type bankConfig struct {
	order    int
	rippleDB float64
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithOrder sets the Chebyshev filter order per band. Defaults to 5.
func WithOrder(n int) Option {
	return func(cfg *bankConfig) {
		if n > 0 {
			cfg.order = n
		}
	}
}

// WithRipple sets the Chebyshev passband ripple in dB. Defaults to 4.
func WithRipple(db float64) Option {
	return func(cfg *bankConfig) {
		if db > 0 {
			cfg.rippleDB = db
		}
	}
}

// New builds a bank of n equal-width contiguous bands covering
// (0, sampleRate/2].
func New(n int, sampleRate float64, opts ...Option) (*Bank, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBandCount, n)
	}

	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrSampleRate, sampleRate)
	}

	cfg := bankConfig{order: defaultOrder, rippleDB: defaultRippleDB}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	step := math.Floor(sampleRate / 2 / float64(n))
	if step < minStep {
		return nil, fmt.Errorf("%w: %d bands at %v Hz", ErrBandsTooFine, n, sampleRate)
	}

	bands := make([]Band, 0, n)
	low := 1.0

	for b := 0; b < n; b++ {
		high := float64(b+1)*step - 1

		coeffs := design.Chebyshev1BP(low, high, cfg.order, cfg.rippleDB, sampleRate)
		if len(coeffs) == 0 {
			return nil, fmt.Errorf("%w: band %d (%v..%v Hz)", ErrFilterDesign, b, low, high)
		}

		bands = append(bands, Band{Index: b, Low: low, High: high, coeffs: coeffs})
		low = high + 1
	}

	return &Bank{
		bands:      bands,
		sampleRate: sampleRate,
		order:      cfg.order,
		rippleDB:   cfg.rippleDB,
	}, nil
}

// Bands returns all bands, ordered low to high frequency.
func (b *Bank) Bands() []Band { return b.bands }

// NumBands returns the number of bands.
func (b *Bank) NumBands() int { return len(b.bands) }

// SampleRate returns the sample rate the bank was built for.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// Order returns the Chebyshev filter order used per band.
func (b *Bank) Order() int { return b.order }

// Ripple returns the Chebyshev passband ripple in dB used per band.
func (b *Bank) Ripple() float64 { return b.rippleDB }

// Chains returns one freshly constructed zero-state cascade per band.
func (b *Bank) Chains() []*biquad.Chain {
	chains := make([]*biquad.Chain, len(b.bands))
	for i := range b.bands {
		chains[i] = b.bands[i].Chain()
	}

	return chains
}

// Split filters the input through every band with fresh zero-state
// cascades. Returns one full-length buffer per band: result[band][sample].
// The input is not modified.
func (b *Bank) Split(input []float64) [][]float64 {
	result := make([][]float64, len(b.bands))
	for i := range b.bands {
		buf := make([]float64, len(input))
		copy(buf, input)
		b.bands[i].Chain().ProcessBlock(buf)
		result[i] = buf
	}

	return result
}
