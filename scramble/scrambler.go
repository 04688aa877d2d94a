package scramble

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-scramble/dsp/bank"
	"github.com/cwbudde/algo-scramble/dsp/biquad"
	"github.com/cwbudde/algo-scramble/dsp/carrier"
	"github.com/cwbudde/algo-scramble/dsp/design"
	"github.com/cwbudde/algo-scramble/dsp/gap"
	"github.com/cwbudde/algo-scramble/dsp/permute"
	"github.com/cwbudde/algo-scramble/dsp/schedule"
)

// Scrambler runs the band-inversion pipeline in both directions. It is
// immutable after construction: all per-run state (filter delay lines,
// band buffers, permutations) is created fresh for every call, so one
// Scrambler may serve concurrent runs.
type Scrambler struct {
	cfg      Config
	bank     *bank.Bank
	carriers *carrier.Bank
	engine   *permute.Engine
	detector *gap.Detector

	// image[i][p] isolates the spectral image band p's content occupies
	// after heterodyning with carrier i, [carrier_i - high_p,
	// carrier_i - low_p], for descrambling. A nil entry marks a pairing
	// whose image folds entirely below DC and cannot be recovered.
	image [][][]biquad.Coefficients
}

// New validates the configuration and builds the filter and carrier
// banks.
func New(opts ...Option) (*Scrambler, error) {
	cfg := ApplyOptions(opts...)

	if cfg.Bands < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBandCount, cfg.Bands)
	}

	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrSampleRate, cfg.SampleRate)
	}

	if cfg.Rate != 0 && cfg.Rate < 0.5 {
		return nil, fmt.Errorf("%w: %v s", ErrRate, cfg.Rate)
	}

	carriers, err := carrier.New(cfg.Bands, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	detector, err := gap.NewDetector(cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	s := &Scrambler{
		cfg:      cfg,
		carriers: carriers,
		engine:   permute.NewEngine(cfg.Seed, cfg.Bands),
		detector: detector,
	}

	// A single band needs no band-splitting: the signal is inverted
	// whole against carrier 0 and the second inversion undoes it.
	if cfg.Bands > 1 {
		if s.bank, err = bank.New(cfg.Bands, cfg.SampleRate); err != nil {
			return nil, err
		}
		s.image = imageFilters(s.bank, cfg.SampleRate)
	}

	return s, nil
}

// imageFilters designs, for every carrier/band pairing, the band-pass
// isolating the region band p's content occupies after heterodyning
// with carrier i. Mixing band [low, high] with carrier c moves it to
// [c-high, c-low]; descrambling must pick that region out of the
// scrambled spectrum before inverting it back. Content pushed entirely
// below DC by the mix is irrecoverable and its entry stays nil.
func imageFilters(fb *bank.Bank, sampleRate float64) [][][]biquad.Coefficients {
	image := make([][][]biquad.Coefficients, fb.NumBands())

	for i := range image {
		c := carrier.Frequency(i)
		image[i] = make([][]biquad.Coefficients, fb.NumBands())

		for p, b := range fb.Bands() {
			low := c - b.High
			high := c - b.Low

			if low < 1 {
				low = 1
			}
			if max := sampleRate/2 - 1; high > max {
				high = max
			}

			if high-low < 2 {
				continue
			}

			image[i][p] = design.Chebyshev1BP(low, high, fb.Order(), fb.Ripple(), sampleRate)
		}
	}

	return image
}

// Config returns the scrambler configuration.
func (s *Scrambler) Config() Config { return s.cfg }

// Plan computes the segment schedule for the given signal: gap
// detection (when the mode calls for it) followed by boundary
// placement. The same plan must be passed to both Scramble and
// Descramble, since pauses detected in the scrambled signal would not
// line up with the original ones.
func (s *Scrambler) Plan(signal []float64) ([]int, error) {
	if len(signal) == 0 {
		return nil, nil
	}

	var mids []int
	if s.cfg.Mode != schedule.ModeFixed {
		mids = gap.Midpoints(s.detector.FindGaps(signal, s.cfg.MinGapDuration))
	}

	return schedule.Plan(s.cfg.Mode, s.cfg.Rate, len(signal), s.cfg.SampleRate, mids)
}

// Scramble inverts and permutes the signal's bands segment by segment
// according to the planned schedule.
func (s *Scrambler) Scramble(signal []float64, bounds []int) ([]float64, error) {
	return s.run(signal, bounds, false)
}

// Descramble reverses Scramble given the identical schedule and
// configuration (band count, rate, seed). The recovered signal matches
// the original up to the band filters' numerical error; spectral
// content whose inverted image folded below DC (possible in the highest
// bands) is lost, as in any analog band-inversion scrambler.
func (s *Scrambler) Descramble(signal []float64, bounds []int) ([]float64, error) {
	return s.run(signal, bounds, true)
}

func (s *Scrambler) run(signal []float64, bounds []int, inverse bool) ([]float64, error) {
	if len(signal) == 0 {
		return []float64{}, nil
	}

	if err := checkBounds(bounds, len(signal)); err != nil {
		return nil, err
	}

	cleaned := removeDC(signal)
	segs := schedule.Segments(bounds)

	// The permutation chain is sequential (each must differ from its
	// predecessor), so derive all of them up front.
	perms := make([][]int, len(segs))
	for i := range perms {
		var prev []int
		if i > 0 {
			prev = perms[i-1]
		}
		perms[i] = s.engine.Next(i, prev)
	}

	// Segments share no filter state, so they process in parallel and
	// join in deterministic segment order.
	outputs := make([][]float64, len(segs))

	var wg sync.WaitGroup
	for i, seg := range segs {
		wg.Add(1)
		go func(i int, seg schedule.Segment) {
			defer wg.Done()
			outputs[i] = s.processSegment(cleaned[seg.Start:seg.End], seg.Start, perms[i], inverse)
		}(i, seg)
	}
	wg.Wait()

	out := make([]float64, 0, len(signal))
	for _, buf := range outputs {
		out = append(out, buf...)
	}

	return out, nil
}

// processSegment scrambles or descrambles one segment. start is the
// segment's offset in the full signal; carriers are evaluated on the
// absolute time axis so both directions see identical waveforms.
func (s *Scrambler) processSegment(seg []float64, start int, perm []int, inverse bool) []float64 {
	if s.cfg.Bands == 1 {
		wave := s.carriers.Carrier(0, start, len(seg))
		return invert(seg, wave, s.carriers.LowpassChain(0))
	}

	if inverse {
		return s.descrambleSegment(seg, start, perm)
	}

	return s.scrambleSegment(seg, start, perm)
}

// scrambleSegment feeds band perm[i] through carrier slot i, so the
// segment's permutation decides which carrier, and hence which inverted
// image region, each band's content relocates to.
func (s *Scrambler) scrambleSegment(seg []float64, start int, perm []int) []float64 {
	bands := s.bank.Split(seg)

	inverted := make([][]float64, len(perm))
	for i := range perm {
		wave := s.carriers.Carrier(i, start, len(seg))
		inverted[i] = invert(bands[perm[i]], wave, s.carriers.LowpassChain(i))
	}

	return mixDown(inverted, len(seg))
}

// descrambleSegment reverses the pairing: band p was carried by slot
// inv[p], so its content sits in image region (inv[p], p) of the
// scrambled spectrum. Isolating that region and inverting it against
// the same carrier returns the content to [low_p, high_p].
func (s *Scrambler) descrambleSegment(seg []float64, start int, perm []int) []float64 {
	inv := permute.Inverse(perm)

	restored := make([][]float64, len(inv))
	for p, i := range inv {
		restored[p] = s.restoreBand(seg, start, i, p)
	}

	return mixDown(restored, len(seg))
}

// restoreBand recovers one band from the scrambled segment through its
// image band-pass with a fresh zero-state cascade. Irrecoverable
// pairings yield silence.
func (s *Scrambler) restoreBand(seg []float64, start, carrierIdx, band int) []float64 {
	coeffs := s.image[carrierIdx][band]
	if coeffs == nil {
		return make([]float64, len(seg))
	}

	buf := make([]float64, len(seg))
	copy(buf, seg)
	biquad.NewChain(coeffs).ProcessBlock(buf)

	wave := s.carriers.Carrier(carrierIdx, start, len(seg))

	return invert(buf, wave, s.carriers.LowpassChain(carrierIdx))
}

// checkBounds enforces the schedule invariant: strictly increasing,
// first boundary 0, last boundary the signal length.
func checkBounds(bounds []int, length int) error {
	if len(bounds) < 2 || bounds[0] != 0 || bounds[len(bounds)-1] != length {
		return fmt.Errorf("%w: %v for length %d", ErrSchedule, bounds, length)
	}

	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			return fmt.Errorf("%w: %v", ErrSchedule, bounds)
		}
	}

	return nil
}
