package scramble

import "github.com/cwbudde/algo-scramble/dsp/schedule"

// Config defines the scrambler parameters. Values are validated by
// [New]; external callers (the CLI) are expected to have range-checked
// user input already, but the library rejects unusable configurations
// on its own.
type Config struct {
	SampleRate     float64       // Hz
	Bands          int           // number of spectrum bands, >= 1
	Mode           schedule.Mode // boundary placement strategy
	Rate           float64       // seconds between permutation changes, 0 = never
	Seed           int64         // permutation sequence seed
	MinGapDuration float64       // shortest pause usable as a change point, seconds
}

// DefaultConfig returns the defaults of the original scrambler: one
// band, fixed mode, no scheduled permutation change.
func DefaultConfig() Config {
	return Config{
		SampleRate:     48000,
		Bands:          1,
		Mode:           schedule.ModeFixed,
		Rate:           0,
		Seed:           1,
		MinGapDuration: 0.25,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithSampleRate sets the processing sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBands sets the number of frequency bands the spectrum is split
// into.
func WithBands(n int) Option {
	return func(cfg *Config) {
		cfg.Bands = n
	}
}

// WithMode sets the permutation-change scheduling mode.
func WithMode(m schedule.Mode) Option {
	return func(cfg *Config) {
		cfg.Mode = m
	}
}

// WithRate sets the seconds between permutation changes. 0 disables
// scheduled changes.
func WithRate(seconds float64) Option {
	return func(cfg *Config) {
		cfg.Rate = seconds
	}
}

// WithSeed sets the permutation sequence seed. Scrambler and
// descrambler must use the same seed.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithMinGapDuration sets the shortest speech pause (seconds) the gap
// detector reports as a candidate change point.
func WithMinGapDuration(seconds float64) Option {
	return func(cfg *Config) {
		if seconds > 0 {
			cfg.MinGapDuration = seconds
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
