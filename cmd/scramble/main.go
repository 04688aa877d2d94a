// Command scramble applies analog-style voice scrambling to a mono WAV
// recording and immediately descrambles it again, writing both results
// next to the input file.
//
// Usage:
//
//	scramble [flags]
//
// Examples:
//
//	scramble -f speech.wav -b 4
//	scramble -f speech.wav -b 4 -m 2 -r 1/2 -d
//	scramble -f speech.wav -b 8 -seed 1337
//
// The rate is a fraction "changes/seconds", e.g. 1/2 for one
// permutation change every two seconds (fastest allowed: 2/1).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-scramble/dsp/schedule"
	"github.com/cwbudde/algo-scramble/dsp/spectrum"
	"github.com/cwbudde/algo-scramble/scramble"
	"github.com/cwbudde/algo-scramble/wavio"
)

func main() {
	var (
		mode  int
		file  string
		rate  string
		bands int
		debug bool
		seed  int64
	)

	flag.IntVar(&mode, "mode", 0, "permutation change mode: 0 fixed rate, 1 speech gaps only, 2 hybrid")
	flag.IntVar(&mode, "m", 0, "shorthand for -mode")
	flag.StringVar(&file, "file", "speech_test.wav", "mono WAV file to scramble and descramble")
	flag.StringVar(&file, "f", "speech_test.wav", "shorthand for -file")
	flag.StringVar(&rate, "rate", "0/0", "permutation change rate as changes/seconds, 0/0 = never")
	flag.StringVar(&rate, "r", "0/0", "shorthand for -rate")
	flag.IntVar(&bands, "band", 1, "number of frequency bands to split the spectrum into")
	flag.IntVar(&bands, "b", 1, "shorthand for -band")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.BoolVar(&debug, "d", false, "shorthand for -debug")
	flag.Int64Var(&seed, "seed", 1, "permutation sequence seed (must match between scramble and descramble)")
	flag.Parse()

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(log, mode, file, rate, bands, seed); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger, mode int, file, rateArg string, bands int, seed int64) error {
	signal, sampleRate, err := wavio.ReadMono(file)
	if err != nil {
		return err
	}

	duration := float64(len(signal)) / float64(sampleRate)
	log.WithFields(logrus.Fields{
		"sample_rate": sampleRate,
		"samples":     len(signal),
		"duration_s":  duration,
	}).Debug("speech parameters")

	rate, err := parseRate(rateArg, duration)
	if err != nil {
		return err
	}

	m, err := schedule.ParseMode(mode)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"mode":   m.String(),
		"rate_s": rate,
		"bands":  bands,
		"seed":   seed,
	}).Debug("scrambler parameters")

	s, err := scramble.New(
		scramble.WithSampleRate(float64(sampleRate)),
		scramble.WithBands(bands),
		scramble.WithMode(m),
		scramble.WithRate(rate),
		scramble.WithSeed(seed),
	)
	if err != nil {
		return err
	}

	bounds, err := s.Plan(signal)
	if err != nil {
		return err
	}
	log.WithField("boundaries", bounds).Debug("segment schedule planned")

	scrambled, err := s.Scramble(signal, bounds)
	if err != nil {
		return err
	}
	logDominantFrequency(log, "scrambled", scrambled, sampleRate)

	if err := writeNormalized(outputName(file, "scrambled"), scrambled, sampleRate); err != nil {
		return err
	}

	descrambled, err := s.Descramble(scrambled, bounds)
	if err != nil {
		return err
	}
	logDominantFrequency(log, "descrambled", descrambled, sampleRate)

	if err := writeNormalized(outputName(file, "descrambled"), descrambled, sampleRate); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"scrambled":   outputName(file, "scrambled"),
		"descrambled": outputName(file, "descrambled"),
	}).Info("done")

	return nil
}

// logDominantFrequency reports where the strongest spectral component
// of a processing stage landed, a quick audible-correctness check when
// running with -debug.
func logDominantFrequency(log *logrus.Logger, stage string, signal []float64, sampleRate int) {
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	f, err := spectrum.DominantFrequency(signal, float64(sampleRate))
	if err != nil {
		log.WithError(err).WithField("stage", stage).Debug("spectrum analysis failed")
		return
	}

	log.WithFields(logrus.Fields{
		"stage":       stage,
		"dominant_hz": f,
	}).Debug("stage spectrum")
}

// parseRate converts the "changes/seconds" fraction into seconds per
// change. Either part being zero means no scheduled change.
func parseRate(arg string, duration float64) (float64, error) {
	parts := strings.SplitN(arg, "/", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid rate %q: expected changes/seconds", arg)
	}

	changes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q: %w", arg, err)
	}

	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q: %w", arg, err)
	}

	if changes == 0 || seconds == 0 {
		return 0, nil
	}

	rate := float64(seconds) / float64(changes)
	if rate < 0.5 {
		return 0, fmt.Errorf("invalid rate %q: must not exceed 2 permutation changes per second", arg)
	}

	if rate >= duration {
		return 0, fmt.Errorf("invalid rate %q: must change at least once within the %.2fs recording", arg, duration)
	}

	return rate, nil
}

// outputName keeps the original tool's naming: input "speech.wav"
// becomes "speechscrambled.wav" / "speechdescrambled.wav".
func outputName(file, suffix string) string {
	return strings.TrimSuffix(file, ".wav") + suffix + ".wav"
}

func writeNormalized(path string, signal []float64, sampleRate int) error {
	normalized, err := scramble.Normalize(signal, 1.0)
	if err != nil {
		return err
	}

	return wavio.WriteMono(path, normalized, sampleRate)
}
