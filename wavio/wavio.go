// Package wavio reads and writes mono WAV files as float64 sample
// buffers for the scrambling pipeline. It is deliberately thin: the
// pipeline only ever sees raw samples plus a sample rate.
package wavio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const outputBitDepth = 16

// Errors returned by WAV decoding.
var (
	ErrInvalidFile = errors.New("wavio: not a valid WAV file")
	ErrNotMono     = errors.New("wavio: only single-channel (mono) files are supported")
)

// ReadMono decodes a mono WAV file into float64 samples in [-1, 1] and
// returns them with the file's sample rate.
func ReadMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: open %s: %w", path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: read PCM from %s: %w", path, err)
	}

	if buf.Format.NumChannels != 1 {
		return nil, 0, fmt.Errorf("%w: %s has %d channels", ErrNotMono, path, buf.Format.NumChannels)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = outputBitDepth
	}
	scale := float64(int(1) << (bitDepth - 1))

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / scale
	}

	return samples, buf.Format.SampleRate, nil
}

// WriteMono encodes float64 samples in [-1, 1] as a 16-bit mono PCM WAV
// file. Values outside the range are clipped.
func WriteMono(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, outputBitDepth, 1, 1)

	const scale = 1 << (outputBitDepth - 1)

	data := make([]int, len(samples))
	for i, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		data[i] = int(v * (scale - 1))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: outputBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: write %s: %w", path, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize %s: %w", path, err)
	}

	return nil
}
