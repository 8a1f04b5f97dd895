// SPDX-License-Identifier: EPL-2.0

package audxform

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audxform/effects"
	"github.com/ik5/audxform/formats/wav"
)

var ErrInvalidSampleRate = errors.New("sample rate must be positive")

// Apply validates cfg and runs the effect chain over samples. samples is
// not modified.
func Apply(samples []float32, sampleRate int, cfg effects.Config) ([]float32, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	return effects.Transform(samples, sampleRate, cfg), nil
}

// Process loads data and applies cfg to it. The configuration is checked
// before anything is decoded.
func Process(data []byte, cfg effects.Config) ([]float32, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	samples, rate, err := Load(data)
	if err != nil {
		return nil, 0, err
	}

	out, err := Apply(samples, rate, cfg)
	if err != nil {
		return nil, 0, err
	}

	return out, rate, nil
}

// ProcessToWAV is Process followed by a mono PCM WAV encode of bitDepth
// bits into w.
func ProcessToWAV(w io.WriteSeeker, data []byte, cfg effects.Config, bitDepth int) error {
	out, rate, err := Process(data, cfg)
	if err != nil {
		return err
	}

	if err := wav.Encode(w, rate, bitDepth, out); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	return nil
}
