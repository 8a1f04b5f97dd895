// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audxform/internal/memfile"
	"github.com/ik5/audxform/utils"
)

// chunkSize is the number of samples handed to the encoder per write.
const chunkSize = 8192

// Encode writes samples as a mono integer PCM WAV file at sampleRate.
// bitDepth is 16, 24 or 32. Samples are clipped to [-1, 1]; NaN is
// written as silence. w must seek so the header sizes can be patched.
func Encode(w io.WriteSeeker, sampleRate, bitDepth int, samples []float32) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, 0, min(len(samples), chunkSize)),
		SourceBitDepth: bitDepth,
	}

	// An empty write still emits the header and the data chunk.
	for i := 0; i == 0 || i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))

		buf.Data = buf.Data[:0]
		for _, s := range samples[i:end] {
			buf.Data = append(buf.Data, utils.FloatToPCM(s, bitDepth))
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("wav: writing samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalizing header: %w", err)
	}

	return nil
}

// EncodeBytes is Encode into memory.
func EncodeBytes(sampleRate, bitDepth int, samples []float32) ([]byte, error) {
	w := memfile.NewWriter(44 + len(samples)*bitDepth/8)
	if err := Encode(w, sampleRate, bitDepth, samples); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}
