// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/audxform/audio"
)

// PitchShift moves x by semitones while keeping its duration: the signal
// is time-stretched by 2^(semitones/12) with a phase vocoder, then read
// back at that step by the cubic time scaler. The result always has
// len(x) samples; a short tail is zero-filled, a long one dropped.
func PitchShift(x []float32, sampleRate int, semitones float64) []float32 {
	out := make([]float32, len(x))
	if len(x) == 0 || sampleRate <= 0 || semitones == 0 {
		copy(out, x)
		return out
	}

	ratio := math.Exp2(semitones / 12)
	stretched := timeStretch(x, sampleRate, ratio)
	if len(stretched) == 0 {
		return out
	}

	step := float64(len(stretched)) / float64(len(x))
	ts, err := audio.NewTimeScaler(audio.NewBufferSource(stretched, sampleRate, 1), step)
	if err != nil {
		// step is a ratio of two positive lengths.
		return out
	}

	// In-memory sources only end with io.EOF.
	resampled, _ := audio.ReadAll(ts)
	copy(out, resampled)

	return out
}
