// SPDX-License-Identifier: EPL-2.0

package effects

// Transform runs the configured stages over a private copy of in, in
// order: pitch shift, reversal, scale/reflect, smoothing. in is never
// modified and the result always has len(in) samples. cfg is assumed to
// be valid; NaN and Inf pass through untouched.
func Transform(in []float32, sampleRate int, cfg Config) []float32 {
	out := make([]float32, len(in))
	copy(out, in)

	if semitones := cfg.Pitch.Semitones(); semitones != 0 {
		out = PitchShift(out, sampleRate, semitones)
	}

	if cfg.Reverse {
		Reverse(out)
	}

	Scale(out, cfg.Gain())

	if cfg.FilterSize > 1 {
		out = Smooth(out, cfg.FilterSize)
	}

	return out
}
