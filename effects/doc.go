// SPDX-License-Identifier: EPL-2.0

// Package effects implements the voice transformation pipeline.
//
// Transform applies, in this order and each only when configured:
//
//  1. pitch shift by the semitones of Config.Pitch (duration preserved)
//  2. time reversal
//  3. multiplication by Config.Gain (Scale, negated when Reflect is set)
//  4. a FilterSize-tap moving average in "same" mode with zero padding
//
// The input slice is copied first and never written. The output has the
// input's length and sample rate.
//
//	cfg := effects.DefaultConfig()
//	cfg.Pitch = effects.PitchChipmunk
//	cfg.FilterSize = 5
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	out := effects.Transform(samples, rate, cfg)
//
// Transform trusts cfg; call Validate at the boundary where it is built.
package effects
