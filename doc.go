// SPDX-License-Identifier: EPL-2.0

// Package audxform loads an encoded audio file, applies a chain of voice
// effects to it and hands back a buffer ready to be written as WAV.
//
// # Supported Formats
//
// The default registry decodes:
//   - WAV (integer PCM 8/16/24/32-bit) via formats/wav
//   - AIFF / AIFC via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// The format is picked from the leading magic bytes, not from a file name.
//
// # Quick Start
//
//	data, _ := os.ReadFile("voice.mp3")
//
//	cfg := effects.DefaultConfig()
//	cfg.Pitch = effects.PitchChipmunk
//	cfg.Reverse = true
//
//	out, _ := os.Create("transformed_audio.wav")
//	defer out.Close()
//
//	err := audxform.ProcessToWAV(out, data, cfg, 16)
//
// # Pipeline
//
// Load keeps only the first channel of the decoded stream (no downmix) and
// returns it as float32 samples with the source sample rate. The effects
// package then applies, in this order and each only when enabled:
//
//  1. pitch shift (phase vocoder plus cubic time scaling, length preserving)
//  2. reversal
//  3. scale, negated when reflect is set
//  4. moving average smoothing in "same" mode
//
// The sample rate is never changed and samples are never clipped before
// encoding.
//
// # Errors
//
// Decoder failures are returned as produced by the codec package and can be
// classified with errors.Is against audio.ErrUnsupportedFormat and
// audio.ErrCorruptData. Invalid effect parameters are reported as
// *effects.ConfigError wrapping effects.ErrInvalidConfig.
package audxform
