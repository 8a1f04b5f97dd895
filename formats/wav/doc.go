// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files using
// github.com/go-audio/wav.
//
// # Decoding
//
// Integer PCM at 8, 16, 24 and 32 bits and IEEE float at 32 and 64 bits
// are supported, mono or multi-channel, at any sample rate:
//
//	src, err := wav.Decoder{}.Decode(file)
//	samples, err := audio.ReadAll(src)
//
// Integer samples are returned interleaved as float32 in [-1.0, 1.0).
// Float samples are passed through unscaled.
//
// # Encoding
//
// Encode writes a mono integer PCM file at 16, 24 or 32 bits. The writer
// must be an io.WriteSeeker; EncodeBytes encodes into memory:
//
//	out, _ := os.Create("out.wav")
//	err := wav.Encode(out, 44100, 16, samples)
//
// Samples outside [-1, 1] are clipped and NaN is written as silence.
//
// # Errors
//
// Every decoding error is classified with audio.ErrUnsupportedFormat
// (ErrNotWavFile, ErrUnsupportedEncoding, ErrUnsupportedBitDepth) or
// audio.ErrCorruptData (ErrInvalidHeader, read failures).
package wav
