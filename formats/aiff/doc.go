// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF and
// uncompressed AIFC files with 8, 16, 24 or 32-bit samples, any channel
// count and any sample rate:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	samples, rate, err := audio.Normalize(src)
//
// AIFF stores samples big-endian; the Source always yields interleaved
// float32 in [-1.0, 1.0).
//
// go-audio needs an io.ReadSeeker. Other readers are buffered in memory
// first.
//
// Errors are classified with audio.ErrUnsupportedFormat (ErrNotAiffFile,
// ErrUnsupportedBitDepth) or audio.ErrCorruptData (ErrInvalidHeader, read
// failures).
package aiff
