// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC decoding via github.com/mewkiz/flac.
//
//	src, err := flac.Decoder{}.Decode(file)
//	samples, rate, err := audio.Normalize(src)
//
// Frames are decoded one at a time and interleaved; samples are scaled by
// the stream bit depth into float32 in [-1.0, 1.0).
package flac
