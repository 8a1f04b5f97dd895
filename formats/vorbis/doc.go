// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding via
// github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	samples, rate, err := audio.Normalize(src)
//
// The Source keeps the stream's channel layout and yields interleaved
// float32 samples in [-1.0, 1.0]. Reads are trimmed to whole frames.
//
// Streams that do not begin with an Ogg page fail with ErrNotOggFile
// (audio.ErrUnsupportedFormat); broken headers and packets wrap
// audio.ErrCorruptData.
package vorbis
