// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3. go-mp3 always decodes
// to 16-bit stereo, so the Source reports two channels even for mono
// files (the channel is duplicated):
//
//	src, err := mp3.Decoder{}.Decode(file)
//	samples, rate, err := audio.Normalize(src)
//
// Samples are interleaved float32 in [-1.0, 1.0).
//
// Decoding failures wrap audio.ErrCorruptData.
package mp3
