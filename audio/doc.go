// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level sample plumbing used by the
// transformation pipeline.
//
// This package contains:
//   - Source interface for decoded audio input
//   - Registry for format decoders
//   - FirstChannel for reducing interleaved audio to its first channel
//   - ReadAll and Normalize for turning a Source into a mono buffer
//   - Resampler and NewTimeScaler for cubic-interpolated rate changes
//   - BufferSource for feeding in-memory samples back into a pipeline
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples fills dst with interleaved samples and returns io.EOF,
// possibly together with the last samples, when the stream ends.
//
// # Normalization
//
// Normalize keeps channel 0 only. Channels are never averaged:
//
//	samples, rate, err := audio.Normalize(src)
//
// # Time Scaling
//
// NewTimeScaler reads step source frames per output frame while keeping
// the reported sample rate:
//
//	ts, err := audio.NewTimeScaler(audio.NewBufferSource(samples, rate, 1), 1.5)
//	out, err := audio.ReadAll(ts)
//
// # Sample Format
//
// Samples are float32, nominally in [-1.0, 1.0]. Values outside that range
// are carried through untouched; clipping happens only when encoding.
package audio
