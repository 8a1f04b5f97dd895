// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource serves an in-memory interleaved buffer as a Source.
// The buffer is read, never written.
type BufferSource struct {
	samples    []float32
	sampleRate int
	channels   int
	offset     int
}

// NewBufferSource wraps samples (interleaved when channels > 1).
// A channel count below 1 is treated as mono.
func NewBufferSource(samples []float32, sampleRate, channels int) *BufferSource {
	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return len(b.samples) }
func (b *BufferSource) Close() error    { return nil }

// Len returns the number of samples not read yet.
func (b *BufferSource) Len() int { return len(b.samples) - b.offset }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.offset >= len(b.samples) {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n := copy(dst, b.samples[b.offset:])
	b.offset += n

	if b.offset >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}
