// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds synthetic sources and signals shared by tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrMock is returned by FailingSource.
var ErrMock = errors.New("audiotest: mock read failure")

// MockSource generates audio from a waveform function.
// It implements audio.Source without importing it.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // frames to generate
	generated    int // frames generated so far
	waveform     func(sample int, channel int) float32
	closed       bool
}

// NewMockSource creates a source of totalSamples frames.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewSineSource writes the same sine on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// NewChannelSource gives every channel its own constant: channel c is
// values[c]. Useful to see which channel survives a reduction.
func NewChannelSource(sampleRate, totalSamples int, values ...float32) *MockSource {
	return NewMockSource(sampleRate, len(values), totalSamples, func(sample int, channel int) float32 {
		return values[channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the generator.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}
	m.generated += framesToWrite

	samplesWritten := framesToWrite * m.channels
	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// StallingSource never produces data and never reports EOF.
type StallingSource struct{}

func (StallingSource) SampleRate() int                    { return 8000 }
func (StallingSource) Channels() int                      { return 1 }
func (StallingSource) BufSize() int                       { return 16 }
func (StallingSource) Close() error                       { return nil }
func (StallingSource) ReadSamples([]float32) (int, error) { return 0, nil }

// FailingSource returns After samples of silence, then ErrMock.
type FailingSource struct {
	After int
	read  int
}

func (f *FailingSource) SampleRate() int { return 8000 }
func (f *FailingSource) Channels() int   { return 1 }
func (f *FailingSource) BufSize() int    { return 16 }
func (f *FailingSource) Close() error    { return nil }

func (f *FailingSource) ReadSamples(dst []float32) (int, error) {
	n := min(len(dst), f.After-f.read)
	if n <= 0 {
		return 0, ErrMock
	}
	clear(dst[:n])
	f.read += n

	return n, nil
}

// Sine returns n samples of a unit sine at frequency Hz.
func Sine(n, sampleRate int, frequency float64) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * frequency * float64(i) / float64(sampleRate)))
	}

	return out
}

// Ramp returns n samples 0, 1/n, 2/n, ...
func Ramp(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) / float32(n)
	}

	return out
}

// ZeroCrossings counts sign changes in x[from:to].
func ZeroCrossings(x []float32, from, to int) int {
	count := 0
	for i := from + 1; i < to; i++ {
		if (x[i-1] < 0) != (x[i] < 0) {
			count++
		}
	}

	return count
}
