// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// FirstChannel reduces an interleaved source to mono by keeping channel 0
// of every frame. The other channels are dropped, not mixed in.
type FirstChannel struct {
	src Source
	tmp []float32
}

func NewFirstChannel(src Source) *FirstChannel {
	return &FirstChannel{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *FirstChannel) SampleRate() int { return m.src.SampleRate() }
func (m *FirstChannel) Channels() int   { return 1 }
func (m *FirstChannel) BufSize() int    { return m.src.BufSize() }
func (m *FirstChannel) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with up to len(dst) mono samples.
func (m *FirstChannel) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels

	// Grow but never shrink, a steady reader keeps one allocation.
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	// A trailing partial frame still carries its channel 0 value.
	frames := (n + channels - 1) / channels
	for f := range frames {
		dst[f] = m.tmp[f*channels]
	}

	return frames, err
}
