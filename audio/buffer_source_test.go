// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"testing"
)

func TestBufferSource_ReadsInOrder(t *testing.T) {
	t.Parallel()

	samples := []float32{1, 2, 3, 4, 5}
	src := NewBufferSource(samples, 16000, 1)

	if src.SampleRate() != 16000 || src.Channels() != 1 {
		t.Fatalf("metadata = (%d, %d), want (16000, 1)", src.SampleRate(), src.Channels())
	}

	buf := make([]float32, 2)
	var got []float32
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if !slices.Equal(got, samples) {
		t.Errorf("read %v, want %v", got, samples)
	}
	if src.Len() != 0 {
		t.Errorf("Len() = %d, want 0", src.Len())
	}
}

func TestBufferSource_DoesNotWriteInput(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3}
	src := NewBufferSource(samples, 8000, 1)

	buf := make([]float32, 3)
	_, _ = src.ReadSamples(buf)
	buf[0] = 42

	if samples[0] != 0.1 {
		t.Errorf("input modified: %v", samples)
	}
}

func TestBufferSource_Empty(t *testing.T) {
	t.Parallel()

	src := NewBufferSource(nil, 8000, 0)
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	n, err := src.ReadSamples(make([]float32, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}
