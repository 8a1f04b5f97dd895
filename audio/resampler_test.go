// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audxform/internal/audiotest"
)

func drain(t *testing.T, src Source, chunk int) []float32 {
	t.Helper()

	samples, err := readAllChunks(src, chunk)
	if err != nil {
		t.Fatalf("read error = %v", err)
	}

	return samples
}

func readAllChunks(src Source, chunk int) ([]float32, error) {
	buf := make([]float32, chunk)
	var out []float32
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}

func TestTimeScaler_UnitStepIsIdentity(t *testing.T) {
	t.Parallel()

	in := audiotest.Ramp(1000)
	ts, err := NewTimeScaler(NewBufferSource(in, 44100, 1), 1)
	if err != nil {
		t.Fatalf("NewTimeScaler() error = %v", err)
	}

	out := drain(t, ts, 128)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}

func TestTimeScaler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    int
		step  float64
		want  int
	}{
		{"identity", 100, 1, 100},
		{"halve odd", 101, 2, 51},
		{"halve even", 100, 2, 50},
		{"double", 10, 0.5, 20},
		{"single sample", 1, 0.25, 4},
		{"empty", 0, 1.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts, err := NewTimeScaler(NewBufferSource(audiotest.Ramp(tt.in), 8000, 1), tt.step)
			if err != nil {
				t.Fatalf("NewTimeScaler() error = %v", err)
			}

			out := drain(t, ts, 7)
			if len(out) != tt.want {
				t.Errorf("len = %d, want %d", len(out), tt.want)
			}
		})
	}
}

// rms returns the RMS of x away from both edges.
func rms(x []float32, edge int) float64 {
	var sum float64
	for _, v := range x[edge : len(x)-edge] {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(x)-2*edge))
}

func TestTimeScaler_KeepsHighFrequencies(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(4410, 44100, 5000)

	for _, step := range []float64{1.25, 1.5, 1.78} {
		ts, err := NewTimeScaler(NewBufferSource(in, 44100, 1), step)
		if err != nil {
			t.Fatalf("NewTimeScaler() error = %v", err)
		}

		out := drain(t, ts, 256)
		if ratio := rms(out, 100) / rms(in, 100); ratio < 0.95 || ratio > 1.05 {
			t.Errorf("step %v: RMS ratio = %.3f, want about 1", step, ratio)
		}
	}
}

func TestResampler_LowPassWhenDecimating(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(4410, 44100, 5000)
	r := NewResampler(NewBufferSource(in, 44100, 1), 29400)

	out := drain(t, r, 256)
	if ratio := rms(out, 100) / rms(in, 100); ratio > 0.8 {
		t.Errorf("RMS ratio = %.3f, want the 5 kHz tone attenuated below 0.8", ratio)
	}
}

func TestTimeScaler_InvalidStep(t *testing.T) {
	t.Parallel()

	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewTimeScaler(audiotest.NewSilentSource(8000, 1, 10), step)
		if !errors.Is(err, ErrInvalidTimeScale) {
			t.Errorf("NewTimeScaler(%v) error = %v, want ErrInvalidTimeScale", step, err)
		}
	}
}

func TestTimeScaler_KeepsSampleRate(t *testing.T) {
	t.Parallel()

	ts, err := NewTimeScaler(audiotest.NewSilentSource(22050, 1, 10), 1.7)
	if err != nil {
		t.Fatalf("NewTimeScaler() error = %v", err)
	}
	if ts.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", ts.SampleRate())
	}
}

func TestResampler_Stereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChannelSource(48000, 480, 0.25, -0.5)
	r := NewResampler(src, 16000)

	if r.SampleRate() != 16000 || r.Channels() != 2 {
		t.Fatalf("metadata = (%d, %d), want (16000, 2)", r.SampleRate(), r.Channels())
	}

	out := drain(t, r, 64)
	if len(out) != 2*160 {
		t.Fatalf("len = %d, want %d", len(out), 2*160)
	}
	for i := 0; i < len(out); i += 2 {
		if out[i] != 0.25 || out[i+1] != -0.5 {
			t.Fatalf("frame %d = (%v, %v), want (0.25, -0.5)", i/2, out[i], out[i+1])
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 2, 10), 8000)
	_, err := r.ReadSamples(make([]float32, 3))
	if !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EOFIsSticky(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 1, 4), 8000)
	_ = drain(t, r, 16)

	n, err := r.ReadSamples(make([]float32, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestResampler_PropagatesError(t *testing.T) {
	t.Parallel()

	r := NewResampler(&audiotest.FailingSource{After: 10}, 4000)
	_, err := readAllChunks(r, 8)
	if !errors.Is(err, audiotest.ErrMock) {
		t.Errorf("error = %v, want ErrMock", err)
	}
}

func TestResampler_StallingSource(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.StallingSource{}, 8000)
	_, err := r.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("error = %v, want io.ErrNoProgress", err)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 4)
	r := NewResampler(src, 16000)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not reach the source")
	}
}

func BenchmarkTimeScaler(b *testing.B) {
	src := audiotest.NewSineSource(44100, 1, 1<<30, 440)
	ts, err := NewTimeScaler(src, 1.25)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = ts.ReadSamples(buf)
	}
}
