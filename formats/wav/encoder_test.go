// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/ik5/audxform/internal/memfile"
)

func TestEncode_Header(t *testing.T) {
	t.Parallel()

	data, err := EncodeBytes(22050, 16, []float32{0, 0.5, -0.5})
	if err != nil {
		t.Fatalf("EncodeBytes() error = %v", err)
	}

	if len(data) != 44+3*2 {
		t.Fatalf("len = %d, want %d", len(data), 44+3*2)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("bad RIFF/WAVE magic: %q", data[:12])
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != uint32(len(data)-8) {
		t.Errorf("RIFF size = %d, want %d", got, len(data)-8)
	}

	le := binary.LittleEndian
	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"format", uint32(le.Uint16(data[20:22])), formatPCM},
		{"channels", uint32(le.Uint16(data[22:24])), 1},
		{"sample rate", le.Uint32(data[24:28]), 22050},
		{"byte rate", le.Uint32(data[28:32]), 22050 * 2},
		{"block align", uint32(le.Uint16(data[32:34])), 2},
		{"bits", uint32(le.Uint16(data[34:36])), 16},
		{"data size", le.Uint32(data[40:44]), 6},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestEncode_Empty(t *testing.T) {
	t.Parallel()

	data, err := EncodeBytes(8000, 16, nil)
	if err != nil {
		t.Fatalf("EncodeBytes() error = %v", err)
	}
	if len(data) != 44 {
		t.Errorf("len = %d, want 44", len(data))
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	in := make([]float32, 20000)
	for i := range in {
		in[i] = float32(math.Sin(2 * math.Pi * 440 * float64(i) / 44100))
	}

	for _, bits := range []int{16, 24, 32} {
		data, err := EncodeBytes(44100, bits, in)
		if err != nil {
			t.Fatalf("EncodeBytes(%d) error = %v", bits, err)
		}

		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Decode(%d) error = %v", bits, err)
		}
		if src.SampleRate() != 44100 || src.Channels() != 1 {
			t.Errorf("%d-bit: metadata = (%d, %d), want (44100, 1)", bits, src.SampleRate(), src.Channels())
		}

		out := readAll(t, src)
		if len(out) != len(in) {
			t.Fatalf("%d-bit: len = %d, want %d", bits, len(out), len(in))
		}

		tol := 2/math.Pow(2, float64(bits-1)) + 1e-7
		for i := range in {
			if d := math.Abs(float64(out[i] - in[i])); d > tol {
				t.Fatalf("%d-bit: sample %d = %v, want %v (±%g)", bits, i, out[i], in[i], tol)
			}
		}
	}
}

func TestEncode_ClipsAndSilencesNaN(t *testing.T) {
	t.Parallel()

	data, err := EncodeBytes(8000, 16, []float32{2, -3, float32(math.NaN())})
	if err != nil {
		t.Fatalf("EncodeBytes() error = %v", err)
	}

	pcm := data[44:]
	got := []int16{
		int16(binary.LittleEndian.Uint16(pcm[0:2])),
		int16(binary.LittleEndian.Uint16(pcm[2:4])),
		int16(binary.LittleEndian.Uint16(pcm[4:6])),
	}
	want := []int16{32767, -32767, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEncode_LargerThanChunk(t *testing.T) {
	t.Parallel()

	n := chunkSize*2 + 17
	data, err := EncodeBytes(8000, 24, make([]float32, n))
	if err != nil {
		t.Fatalf("EncodeBytes() error = %v", err)
	}
	if len(data) != 44+n*3 {
		t.Errorf("len = %d, want %d", len(data), 44+n*3)
	}
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rate int
		bits int
		want error
	}{
		{"8-bit", 8000, 8, ErrUnsupportedBitDepth},
		{"20-bit", 8000, 20, ErrUnsupportedBitDepth},
		{"zero rate", 0, 16, ErrInvalidSampleRate},
		{"negative rate", -44100, 16, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := memfile.NewWriter(0)
			err := Encode(w, tt.rate, tt.bits, []float32{0})
			if !errors.Is(err, tt.want) {
				t.Errorf("Encode() error = %v, want %v", err, tt.want)
			}
			if w.Len() != 0 {
				t.Errorf("Encode() wrote %d bytes on error", w.Len())
			}
		})
	}
}

func BenchmarkEncode_16bit(b *testing.B) {
	samples := make([]float32, 44100)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.01))
	}

	b.ReportAllocs()

	for b.Loop() {
		if _, err := EncodeBytes(44100, 16, samples); err != nil {
			b.Fatal(err)
		}
	}
}
