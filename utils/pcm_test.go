// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloatToPCM(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())

	tests := []struct {
		name     string
		input    float32
		bitDepth int
		want     int
	}{
		{name: "zero 16", input: 0, bitDepth: 16, want: 0},
		{name: "full scale 16", input: 1, bitDepth: 16, want: math.MaxInt16},
		{name: "negative full scale 16", input: -1, bitDepth: 16, want: -math.MaxInt16},
		{name: "half 16", input: 0.5, bitDepth: 16, want: 16384},
		{name: "clip over 16", input: 1.5, bitDepth: 16, want: math.MaxInt16},
		{name: "clip under 16", input: -100, bitDepth: 16, want: -math.MaxInt16},
		{name: "nan 16", input: nan, bitDepth: 16, want: 0},
		{name: "full scale 24", input: 1, bitDepth: 24, want: 1<<23 - 1},
		{name: "negative full scale 24", input: -1, bitDepth: 24, want: -(1<<23 - 1)},
		{name: "full scale 32", input: 1, bitDepth: 32, want: math.MaxInt32},
		{name: "full scale 8", input: 1, bitDepth: 8, want: 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FloatToPCM(tt.input, tt.bitDepth)
			if got != tt.want {
				t.Errorf("FloatToPCM(%v, %d) = %d, want %d", tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestPCMToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    int
		bitDepth int
		want     float32
	}{
		{name: "zero", input: 0, bitDepth: 16, want: 0},
		{name: "min 16", input: math.MinInt16, bitDepth: 16, want: -1},
		{name: "half 16", input: 16384, bitDepth: 16, want: 0.5},
		{name: "min 24", input: -(1 << 23), bitDepth: 24, want: -1},
		{name: "quarter 24", input: 1 << 21, bitDepth: 24, want: 0.25},
		{name: "min 32", input: math.MinInt32, bitDepth: 32, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PCMToFloat(tt.input, tt.bitDepth); got != tt.want {
				t.Errorf("PCMToFloat(%d, %d) = %v, want %v", tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}

// TestPCMRoundTrip checks that quantizing and scaling back stays within one step.
func TestPCMRoundTrip(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{16, 24, 32} {
		step := 1.0 / float64(int64(1)<<(depth-1))
		for f := -1.0; f <= 1.0; f += 0.01 {
			back := PCMToFloat(FloatToPCM(float32(f), depth), depth)
			if diff := math.Abs(float64(back) - f); diff > 2*step+1e-7 {
				t.Errorf("depth %d: %v -> %v (diff %v)", depth, f, back, diff)
			}
		}
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, previous was %v", f, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkFloatToPCM(b *testing.B) {
	floatSamples := make([]float32, 8000)
	pcm := make([]int, 8000)
	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for range b.N {
		for j := range floatSamples {
			pcm[j] = FloatToPCM(floatSamples[j], 16)
		}
	}
}

func TestFloatToPCM_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = FloatToPCM(0.5, 24)
	})
	if allocs > 0 {
		t.Errorf("FloatToPCM allocated %v times, want 0", allocs)
	}
}
