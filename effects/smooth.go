// SPDX-License-Identifier: EPL-2.0

package effects

// BoxKernel returns k taps of 1/k.
func BoxKernel(k int) []float64 {
	if k < 1 {
		return nil
	}

	h := make([]float64, k)
	for i := range h {
		h[i] = 1 / float64(k)
	}

	return h
}

// Smooth applies a k-tap moving average in "same" mode. k <= 1 returns a
// copy of x.
func Smooth(x []float32, k int) []float32 {
	if k <= 1 {
		out := make([]float32, len(x))
		copy(out, x)
		return out
	}

	return ConvolveSame(x, BoxKernel(k))
}

// ConvolveSame is the direct linear convolution of x and h trimmed to
// len(x) and centred the way scipy.signal.convolve(mode="same") does:
// out[i] = full[i + (len(h)-1)/2]. Samples outside x count as zero.
// Accumulation is in float64.
func ConvolveSame(x []float32, h []float64) []float32 {
	n, k := len(x), len(h)
	out := make([]float32, n)
	if k == 0 {
		return out
	}

	offset := (k - 1) / 2
	for i := range out {
		// full[m] = sum_j x[m-j] * h[j], m = i + offset
		m := i + offset
		jLo := max(0, m-(n-1))
		jHi := min(k-1, m)

		var acc float64
		for j := jLo; j <= jHi; j++ {
			acc += float64(x[m-j]) * h[j]
		}
		out[i] = float32(acc)
	}

	return out
}
