// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

const (
	// frameDuration is the target analysis window length in seconds.
	frameDuration = 0.046
	minFrameSize  = 256
	maxFrameSize  = 8192
	overlap       = 4
)

// frameSize returns the smallest power of two covering frameDuration at
// sampleRate, clamped to [minFrameSize, maxFrameSize].
func frameSize(sampleRate int) int {
	target := float64(sampleRate) * frameDuration

	n := minFrameSize
	for n < maxFrameSize && float64(n) < target {
		n <<= 1
	}

	return n
}

// vocoder is a phase vocoder over centred, zero-padded STFT frames with
// a periodic Hann window and a hop of a quarter frame.
type vocoder struct {
	nfft   int
	hop    int
	window []float64
	fft    *fourier.FFT

	frame []float64 // scratch, nfft long
}

func newVocoder(sampleRate int) *vocoder {
	nfft := frameSize(sampleRate)

	// Periodic Hann: the symmetric window of nfft+1 points minus the last.
	w := make([]float64, nfft+1)
	for i := range w {
		w[i] = 1
	}
	w = window.Hann(w)[:nfft]

	return &vocoder{
		nfft:   nfft,
		hop:    nfft / overlap,
		window: w,
		fft:    fourier.NewFFT(nfft),
		frame:  make([]float64, nfft),
	}
}

// stft returns one spectrum of nfft/2+1 bins per hop. Frame t is centred
// on sample t*hop.
func (v *vocoder) stft(x []float32) [][]complex128 {
	half := v.nfft / 2
	frames := 1 + len(x)/v.hop

	spectra := make([][]complex128, frames)
	for t := range spectra {
		start := t*v.hop - half
		for j := range v.frame {
			idx := start + j
			if idx < 0 || idx >= len(x) {
				v.frame[j] = 0
				continue
			}
			v.frame[j] = float64(x[idx]) * v.window[j]
		}
		spectra[t] = v.fft.Coefficients(nil, v.frame)
	}

	return spectra
}

// stretch resamples spectra in time by rate (frames consumed per frame
// produced), keeping per-bin phase advance coherent.
func (v *vocoder) stretch(spectra [][]complex128, rate float64) [][]complex128 {
	if len(spectra) == 0 {
		return nil
	}

	bins := len(spectra[0])
	frames := int(math.Ceil(float64(len(spectra)) / rate))

	advance := make([]float64, bins)
	phase := make([]float64, bins)
	for k := range bins {
		advance[k] = 2 * math.Pi * float64(k) * float64(v.hop) / float64(v.nfft)
		phase[k] = cmplx.Phase(spectra[0][k])
	}

	column := func(i int, k int) complex128 {
		if i >= len(spectra) {
			return 0
		}
		return spectra[i][k]
	}

	out := make([][]complex128, 0, frames)
	for t := 0; float64(t)*rate < float64(len(spectra)); t++ {
		step := float64(t) * rate
		i := int(step)
		alpha := step - float64(i)

		col := make([]complex128, bins)
		for k := range bins {
			a, b := column(i, k), column(i+1, k)

			mag := (1-alpha)*cmplx.Abs(a) + alpha*cmplx.Abs(b)
			col[k] = cmplx.Rect(mag, phase[k])

			dphase := cmplx.Phase(b) - cmplx.Phase(a) - advance[k]
			dphase -= 2 * math.Pi * math.Round(dphase/(2*math.Pi))
			phase[k] += advance[k] + dphase
		}
		out = append(out, col)
	}

	return out
}

// istft overlap-adds spectra, normalises by the summed squared window and
// returns exactly length samples with the centring pad removed.
func (v *vocoder) istft(spectra [][]complex128, length int) []float32 {
	out := make([]float32, length)
	if len(spectra) == 0 {
		return out
	}

	size := v.nfft + v.hop*(len(spectra)-1)
	y := make([]float64, size)
	wsum := make([]float64, size)
	scale := 1 / float64(v.nfft)

	for t, col := range spectra {
		v.fft.Sequence(v.frame, col)
		base := t * v.hop
		for j, s := range v.frame {
			w := v.window[j]
			y[base+j] += s * scale * w
			wsum[base+j] += w * w
		}
	}

	half := v.nfft / 2
	for i := range out {
		idx := i + half
		if idx >= size {
			break
		}
		if wsum[idx] > math.SmallestNonzeroFloat64 {
			out[i] = float32(y[idx] / wsum[idx])
		}
	}

	return out
}

// timeStretch changes the duration of x by factor without changing its
// pitch. The result has round(len(x)*factor) samples.
func timeStretch(x []float32, sampleRate int, factor float64) []float32 {
	length := int(math.Round(float64(len(x)) * factor))
	if len(x) == 0 || length == 0 {
		return make([]float32, length)
	}

	v := newVocoder(sampleRate)
	spectra := v.stft(x)

	return v.istft(v.stretch(spectra, 1/factor), length)
}
