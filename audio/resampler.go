// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audxform/utils"
)

// Resampler streams from src with cubic interpolation, consuming step
// source frames per output frame. Works on interleaved samples; preserves
// channel count. Rate conversion runs a one-pole low-pass on the input
// when step > 1; time scaling does not.
type Resampler struct {
	src      Source
	rate     int     // rate reported to consumers
	step     float64 // source frames per output frame
	channels int

	// Ring of 4 frames for cubic interpolation:
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4][]float32
	hasFrame [4]bool

	// Fractional position between frames[1] and frames[2].
	pos float64

	srcBuf []float32
	primed bool
	eof    bool

	filterState []float32
	useFilter   bool
	filterAlpha float32
}

// NewResampler converts src to dstRate.
func NewResampler(src Source, dstRate int) *Resampler {
	step := float64(src.SampleRate()) / float64(dstRate)
	return newResampler(src, step, dstRate, step > 1)
}

// NewTimeScaler reads src at step source frames per output frame while
// still reporting the source sample rate. A step of 2 halves the length
// (and doubles the pitch when played at the same rate). The input is
// expected to be band-limited already, so no low-pass is applied.
func NewTimeScaler(src Source, step float64) (*Resampler, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, ErrInvalidTimeScale
	}

	return newResampler(src, step, src.SampleRate(), false), nil
}

func newResampler(src Source, step float64, rate int, useFilter bool) *Resampler {
	channels := max(src.Channels(), 1)

	var filterAlpha float32
	if useFilter {
		filterAlpha = 0.5
	}

	r := &Resampler{
		src:         src,
		rate:        rate,
		step:        step,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		useFilter:   useFilter,
		filterAlpha: filterAlpha,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }
func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame reads one frame from src into dst.
// It reports false once src has nothing more to give.
func (r *Resampler) readFrame(dst []float32, first bool) (bool, error) {
	if r.eof {
		return false, nil
	}

	var (
		n   int
		err error
	)
	for empty := 0; ; empty++ {
		n, err = r.src.ReadSamples(r.srcBuf)
		if n > 0 || err != nil {
			break
		}
		if empty >= maxEmptyReads {
			return false, io.ErrNoProgress
		}
	}

	if errors.Is(err, io.EOF) {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	if n == 0 {
		return false, nil
	}

	copy(dst, r.srcBuf[:n])

	if r.useFilter {
		if first {
			// Seed with the first frame to avoid a warm-up ramp.
			copy(r.filterState, dst)
		}
		for c := range r.channels {
			dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = dst[c]
		}
	}

	return true, nil
}

// prime fills the ring. The first frame is duplicated into frames[0].
func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.readFrame(r.frames[1], true)
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.frames[0], r.frames[1])
	r.hasFrame[0], r.hasFrame[1] = true, true

	for i := 2; i < 4; i++ {
		ok, err := r.readFrame(r.frames[i], false)
		if err != nil {
			return err
		}
		r.hasFrame[i] = ok
	}

	return nil
}

// advance shifts the ring by one frame.
func (r *Resampler) advance() error {
	first := r.frames[0]
	copy(r.frames[:], r.frames[1:])
	r.frames[3] = first
	copy(r.hasFrame[:], r.hasFrame[1:])

	ok, err := r.readFrame(r.frames[3], false)
	if err != nil {
		return err
	}
	r.hasFrame[3] = ok

	if !r.hasFrame[1] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces interleaved samples into dst.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.hasFrame[1] {
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := range r.channels {
			y0 := r.frames[0][c]
			y1 := r.frames[1][c]
			y2 := y1
			if r.hasFrame[2] {
				y2 = r.frames[2][c]
			}
			y3 := y2
			if r.hasFrame[3] {
				y3 = r.frames[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
