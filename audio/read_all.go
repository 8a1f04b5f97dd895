// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// maxEmptyReads bounds how many (0, nil) reads in a row are tolerated
// before a source is considered stuck.
const maxEmptyReads = 100

// ReadAll drains src and returns every interleaved sample it produced.
// io.EOF ends the stream and is not reported as an error.
func ReadAll(src Source) ([]float32, error) {
	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	bufSize = min(bufSize, 1<<16)
	if ch := src.Channels(); ch > 1 {
		bufSize -= bufSize % ch
		if bufSize == 0 {
			bufSize = ch
		}
	}

	out := make([]float32, 0, bufSize)
	buf := make([]float32, bufSize)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
			empty = 0
		}

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return out, io.ErrNoProgress
			}
		}
	}
}

// Normalize reduces src to its first channel, reads it to the end and
// closes it. It returns the mono samples and the source sample rate.
func Normalize(src Source) ([]float32, int, error) {
	mono := NewFirstChannel(src)
	rate := mono.SampleRate()

	samples, err := ReadAll(mono)
	closeErr := mono.Close()
	if err != nil {
		return nil, rate, err
	}
	if closeErr != nil {
		return nil, rate, closeErr
	}

	return samples, rate, nil
}
