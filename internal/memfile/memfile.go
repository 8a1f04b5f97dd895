// SPDX-License-Identifier: EPL-2.0

// Package memfile adapts plain readers and in-memory buffers for codecs
// that insist on io.ReadSeeker or io.WriteSeeker.
package memfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidWhence    = errors.New("invalid whence")
	ErrNegativePosition = errors.New("negative position")
)

// ReadSeeker returns r itself when it already seeks, otherwise it reads r
// to the end and serves the bytes from memory.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return bytes.NewReader(data), nil
}

// Writer is an io.WriteSeeker over a growable byte slice. Seeking past
// the end and writing leaves a zero-filled gap.
type Writer struct {
	buf    []byte
	offset int64
}

func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, max(capacity, 0))}
}

func (w *Writer) Write(p []byte) (int, error) {
	end := w.offset + int64(len(p))
	if end > int64(len(w.buf)) {
		if end > int64(cap(w.buf)) {
			grown := make([]byte, len(w.buf), max(end, 2*int64(cap(w.buf))))
			copy(grown, w.buf)
			w.buf = grown
		}
		clear(w.buf[len(w.buf):end])
		w.buf = w.buf[:end]
	}

	copy(w.buf[w.offset:], p)
	w.offset = end

	return len(p), nil
}

func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = w.offset + offset
	case io.SeekEnd:
		abs = int64(len(w.buf)) + offset
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}

	if abs < 0 {
		return 0, ErrNegativePosition
	}
	w.offset = abs

	return abs, nil
}

// Bytes returns everything written so far. The slice aliases the
// writer's storage until the next Write.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) Len() int { return len(w.buf) }
