// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/internal/memfile"
	"github.com/ik5/audxform/utils"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && !errors.Is(err, io.EOF) {
		s.done = true
		return 0, fmt.Errorf("aiff: %w: %w", audio.ErrCorruptData, err)
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.PCMToFloat(v, s.bitDepth)
	}

	// A short or empty read means the SSND chunk is exhausted.
	if n < len(dst) || err != nil {
		s.done = true
		return n, io.EOF
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, err := memfile.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("aiff: %w: %w", audio.ErrCorruptData, err)
	}

	if err := checkMagic(rs); err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrInvalidHeader
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels < 1 {
		return nil, ErrInvalidHeader
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
	}, nil
}

// checkMagic verifies the FORM/AIFF (or AIFC) header and rewinds rs.
func checkMagic(rs io.ReadSeeker) error {
	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return ErrNotAiffFile
	}
	if !bytes.Equal(header[:4], []byte("FORM")) {
		return ErrNotAiffFile
	}
	if form := string(header[8:12]); form != "AIFF" && form != "AIFC" {
		return ErrNotAiffFile
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("aiff: %w: %w", audio.ErrCorruptData, err)
	}

	return nil
}
