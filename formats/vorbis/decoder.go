// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audxform/audio"
)

const defaultBufSize = 4096

var oggMagic = []byte("OggS")

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return defaultBufSize }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	// Whole frames only; Read returns interleaved values, not frames.
	dst = dst[:len(dst)/s.channels*s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	if errors.Is(err, io.EOF) {
		s.done = true
		return n, io.EOF
	}
	if err != nil {
		s.done = true
		return n, fmt.Errorf("vorbis: %w: %w", audio.ErrCorruptData, err)
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	magic := make([]byte, len(oggMagic))
	if _, err := io.ReadFull(r, magic); err != nil || !bytes.Equal(magic, oggMagic) {
		return nil, ErrNotOggFile
	}

	dec, err := oggvorbis.NewReader(io.MultiReader(bytes.NewReader(magic), r))
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w: %w", audio.ErrCorruptData, err)
	}

	if dec.Channels() < 1 || dec.SampleRate() <= 0 {
		return nil, ErrInvalidHeader
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
