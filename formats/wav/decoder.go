// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/internal/memfile"
	"github.com/ik5/audxform/utils"
)

const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// pcmReader is the part of wav.Decoder used by source; tests substitute it.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	float      bool
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
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil {
		return 0, fmt.Errorf("wav: %w: %w", audio.ErrCorruptData, err)
	}
	if n == 0 {
		s.done = true
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		if s.float {
			// 32-bit float samples arrive as their raw bit pattern.
			dst[i] = math.Float32frombits(uint32(int32(v)))
			continue
		}
		if s.bitDepth == 8 {
			// 8-bit WAV is unsigned.
			v -= 128
		}
		dst[i] = utils.PCMToFloat(v, s.bitDepth)
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := memfile.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("wav: %w: %w", audio.ErrCorruptData, err)
	}

	if err := checkMagic(rs); err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
		}
		return nil, ErrInvalidHeader
	}

	if dec.SampleRate == 0 {
		return nil, ErrInvalidHeader
	}

	switch dec.WavAudioFormat {
	case formatPCM, formatExtensible:
		switch dec.BitDepth {
		case 8, 16, 24, 32:
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
		}
	case formatIEEEFloat:
		switch dec.BitDepth {
		case 32:
		case 64:
			return newFloat64Source(dec)
		default:
			return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, dec.BitDepth)
		}
	default:
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		float:      dec.WavAudioFormat == formatIEEEFloat,
	}, nil
}

// float64Source reads 64-bit IEEE float samples straight from the data
// chunk, which go-audio/wav's integer buffers cannot hold.
type float64Source struct {
	r          io.Reader
	sampleRate int
	channels   int
	raw        []byte
	done       bool
}

func newFloat64Source(dec *wav.Decoder) (audio.Source, error) {
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("wav: %w: %w", audio.ErrCorruptData, err)
	}
	if dec.PCMChunk == nil {
		return nil, fmt.Errorf("wav: %w: %w", audio.ErrCorruptData, wav.ErrPCMChunkNotFound)
	}

	return &float64Source{
		r:          io.LimitReader(dec.PCMChunk, int64(dec.PCMChunk.Size)),
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}

func (s *float64Source) SampleRate() int { return s.sampleRate }
func (s *float64Source) Channels() int   { return s.channels }
func (s *float64Source) Close() error    { return nil }
func (s *float64Source) BufSize() int    { return 4096 }

func (s *float64Source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.raw) < len(dst)*8 {
		s.raw = make([]byte, len(dst)*8)
	}
	raw := s.raw[:len(dst)*8]

	m, err := io.ReadFull(s.r, raw)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// A trailing partial sample is dropped.
		s.done = true
	case err != nil:
		return 0, fmt.Errorf("wav: %w: %w", audio.ErrCorruptData, err)
	}

	n := m / 8
	for i := range n {
		dst[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:])))
	}

	if n == 0 && s.done {
		return 0, io.EOF
	}
	return n, nil
}

// checkMagic verifies the RIFF/WAVE header and rewinds rs.
func checkMagic(rs io.ReadSeeker) error {
	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return ErrNotWavFile
	}
	if !bytes.Equal(header[:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return ErrNotWavFile
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("wav: %w: %w", audio.ErrCorruptData, err)
	}

	return nil
}
