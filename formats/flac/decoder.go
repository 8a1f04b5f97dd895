// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/utils"
)

var flacMagic = []byte("fLaC")

// frameReader is the part of flac.Stream used by source; tests substitute it.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameReader
	sampleRate int
	channels   int
	bitDepth   int

	// Interleaved samples of the current frame not handed out yet.
	pending []float32
	done    bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			if err := s.nextFrame(); err != nil {
				return written, err
			}
			continue
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 && s.done && len(dst) > 0 {
		return 0, io.EOF
	}

	return written, nil
}

// nextFrame decodes one frame into pending. It sets done on end of stream.
func (s *source) nextFrame() error {
	f, err := s.stream.ParseNext()
	if errors.Is(err, io.EOF) {
		s.done = true
		return nil
	}
	if err != nil {
		s.done = true
		return fmt.Errorf("flac: %w: %w", audio.ErrCorruptData, err)
	}

	if len(f.Subframes) != s.channels {
		s.done = true
		return fmt.Errorf("%w: frame has %d channels, stream has %d", ErrInvalidFrame, len(f.Subframes), s.channels)
	}

	frames := len(f.Subframes[0].Samples)
	buf := s.pending[:0]
	if cap(buf) < frames*s.channels {
		buf = make([]float32, 0, frames*s.channels)
	}

	for i := range frames {
		for _, sub := range f.Subframes {
			var v int32
			if i < len(sub.Samples) {
				v = sub.Samples[i]
			}
			buf = append(buf, utils.PCMToFloat(int(v), s.bitDepth))
		}
	}
	s.pending = buf

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	magic := make([]byte, len(flacMagic))
	if _, err := io.ReadFull(r, magic); err != nil || !bytes.Equal(magic, flacMagic) {
		return nil, ErrNotFlacFile
	}

	stream, err := flac.New(io.MultiReader(bytes.NewReader(magic), r))
	if err != nil {
		return nil, fmt.Errorf("flac: %w: %w", audio.ErrCorruptData, err)
	}

	info := stream.Info
	if info == nil || info.SampleRate == 0 || info.NChannels == 0 {
		_ = stream.Close()
		return nil, ErrInvalidHeader
	}
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		_ = stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
