// SPDX-License-Identifier: EPL-2.0

package audxform

import (
	"bytes"
	"fmt"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/formats/aiff"
	"github.com/ik5/audxform/formats/flac"
	"github.com/ik5/audxform/formats/mp3"
	"github.com/ik5/audxform/formats/vorbis"
	"github.com/ik5/audxform/formats/wav"
)

// Format keys used by NewDefaultRegistry and DetectFormat.
const (
	FormatWAV  = "wav"
	FormatAIFF = "aiff"
	FormatMP3  = "mp3"
	FormatOgg  = "ogg"
	FormatFLAC = "flac"
)

var defaultRegistry = NewDefaultRegistry()

// NewDefaultRegistry returns a registry with every bundled decoder.
func NewDefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(FormatWAV, wav.Decoder{})
	reg.Register(FormatAIFF, aiff.Decoder{})
	reg.Register(FormatMP3, mp3.Decoder{})
	reg.Register(FormatOgg, vorbis.Decoder{})
	reg.Register(FormatFLAC, flac.Decoder{})

	return reg
}

// DetectFormat returns the format key matching the leading bytes of data.
// MP3 is recognised by an ID3v2 tag or an MPEG frame sync with a valid
// layer. Layer bits 00 mark AAC ADTS, which is not MP3.
func DetectFormat(data []byte) (string, error) {
	switch {
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return FormatWAV, nil
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("FORM")) &&
		(bytes.Equal(data[8:12], []byte("AIFF")) || bytes.Equal(data[8:12], []byte("AIFC"))):
		return FormatAIFF, nil
	case bytes.HasPrefix(data, []byte("OggS")):
		return FormatOgg, nil
	case bytes.HasPrefix(data, []byte("fLaC")):
		return FormatFLAC, nil
	case bytes.HasPrefix(data, []byte("ID3")):
		return FormatMP3, nil
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0 && data[1]&0x06 != 0:
		return FormatMP3, nil
	}

	return "", fmt.Errorf("%w: unrecognised header", audio.ErrUnsupportedFormat)
}

// Load decodes data with the default registry and returns its first
// channel and sample rate.
func Load(data []byte) ([]float32, int, error) {
	return LoadFrom(defaultRegistry, data)
}

// LoadFrom is Load with a caller supplied registry.
func LoadFrom(reg *audio.Registry, data []byte) ([]float32, int, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return nil, 0, err
	}

	dec, ok := reg.Get(format)
	if !ok {
		return nil, 0, fmt.Errorf("%w: no decoder for %s", audio.ErrUnsupportedFormat, format)
	}

	return LoadWith(dec, data)
}

// LoadWith decodes data with dec and returns its first channel and sample
// rate. Errors from dec are returned unchanged.
func LoadWith(dec audio.Decoder, data []byte) ([]float32, int, error) {
	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}

	return audio.Normalize(src)
}
