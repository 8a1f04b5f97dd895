// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"

	"github.com/ik5/audxform/audio"
)

var (
	// ErrNotWavFile is returned when the input has no RIFF/WAVE header.
	ErrNotWavFile = fmt.Errorf("not a WAV file: %w", audio.ErrUnsupportedFormat)

	// ErrUnsupportedEncoding is returned for compressed WAV payloads
	// such as A-law or ADPCM.
	ErrUnsupportedEncoding = fmt.Errorf("only PCM and IEEE float WAV are supported: %w", audio.ErrUnsupportedFormat)

	ErrUnsupportedBitDepth = fmt.Errorf("unsupported WAV bit depth: %w", audio.ErrUnsupportedFormat)

	// ErrInvalidHeader is returned when the RIFF/WAVE magic is present but
	// the fmt chunk cannot be used.
	ErrInvalidHeader = fmt.Errorf("invalid WAV header: %w", audio.ErrCorruptData)

	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
