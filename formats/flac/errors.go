// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"

	"github.com/ik5/audxform/audio"
)

var (
	// ErrNotFlacFile is returned when the stream lacks the "fLaC" signature.
	ErrNotFlacFile = fmt.Errorf("not a FLAC file: %w", audio.ErrUnsupportedFormat)

	ErrUnsupportedBitDepth = fmt.Errorf("unsupported FLAC bit depth: %w", audio.ErrUnsupportedFormat)

	// ErrInvalidHeader is returned for a STREAMINFO block with a zero
	// sample rate or channel count.
	ErrInvalidHeader = fmt.Errorf("invalid FLAC stream info: %w", audio.ErrCorruptData)

	// ErrInvalidFrame is returned when a frame disagrees with STREAMINFO.
	ErrInvalidFrame = fmt.Errorf("invalid FLAC frame: %w", audio.ErrCorruptData)
)
