// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"

	"github.com/ik5/audxform/audio"
)

var (
	// ErrNotOggFile is returned when the stream does not start with an Ogg page.
	ErrNotOggFile = fmt.Errorf("not an Ogg file: %w", audio.ErrUnsupportedFormat)

	ErrInvalidHeader = fmt.Errorf("invalid Vorbis identification header: %w", audio.ErrCorruptData)
)
