// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/audxform/audio"
)

var (
	// ErrNotAiffFile indicates the input has no FORM/AIFF or FORM/AIFC header.
	ErrNotAiffFile = fmt.Errorf("not an AIFF file: %w", audio.ErrUnsupportedFormat)

	// ErrUnsupportedBitDepth indicates a sample size other than 8, 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = fmt.Errorf("unsupported AIFF bit depth: %w", audio.ErrUnsupportedFormat)

	// ErrInvalidHeader indicates the FORM header is present but the COMM
	// chunk is missing or unusable.
	ErrInvalidHeader = fmt.Errorf("invalid AIFF header: %w", audio.ErrCorruptData)
)
