// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/audxform/audio"
)

// ErrInvalidSampleRate is returned when the first frame header carries no
// usable sample rate.
var ErrInvalidSampleRate = fmt.Errorf("mp3: invalid sample rate: %w", audio.ErrCorruptData)
