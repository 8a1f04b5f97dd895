// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnsupportedFormat marks input that no registered decoder accepts,
	// or a container variant a decoder does not handle.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrCorruptData marks input that looks like a known container but
	// cannot be decoded.
	ErrCorruptData = errors.New("corrupt audio data")

	ErrInvalidTimeScale = errors.New("time scale step must be positive and finite")
)
