// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToPCM scales x from [-1, 1] to a signed sample of bitDepth bits.
// Values outside the range are clipped and NaN maps to 0.
func FloatToPCM(x float32, bitDepth int) int {
	if x != x {
		return 0
	}

	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	full := float64(int64(1)<<(bitDepth-1)) - 1
	return int(math.Round(float64(x) * full))
}

// PCMToFloat scales a signed sample of bitDepth bits to [-1, 1).
func PCMToFloat(v int, bitDepth int) float32 {
	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}

func Float32ToInt16(x float32) int16 {
	return int16(FloatToPCM(x, 16))
}
