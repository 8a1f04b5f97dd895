// SPDX-License-Identifier: EPL-2.0

package effects

import "slices"

// Reverse flips x in place so that x[i] becomes x[N-1-i].
func Reverse(x []float32) {
	slices.Reverse(x)
}
