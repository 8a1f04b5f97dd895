// SPDX-License-Identifier: EPL-2.0

package effects

// Scale multiplies x in place by gain. Nothing is clipped.
func Scale(x []float32, gain float64) {
	if gain == 1 {
		return
	}

	g := float32(gain)
	for i := range x {
		x[i] *= g
	}
}
