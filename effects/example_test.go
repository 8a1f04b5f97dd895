// SPDX-License-Identifier: EPL-2.0

package effects_test

import (
	"fmt"

	"github.com/ik5/audxform/effects"
)

func ExampleTransform() {
	cfg := effects.DefaultConfig()
	cfg.Reverse = true
	cfg.Reflect = true
	cfg.Scale = 0.5

	out := effects.Transform([]float32{0.25, -0.5, 1}, 8000, cfg)
	fmt.Println(out)
	// Output: [-0.5 0.25 -0.125]
}

func ExampleParsePitch() {
	p, err := effects.ParsePitch("Chipmunk Voice")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(p, p.Semitones())
	// Output: chipmunk 10
}

func ExampleConfig_Validate() {
	cfg := effects.DefaultConfig()
	cfg.FilterSize = 0

	fmt.Println(cfg.Validate())
	// Output: invalid filter_size 0: must be within [1, 100]
}

func ExampleSmooth() {
	fmt.Println(effects.Smooth([]float32{1, 2, 3, 4}, 2))
	// Output: [0.5 1.5 2.5 3.5]
}
