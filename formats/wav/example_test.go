// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/formats/wav"
)

func ExampleEncodeBytes() {
	data, err := wav.EncodeBytes(16000, 16, []float32{0, 0.25, 0.5, 0.25, 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	samples, _ := audio.ReadAll(src)
	fmt.Printf("%d bytes, %d Hz, %d samples\n", len(data), src.SampleRate(), len(samples))
	// Output: 54 bytes, 16000 Hz, 5 samples
}

func ExampleDecoder_Decode_error() {
	_, err := wav.Decoder{}.Decode(bytes.NewReader([]byte("not an audio file")))

	fmt.Println(errors.Is(err, wav.ErrNotWavFile))
	fmt.Println(errors.Is(err, audio.ErrUnsupportedFormat))
	// Output:
	// true
	// true
}
