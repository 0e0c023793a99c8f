// SPDX-License-Identifier: EPL-2.0

package pcm_test

import (
	"fmt"

	"github.com/ik5/voicememo/pcm"
)

// Example_trim demonstrates trimming a memo and serializing the result.
func Example_trim() {
	samples := make([]float32, 44100)
	for i := range samples {
		samples[i] = 0.5
	}

	full := pcm.New(samples)
	trimmed, err := full.Trim(0.25, 0.75)
	if err != nil {
		fmt.Printf("Trim error: %v\n", err)
		return
	}

	fmt.Printf("Frames: %d\n", trimmed.FrameLength())
	fmt.Printf("Duration: %.2fs\n", trimmed.Duration())
	fmt.Printf("Bytes: %d\n", len(trimmed.Encode()))
	// Output:
	// Frames: 22050
	// Duration: 0.50s
	// Bytes: 88200
}

// Example_waveform demonstrates the short-buffer and silence behaviors.
func Example_waveform() {
	short, _ := pcm.New([]float32{0.2, -0.4, 0.1}).Waveform(200)
	silent, _ := pcm.New(make([]float32, 1000)).Waveform(200)

	fmt.Println(short)
	fmt.Println(len(silent))
	// Output:
	// [0.5 1 0.25]
	// 0
}
