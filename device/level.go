// SPDX-License-Identifier: EPL-2.0

package device

import (
	"math"

	"github.com/ik5/voicememo/meter"
	"github.com/ik5/voicememo/pcm"
)

const bytesPerSecond = pcm.SampleRate * pcm.BytesPerSample

// averagePower is the mean power of samples in dBFS, floored at
// meter.MinDecibels.
func averagePower(samples []float32) float64 {
	if len(samples) == 0 {
		return meter.MinDecibels
	}

	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}

	ms := sum / float64(len(samples))
	if ms == 0 || math.IsNaN(ms) {
		return meter.MinDecibels
	}

	return max(10*math.Log10(ms), meter.MinDecibels)
}

// elapsedSeconds converts bytes handed to the output minus bytes still
// buffered there into memo playback time.
func elapsedSeconds(consumed, buffered int64) float64 {
	played := consumed - buffered
	if played <= 0 {
		return 0
	}

	return float64(played) / bytesPerSecond
}
