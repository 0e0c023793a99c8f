// SPDX-License-Identifier: EPL-2.0

package pcm

import "math"

// Waveform returns normalized absolute amplitudes for display.
//
// When the buffer holds more frames than resolution, frames 0, step,
// 2*step... are scanned with step = FrameLength()/resolution and exactly
// resolution values are returned. Otherwise every frame is scanned and the
// result has FrameLength() values, which is fewer than resolution.
//
// The stride is rounded down, so frames past resolution*step are never
// scanned. That tail is almost half the buffer when FrameLength() is just
// under 2*resolution, and audio only in the tail shows as silence.
//
// Values are divided by the peak of the scanned frames, so the loudest
// scanned frame is 1. When every scanned frame is silent the result is an
// empty slice.
func (b *Buffer) Waveform(resolution int) ([]float64, error) {
	if resolution < 1 {
		return nil, ErrInvalidResolution
	}

	frames := len(b.samples)
	step, points := 1, frames
	if frames > resolution {
		step, points = frames/resolution, resolution
	}

	var peak float32
	for k := range points {
		if v := magnitude(b.samples[k*step]); v > peak {
			peak = v
		}
	}

	if peak == 0 {
		return []float64{}, nil
	}

	result := make([]float64, points)
	for k := range points {
		result[k] = float64(magnitude(b.samples[k*step])) / float64(peak)
	}

	return result, nil
}

// magnitude is |x| with NaN mapped to 0 and infinities to MaxFloat32, which
// keeps every normalized value inside [0,1].
func magnitude(x float32) float32 {
	v := math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case v > math.MaxFloat32:
		return math.MaxFloat32
	}

	return v
}
