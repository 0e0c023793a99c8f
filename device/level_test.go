// SPDX-License-Identifier: EPL-2.0

package device

import (
	"math"
	"testing"

	"github.com/ik5/voicememo/meter"
)

func TestAveragePower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []float32
		want    float64
	}{
		{"empty", nil, meter.MinDecibels},
		{"silence", []float32{0, 0, 0}, meter.MinDecibels},
		{"full scale square", []float32{1, -1, 1, -1}, 0},
		{"half scale", []float32{0.5, -0.5}, 20 * math.Log10(0.5)},
		{"below floor", []float32{1e-10}, meter.MinDecibels},
		{"nan", []float32{float32(math.NaN())}, meter.MinDecibels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := averagePower(tt.samples); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("averagePower() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElapsedSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		consumed, buffered int64
		want               float64
	}{
		{0, 0, 0},
		{176400, 0, 1},
		{176400, 88200, 0.5},
		{100, 400, 0},
	}

	for _, tt := range tests {
		if got := elapsedSeconds(tt.consumed, tt.buffered); got != tt.want {
			t.Errorf("elapsedSeconds(%d, %d) = %v, want %v", tt.consumed, tt.buffered, got, tt.want)
		}
	}
}
