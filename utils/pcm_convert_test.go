// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	tests := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{1, math.MaxInt16},
		{-1, math.MinInt16},
		{0.5, 16383},
		{-0.5, -16384},
		{2, math.MaxInt16},
		{-7, math.MinInt16},
		{nan, 0},
	}

	for _, tt := range tests {
		if got := Float32ToInt16(tt.in); got != tt.want {
			t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFloat32ToInt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want int32
	}{
		{0, 0},
		{1, math.MaxInt32},
		{-1, math.MinInt32},
		{-0.5, -1 << 30},
		{3, math.MaxInt32},
	}

	for _, tt := range tests {
		if got := Float32ToInt32(tt.in); got != tt.want {
			t.Errorf("Float32ToInt32(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v     int
		depth int
		want  float32
	}{
		{-128, 8, -1},
		{64, 8, 0.5},
		{-32768, 16, -1},
		{16384, 16, 0.5},
		{-1 << 23, 24, -1},
		{-1 << 31, 32, -1},
		{1 << 30, 32, 0.5},
		{16384, 12, 0.5},
	}

	for _, tt := range tests {
		if got := IntToFloat32(tt.v, tt.depth); got != tt.want {
			t.Errorf("IntToFloat32(%d, %d) = %v, want %v", tt.v, tt.depth, got, tt.want)
		}
	}
}

func TestInt32RoundTrip(t *testing.T) {
	t.Parallel()

	for _, x := range []float32{-1, -0.25, 0, 0.125, 0.999} {
		got := IntToFloat32(int(Float32ToInt32(x)), 32)
		if math.Abs(float64(got-x)) > 1e-6 {
			t.Errorf("round trip %v -> %v", x, got)
		}
	}
}
