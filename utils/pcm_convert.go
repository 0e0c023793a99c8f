// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

func clampUnit(x float32) float32 {
	switch {
	case x != x:
		return 0
	case x > 1:
		return 1
	case x < -1:
		return -1
	}

	return x
}

// Float32ToInt16 scales x to signed 16 bit, clamping to [-1,1]. NaN becomes 0.
func Float32ToInt16(x float32) int16 {
	x = clampUnit(x)
	if x < 0 {
		return int16(x * 32768)
	}

	return int16(x * 32767)
}

// Float32ToInt32 scales x to signed 32 bit, clamping to [-1,1]. NaN becomes 0.
func Float32ToInt32(x float32) int32 {
	v := float64(clampUnit(x))
	if v < 0 {
		return int32(v * 2147483648)
	}

	return int32(v * 2147483647)
}

// IntToFloat32 normalizes a signed sample of the given bit depth to [-1,1).
// Unknown depths are treated as 16 bit.
func IntToFloat32(v int, bitDepth int) float32 {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		bitDepth = 16
	}

	return float32(float64(v) / math.Exp2(float64(bitDepth-1)))
}
