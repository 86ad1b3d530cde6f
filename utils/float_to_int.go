// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// DefaultBitDepth is used when a buffer does not carry its own depth.
const DefaultBitDepth = 16

// FullScale returns 2^(bits-1), the magnitude of the most negative signed
// value at the given depth.
func FullScale(bits int) float64 {
	return math.Ldexp(1, bits-1)
}

// FloatToInt converts a [-1,1] sample to a signed PCM integer of the given
// bit depth. Values outside [-1,1] are clamped.
func FloatToInt(x float64, bits int) int {
	if math.IsNaN(x) {
		return 0
	}

	scale := FullScale(bits)
	v := math.Round(x * scale)

	// Use scale-1 for positive max to avoid overflow
	if v > scale-1 {
		v = scale - 1
	} else if v < -scale {
		v = -scale
	}

	return int(v)
}

// IntToFloat converts a signed PCM integer of the given bit depth to [-1,1).
func IntToFloat(v int, bits int) float64 {
	return float64(v) / FullScale(bits)
}

// ValidBitDepth reports whether bits is one of the PCM depths the encoders write.
func ValidBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	}

	return false
}
