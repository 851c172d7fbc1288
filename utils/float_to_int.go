// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized float32 sample to 16-bit PCM,
// clamping the input to [-1, 1].
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Scale by 32767 so +1.0 does not overflow int16
	return int16(x * 32767.0)
}
