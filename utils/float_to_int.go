// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized float sample to full-scale signed
// 16-bit PCM. Input is clamped to [-1, 1] first; the scale factor is
// 32767 on both sides to keep conversion symmetric and overflow-free.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(float64(x) * 32767.0))
}
