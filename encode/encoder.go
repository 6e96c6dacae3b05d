// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"github.com/ik5/audmix/utils"
)

// Encoder turns interleaved 16-bit PCM into a complete container file.
//
// quality is in [0, 1] and is advisory: lossless containers accept and
// ignore it, lossy ones map it onto their own quality scale.
type Encoder interface {
	Encode(pcm []int16, channels, sampleRate int, quality float64) ([]byte, error)
}

// FloatsToPCM16 converts a canonical float buffer to 16-bit PCM samples,
// clamping each value to [-1, 1] before scaling.
func FloatsToPCM16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = utils.Float32ToInt16(s)
	}

	return out
}
