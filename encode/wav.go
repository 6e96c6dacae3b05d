// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"bytes"
	"fmt"

	"github.com/ik5/audmix/formats/wav"
)

// WAV16 encodes PCM as an uncompressed 16-bit WAV container. The quality
// argument is accepted for interface compatibility and ignored, since the
// container is lossless.
type WAV16 struct{}

// Encode renders the samples as a complete WAV file.
func (WAV16) Encode(pcm []int16, channels, sampleRate int, _ float64) ([]byte, error) {
	var buf bytes.Buffer

	if err := wav.WritePCM16(&buf, sampleRate, channels, pcm); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return buf.Bytes(), nil
}
