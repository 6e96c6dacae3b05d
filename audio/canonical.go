// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Canonicalize drains src into a single interleaved stereo float32 buffer
// at projectRate. Mono input is duplicated into both channels, and input
// at any other rate is resampled. Amplitudes are collected as-is: summing
// stages downstream may push values outside [-1,1], so clamping is left
// to whoever finalizes the mix.
//
// The returned buffer always has even length (whole frames only).
func Canonicalize(src Source, projectRate int) ([]float32, error) {
	if projectRate <= 0 {
		return nil, fmt.Errorf("%w: invalid rate %d", ErrResample, projectRate)
	}

	stereo, err := NewStereoMixer(src)
	if err != nil {
		return nil, err
	}

	var pipe Source = stereo
	if stereo.SampleRate() != projectRate {
		pipe = NewResampler(stereo, projectRate)
	}

	var data []float32
	buf := make([]float32, 4096)

	for {
		n, err := pipe.ReadSamples(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	// Drop a trailing half frame if the stream ended mid-pair
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}

	return data, nil
}
