// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoMixer adapts a Source to two interleaved channels. Stereo input
// passes through untouched; mono input is duplicated into left and right.
// Any other channel count is rejected at construction: guessing a downmix
// or upmix for surround material would silently change the program.
type StereoMixer struct {
	src Source
	tmp []float32
}

func NewStereoMixer(src Source) (*StereoMixer, error) {
	switch src.Channels() {
	case 1, 2:
	default:
		return nil, fmt.Errorf("%w: %d channels", ErrChannelCount, src.Channels())
	}

	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}, nil
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }

func (m *StereoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}
	if m.src.Channels() == 2 {
		// Pass-through: already interleaved stereo
		return m.src.ReadSamples(dst)
	}

	// Mono: read half as many samples, then write each one twice
	frames := len(dst) / 2

	if cap(m.tmp) < frames {
		m.tmp = make([]float32, frames)
	}
	m.tmp = m.tmp[:frames]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	for i := 0; i < n; i++ {
		dst[2*i] = m.tmp[i]
		dst[2*i+1] = m.tmp[i]
	}

	return n * 2, err
}
