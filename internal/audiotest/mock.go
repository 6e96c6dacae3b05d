// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int // Total frames to generate
	generated   int // Frames generated so far
	waveform    func(frame int, channel int) float32
}

// NewMockSource creates a new mock audio source.
// totalFrames is the total number of frames (samples per channel) to generate.
// waveform is a function that generates sample values given frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		generated:   0,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return value
	})
}

// NewDataSource creates a mock source that plays back fixed interleaved data.
func NewDataSource(sampleRate, channels int, data []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(data)/channels, func(frame int, channel int) float32 {
		return data[frame*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the generated frame counter to allow re-reading.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	framesWanted := len(dst) / m.channels
	framesLeft := m.totalFrames - m.generated

	frames := framesWanted
	if frames > framesLeft {
		frames = framesLeft
	}

	for f := 0; f < frames; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}

	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
