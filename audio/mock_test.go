package audio

import (
	"io"
	"math"
)

// mockSource is a test helper that generates audio data for testing.
// It implements the Source interface and can generate various waveforms.
type mockSource struct {
	sampleRate   int
	channels     int
	totalFrames  int // Total frames to generate
	generated    int // Frames generated so far
	waveform     func(frame int, channel int) float32
	closed       bool

	failFrame int // fail once this many frames have been generated
	failErr   error
}

// newMockSource creates a new mock audio source.
// totalFrames is the total number of frames (samples per channel) to generate.
// waveform is a function that generates sample values given frame index and channel.
func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		generated:   0,
		waveform:    waveform,
	}
}

// newSilentSource creates a mock source that generates silence (all zeros).
func newSilentSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return 0.0
	})
}

// newSineSource creates a mock source that generates a sine wave.
func newSineSource(sampleRate, channels, totalFrames int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// newConstantSource creates a mock source with constant value.
func newConstantSource(sampleRate, channels, totalFrames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return value
	})
}

// newRampSource creates a mock source whose value increases with the frame index.
func newRampSource(sampleRate, channels, totalFrames int, slope float32) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return slope * float32(frame)
	})
}

// failAfter makes ReadSamples return err once frames frames have been read.
func (m *mockSource) failAfter(frames int, err error) {
	m.failFrame = frames
	m.failErr = err
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.failErr != nil && m.generated >= m.failFrame {
		return 0, m.failErr
	}
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
