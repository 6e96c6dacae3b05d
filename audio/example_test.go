// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/internal/audiotest"
)

// Example_stereoMixer demonstrates widening a mono stream to stereo.
func Example_stereoMixer() {
	// Create a mono test source
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0) // 1 second, 440Hz tone

	// Widen to stereo
	stereo, err := audio.NewStereoMixer(source)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Input channels: %d\n", source.Channels())
	fmt.Printf("Output channels: %d\n", stereo.Channels())
	fmt.Printf("Sample rate: %d Hz\n", stereo.SampleRate())

	// Read some samples (must be an even count for stereo)
	buf := make([]float32, 100)
	n, _ := stereo.ReadSamples(buf)

	fmt.Printf("Read %d stereo samples\n", n)
	// Output:
	// Input channels: 1
	// Output channels: 2
	// Sample rate: 44100 Hz
	// Read 100 stereo samples
}

// Example_resampler demonstrates how to use the Resampler to change sample rates.
func Example_resampler() {
	// Create a stereo test source at 22.05kHz
	source := audiotest.NewSineSource(22050, 2, 22050, 440.0)

	// Create a resampler to convert to 44.1kHz
	resampler := audio.NewResampler(source, 44100)

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())

	// Read the whole stream
	buf := make([]float32, 4096)

	for {
		_, err := resampler.ReadSamples(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Println("Stream resampled")
	// Output:
	// Output sample rate: 44100 Hz
	// Channels: 2
	// Stream resampled
}

// Example_canonicalize shows the full conversion to project layout.
func Example_canonicalize() {
	// A mono source already at the project rate
	source := audiotest.NewConstantSource(44100, 1, 1000, 0.5)

	samples, err := audio.Canonicalize(source, 44100)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// 1000 mono frames become 1000 stereo frames
	fmt.Printf("Canonical samples: %d\n", len(samples))
	fmt.Printf("First frame: %.1f %.1f\n", samples[0], samples[1])
	// Output:
	// Canonical samples: 2000
	// First frame: 0.5 0.5
}

// mockDecoder is a simple decoder for testing the registry.
type mockDecoder struct{}

func (m mockDecoder) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(44100, 2, 1000, 440.0), nil
}

// Example_registry demonstrates the format registry.
func Example_registry() {
	registry := audio.NewRegistry()

	registry.Register("mock", mockDecoder{})

	decoder, ok := registry.Get("mock")
	if !ok {
		fmt.Println("Decoder not found")
		return
	}

	fmt.Printf("Retrieved decoder: %T\n", decoder)

	_, ok = registry.Get("unknown")
	if !ok {
		fmt.Println("Unknown format not found in registry")
	}
	// Output:
	// Retrieved decoder: audio_test.mockDecoder
	// Unknown format not found in registry
}

// Example_errorHandling shows proper error handling in audio processing.
func Example_errorHandling() {
	source := audiotest.NewSineSource(44100, 2, 1000, 440.0) // Short audio

	buf := make([]float32, 4096)
	totalSamples := 0

	for {
		n, err := source.ReadSamples(buf)

		// Always process available samples first
		if n > 0 {
			totalSamples += n
		}

		if err == io.EOF {
			fmt.Println("Reached end of audio stream")
			break
		}
		if err != nil {
			fmt.Printf("Error reading samples: %v\n", err)
			break
		}
	}

	fmt.Printf("Successfully processed %d samples\n", totalSamples)
	// Output:
	// Reached end of audio stream
	// Successfully processed 2000 samples
}
