// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// The decoder returns an audio.Source that provides interleaved float32
// samples normalized to the range [-1.0, 1.0].
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// go-mp3 always yields stereo output, regardless of how the file was
// encoded; the sample rate depends on the file (typically 44.1kHz or
// 48kHz). Encoding is not supported.
package mp3
