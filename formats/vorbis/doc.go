// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. The decoder returns an audio.Source that provides interleaved
// float32 samples normalized to the range [-1.0, 1.0].
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Channel count and sample rate depend on the file. For stereo files
// samples are interleaved [L0, R0, L1, R1, ...]. Encoding is not
// supported.
package vorbis
