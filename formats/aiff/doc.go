// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// The decoder returns an audio.Source that provides interleaved float32
// samples normalized to the range [-1.0, 1.0].
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// Only 16-bit PCM files are supported; other bit depths return
// ErrOnlyPCM16bitSupported. AIFF-C compressed variants are rejected.
// Encoding is not supported.
package aiff
