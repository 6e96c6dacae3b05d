// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to decode FLAC files.
// The decoder returns an audio.Source that provides interleaved float32
// samples normalized to the range [-1.0, 1.0].
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// FLAC stores each channel in its own subframe; the decoder interleaves
// them and normalizes against the stream's bit depth. Encoding is not
// supported.
package flac
