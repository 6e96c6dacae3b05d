// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding and encoding.
//
// Decoding wraps github.com/go-audio/wav, so files with extra RIFF
// chunks ahead of the PCM data are handled, not just the canonical
// 44-byte layout. Only PCM 16-bit files are supported.
//
// WritePCM16 renders interleaved 16-bit PCM back out as a WAV stream
// with an arbitrary channel count.
package wav
