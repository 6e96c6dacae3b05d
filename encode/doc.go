// SPDX-License-Identifier: EPL-2.0

// Package encode renders mixed PCM into container files.
//
// The Encoder interface takes interleaved 16-bit samples plus layout
// information and returns the complete file bytes. FloatsToPCM16 bridges
// the float mixing domain into the integer one.
package encode
