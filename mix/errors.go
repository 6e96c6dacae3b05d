// SPDX-License-Identifier: EPL-2.0

package mix

import "errors"

// Every error class below is fatal to the whole run. A silently dropped
// source would produce a musically wrong but non-obviously-wrong mix, so
// there is no degraded mode: nothing is written once any of these occur.
var (
	// ErrInvalidEvent marks an event whose timing, volume or pan field is
	// not numeric, or whose source name is empty.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrSourceUnavailable marks a referenced source that cannot be
	// opened, has no decodable audio, or uses an unsupported format.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrResample marks a source whose native rate could not be
	// converted to the project rate.
	ErrResample = errors.New("resample failed")

	// ErrEncode marks an exporter that could not produce output bytes.
	ErrEncode = errors.New("encode failed")
)
