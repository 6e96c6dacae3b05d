// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrChannelCount   = errors.New("unsupported channel count")
	ErrResample       = errors.New("resample failed")
)
