package flac

import "errors"

var (
	ErrCorruptStream = errors.New("corrupt FLAC stream")
)
