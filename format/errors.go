package format

import "errors"

var (
	// ErrTruncatedInput means the bytes ran out before a value was complete.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrOutOfBounds means a read would cross the end of the page.
	ErrOutOfBounds = errors.New("out of bounds")
)
