package block

import "errors"

var (
	// ErrIncomplete indicates that the buffer does not contain a complete line yet.
	ErrIncomplete = errors.New("incomplete line")

	// ErrCursorOutOfRange indicates that a cursor outside of the buffer was supplied.
	ErrCursorOutOfRange = errors.New("cursor out of buffer range")

	// ErrBufferContract indicates that the buffer passed to a Framer no longer holds the bytes
	// the framer has already scanned, e.g. it was truncated or replaced between calls.
	ErrBufferContract = errors.New("buffer is shorter than the scanned framing state")
)
