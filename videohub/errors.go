package videohub

import "errors"

var (
	// ErrNilMessage indicates that a nil message was passed to the encoder.
	ErrNilMessage = errors.New("message is nil")

	// ErrEmptyHeader indicates that a message has no header to encode.
	ErrEmptyHeader = errors.New("message header is empty")

	// ErrLineBreak indicates that a header, field or value contains a CR or LF byte,
	// which would corrupt the block framing.
	ErrLineBreak = errors.New("line contains a line break")

	// ErrBlankLine indicates that an encoded body line would be blank and terminate the block early.
	ErrBlankLine = errors.New("body line is blank")

	// ErrKindMismatch indicates that a kind was used with a message type of a different shape,
	// e.g. KindVideoOutputRouting passed to NewLabels.
	ErrKindMismatch = errors.New("kind does not match message type")
)

// ErrMalformedLine is wrapped by Diagnostic. It marks a body line with no separable structure.
var ErrMalformedLine = errors.New("malformed line")
