package codec

import "errors"

var (
	// ErrBufferLimitExceeded indicates that a stream buffered more bytes than the configured
	// maximum without completing a block.
	ErrBufferLimitExceeded = errors.New("buffer limit exceeded without a complete block")

	// ErrNilLogger indicates that a nil logger was passed to WithLogger.
	ErrNilLogger = errors.New("logger is nil")

	// ErrNilMetrics indicates that a nil metrics instance was passed to WithMetrics.
	ErrNilMetrics = errors.New("metrics is nil")

	// ErrInvalidOption indicates that an option value is out of range.
	ErrInvalidOption = errors.New("invalid option value")
)
