package codec

import (
	"fmt"
	"time"

	"github.com/arloliu/go-videohub/logger"
)

const (
	// DefaultMaxBufferSize is the default cap on the bytes a Reader buffers for one unfinished block.
	DefaultMaxBufferSize = 1 << 20
	// DefaultReadChunkSize is the default size of a single read from the underlying io.Reader.
	DefaultReadChunkSize = 4096
	// MaxReadChunkSize is the largest accepted read chunk size.
	MaxReadChunkSize = 1 << 20
)

// Config represents the configuration of a Codec and of the stream adapters built on it.
type Config struct {
	// logger receives codec events: unknown headers at debug level, malformed lines at warn
	// level, buffer limit breaches at error level.
	// Defaults to logger.GetLogger().
	logger logger.Logger

	// metrics receives the codec counters. Defaults to a fresh Metrics per codec.
	metrics *Metrics

	// maxBufferSize is the maximum number of bytes a Reader holds without completing a block.
	// Zero means unlimited.
	// Defaults to 1 MiB.
	maxBufferSize int

	// readChunkSize is the size of the buffer passed to the underlying io.Reader.
	// Defaults to 4 KiB.
	readChunkSize int

	// logDiagnostics enables a warn level log entry per malformed body line.
	// Defaults to true.
	logDiagnostics bool

	// blockTimeout bounds the time a Reader waits for the rest of a block once its header has
	// arrived. It is only applied when the reader supports SetReadDeadline, e.g. net.Conn.
	// While waiting for a header the stream may stay idle indefinitely.
	// Zero disables the timeout, which is the default.
	blockTimeout time.Duration
}

// NewConfig creates a configuration with default values and applies opts to it.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		logger:         logger.GetLogger(),
		maxBufferSize:  DefaultMaxBufferSize,
		readChunkSize:  DefaultReadChunkSize,
		logDiagnostics: true,
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.metrics == nil {
		cfg.metrics = NewMetrics()
	}

	return cfg, nil
}

// Logger returns the configured logger.
func (cfg *Config) Logger() logger.Logger { return cfg.logger }

// Metrics returns the configured metrics.
func (cfg *Config) Metrics() *Metrics { return cfg.metrics }

// MaxBufferSize returns the configured buffer cap, zero if unlimited.
func (cfg *Config) MaxBufferSize() int { return cfg.maxBufferSize }

// ReadChunkSize returns the configured read chunk size.
func (cfg *Config) ReadChunkSize() int { return cfg.readChunkSize }

// BlockTimeout returns the configured block timeout, zero if disabled.
func (cfg *Config) BlockTimeout() time.Duration { return cfg.blockTimeout }

// Option represents a functional option for configuring a Codec, Reader or Writer.
type Option interface {
	apply(*Config) error
}

type optFunc struct {
	name      string
	applyFunc func(*Config) error
}

func (o *optFunc) apply(cfg *Config) error {
	if err := o.applyFunc(cfg); err != nil {
		return fmt.Errorf("%s: %w", o.name, err)
	}

	return nil
}

func newOptFunc(name string, f func(*Config) error) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *Config) error {
		if l == nil {
			return ErrNilLogger
		}
		cfg.logger = l

		return nil
	})
}

// WithMetrics sets the metrics instance, e.g. to share counters between the codecs of
// several connections.
func WithMetrics(m *Metrics) Option {
	return newOptFunc("WithMetrics", func(cfg *Config) error {
		if m == nil {
			return ErrNilMetrics
		}
		cfg.metrics = m

		return nil
	})
}

// WithMaxBufferSize sets the maximum number of bytes a Reader buffers without completing a
// block. Zero means unlimited.
func WithMaxBufferSize(size int) Option {
	return newOptFunc("WithMaxBufferSize", func(cfg *Config) error {
		if size < 0 {
			return fmt.Errorf("%w: buffer size %d is negative", ErrInvalidOption, size)
		}
		cfg.maxBufferSize = size

		return nil
	})
}

// WithReadChunkSize sets the size of a single read from the underlying io.Reader.
// It should be between 1 byte and 1 MiB.
func WithReadChunkSize(size int) Option {
	return newOptFunc("WithReadChunkSize", func(cfg *Config) error {
		if size < 1 || size > MaxReadChunkSize {
			return fmt.Errorf("%w: read chunk size %d out of range [1, %d]", ErrInvalidOption, size, MaxReadChunkSize)
		}
		cfg.readChunkSize = size

		return nil
	})
}

// WithLogDiagnostics enables or disables the warn level log entry per malformed body line.
// Diagnostics stay attached to the decoded messages either way.
func WithLogDiagnostics(enabled bool) Option {
	return newOptFunc("WithLogDiagnostics", func(cfg *Config) error {
		cfg.logDiagnostics = enabled
		return nil
	})
}

// WithBlockTimeout sets how long a Reader waits for the remainder of a block after its header
// arrived. Zero disables the timeout.
func WithBlockTimeout(d time.Duration) Option {
	return newOptFunc("WithBlockTimeout", func(cfg *Config) error {
		if d < 0 {
			return fmt.Errorf("%w: block timeout %s is negative", ErrInvalidOption, d)
		}
		cfg.blockTimeout = d

		return nil
	})
}
