package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/arloliu/go-videohub/videohub"
)

// deadlineSetter is implemented by readers with read deadlines, e.g. net.Conn.
type deadlineSetter interface {
	SetReadDeadline(t time.Time) error
}

// Reader reads messages from an io.Reader owned by the caller.
//
// It reads in chunks of the configured size and hands them to a Codec:
//  1. While awaiting a block header, reads wait indefinitely so a connection may idle.
//  2. Once a header has arrived, the block timeout (if any) applies to every further read.
//  3. The bytes held for one unfinished block are capped by the max buffer size.
//
// Reader is NOT goroutine-safe. Only one ReadMessage call may be active at a time.
type Reader struct {
	r       io.Reader
	codec   *Codec
	buf     bytes.Buffer
	chunk   []byte
	readErr error // error returned by r, pending until the buffered bytes are drained
	err     error // sticky error returned by every further ReadMessage call
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Reader{
		r:     r,
		codec: newCodec(cfg),
		chunk: make([]byte, cfg.readChunkSize),
	}, nil
}

// Codec returns the codec used by the reader.
func (rd *Reader) Codec() *Codec {
	return rd.codec
}

// Buffered returns the number of bytes read from the underlying reader but not yet consumed.
func (rd *Reader) Buffered() int {
	return rd.buf.Len()
}

// ReadMessage returns the next message of the stream.
//
// It returns io.EOF when the stream ends between blocks and io.ErrUnexpectedEOF when it ends
// inside a block. ErrBufferLimitExceeded is returned when more than the configured maximum of
// bytes is buffered without completing a block. Errors are sticky: once ReadMessage failed,
// every further call returns the same error.
func (rd *Reader) ReadMessage() (videohub.Message, error) {
	if rd.err != nil {
		return nil, rd.err
	}

	for {
		msg, err := rd.codec.Decode(&rd.buf)
		if err != nil {
			return nil, rd.fail(fmt.Errorf("decode block: %w", err))
		}
		if msg != nil {
			return msg, nil
		}

		if rd.readErr != nil {
			return nil, rd.fail(rd.endOfStream())
		}

		if limit := rd.codec.cfg.maxBufferSize; limit > 0 && rd.buf.Len() > limit {
			rd.codec.cfg.metrics.incBufferLimitErrors()
			rd.codec.cfg.logger.Error("buffer limit exceeded",
				"buffered", rd.buf.Len(),
				"limit", limit,
				"pending_lines", rd.codec.framer.PendingLines(),
			)

			return nil, rd.fail(fmt.Errorf("%w: %d bytes buffered, limit %d", ErrBufferLimitExceeded, rd.buf.Len(), limit))
		}

		if err := rd.setDeadline(); err != nil {
			return nil, rd.fail(err)
		}

		n, err := rd.r.Read(rd.chunk)
		if n > 0 {
			rd.buf.Write(rd.chunk[:n])
		}
		if err != nil {
			rd.readErr = err
		}
	}
}

func (rd *Reader) endOfStream() error {
	if !errors.Is(rd.readErr, io.EOF) {
		return fmt.Errorf("read stream: %w", rd.readErr)
	}

	if rd.codec.InBlock() || len(bytes.TrimSpace(rd.buf.Bytes())) > 0 {
		return io.ErrUnexpectedEOF
	}

	return io.EOF
}

func (rd *Reader) setDeadline() error {
	timeout := rd.codec.cfg.blockTimeout
	if timeout <= 0 {
		return nil
	}

	ds, ok := rd.r.(deadlineSetter)
	if !ok {
		return nil
	}

	var deadline time.Time
	if rd.codec.InBlock() {
		deadline = time.Now().Add(timeout)
	}
	if err := ds.SetReadDeadline(deadline); err != nil {
		return fmt.Errorf("set read deadline: %w", err)
	}

	return nil
}

func (rd *Reader) fail(err error) error {
	rd.err = err
	return err
}
