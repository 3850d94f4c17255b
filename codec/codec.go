package codec

import (
	"bytes"

	"github.com/arloliu/go-videohub/block"
	"github.com/arloliu/go-videohub/videohub"
)

// Codec is the per-connection decoder/encoder state: a framer bound to one byte stream plus the
// configuration shared with Reader and Writer.
//
// Codec is NOT goroutine-safe.
type Codec struct {
	cfg    *Config
	framer *block.Framer
	buf    bytes.Buffer
}

// New creates a Codec with the given options.
func New(opts ...Option) (*Codec, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newCodec(cfg), nil
}

func newCodec(cfg *Config) *Codec {
	return &Codec{cfg: cfg, framer: block.NewFramer()}
}

// Config returns the codec configuration.
func (c *Codec) Config() *Config {
	return c.cfg
}

// Metrics returns the metrics the codec records into.
func (c *Codec) Metrics() *Metrics {
	return c.cfg.metrics
}

// Decode attempts to decode one message from the front of buf.
//
// If buf holds a complete block, its bytes (and any blank lines before it) are removed from buf
// and the decoded message is returned. Otherwise Decode returns a nil message and a nil error,
// leaving the unfinished block in buf; stray blank lines may still have been removed.
//
// Between calls buf may only grow at its tail. The framer remembers how far it has already
// scanned, so a large block arriving in many small chunks is tokenized once.
// A violation of that contract returns block.ErrBufferContract; call Reset to recover.
func (c *Codec) Decode(buf *bytes.Buffer) (videohub.Message, error) {
	for {
		blk, n, err := c.framer.Next(buf.Bytes())
		if err != nil {
			return nil, err
		}

		if n > 0 {
			buf.Next(n)
			c.cfg.metrics.addBytesConsumed(n)
		}

		if blk != nil {
			return c.decodeBlock(blk), nil
		}

		if n == 0 {
			return nil, nil
		}
	}
}

// Write appends p to the codec's own accumulation buffer. It always returns len(p), nil.
func (c *Codec) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

// Next decodes one message from the codec's own buffer, see Decode.
func (c *Codec) Next() (videohub.Message, error) {
	return c.Decode(&c.buf)
}

// Buffered returns the number of bytes in the codec's own buffer not yet consumed.
func (c *Codec) Buffered() int {
	return c.buf.Len()
}

// InBlock reports whether the framer has seen the header of a block that is not yet complete.
func (c *Codec) InBlock() bool {
	return c.framer.State() == block.InBodyState
}

// Reset discards the partial block held by the framer and the codec's own buffer.
func (c *Codec) Reset() {
	c.framer.Reset()
	c.buf.Reset()
}

// Encode renders msg into wire bytes. It is a counted wrapper of videohub.Encode.
func (c *Codec) Encode(msg videohub.Message) ([]byte, error) {
	return c.appendMessage(nil, msg)
}

func (c *Codec) appendMessage(dst []byte, msg videohub.Message) ([]byte, error) {
	start := len(dst)
	out, err := videohub.AppendMessage(dst, msg)
	if err != nil {
		c.cfg.metrics.incEncodeErrors()
		return out, err
	}
	c.cfg.metrics.recordEncoded(len(out) - start)

	return out, nil
}

func (c *Codec) decodeBlock(blk *block.Block) videohub.Message {
	msg := videohub.DecodeBlock(blk)
	c.cfg.metrics.recordDecoded(msg)

	if msg.Kind() == videohub.KindUnknown {
		c.cfg.logger.Debug("unknown block", "header", blk.Header, "lines", len(blk.Body))
	}

	if c.cfg.logDiagnostics {
		for _, d := range msg.Diagnostics() {
			c.cfg.logger.Warn("malformed line",
				"kind", msg.Kind().String(),
				"line", d.Line,
				"text", d.Text,
				"reason", d.Reason,
			)
		}
	}

	return msg
}

// DecodeAll decodes every complete block in data and returns the messages together with the
// unframed remainder, e.g. the beginning of a block whose terminating blank line is missing.
func DecodeAll(data []byte, opts ...Option) ([]videohub.Message, []byte, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, nil, err
	}

	buf := bytes.NewBuffer(data)
	var msgs []videohub.Message
	for {
		msg, err := c.Decode(buf)
		if err != nil {
			return msgs, buf.Bytes(), err
		}
		if msg == nil {
			return msgs, buf.Bytes(), nil
		}
		msgs = append(msgs, msg)
	}
}
