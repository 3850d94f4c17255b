package codec

import (
	"fmt"
	"io"

	"github.com/arloliu/go-videohub/internal/pool"
	"github.com/arloliu/go-videohub/videohub"
)

// Writer writes messages to an io.Writer owned by the caller, one block per Write call.
// Encoding buffers are borrowed from a process-wide pool for the duration of a call.
//
// Writer is NOT goroutine-safe.
type Writer struct {
	w     io.Writer
	codec *Codec
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Writer{w: w, codec: newCodec(cfg)}, nil
}

// Codec returns the codec used by the writer.
func (wr *Writer) Codec() *Codec {
	return wr.codec
}

// WriteMessage encodes msg and writes it in a single call to the underlying writer.
// Nothing is written if msg cannot be encoded.
func (wr *Writer) WriteMessage(msg videohub.Message) error {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	out, err := wr.codec.appendMessage(*buf, msg)
	if err != nil {
		return err
	}
	*buf = out

	if _, err := wr.w.Write(out); err != nil {
		return fmt.Errorf("write %s block: %w", msg.Kind(), err)
	}

	return nil
}
