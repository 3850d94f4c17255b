package videohub

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-videohub/block"
	"github.com/arloliu/go-videohub/internal/util"
)

// Encode renders msg into its wire representation: the header line, the structured fields
// in canonical order, the extra fields in stored order, and a terminating blank line.
//
// It returns an error only for messages that cannot be framed, e.g. a label containing a
// line break or a body line that would be blank. A message produced by DecodeBlock encodes
// unless one of its lines carries a stray CR byte.
func Encode(msg Message) ([]byte, error) {
	return AppendMessage(nil, msg)
}

// AppendMessage appends the wire representation of msg to dst and returns the extended buffer.
// On error dst is returned unchanged.
func AppendMessage(dst []byte, msg Message) ([]byte, error) {
	if msg == nil {
		return dst, ErrNilMessage
	}

	header := msg.Header()
	if strings.TrimSpace(header) == "" {
		return dst, ErrEmptyHeader
	}
	if util.ContainsLineBreak(header) {
		return dst, fmt.Errorf("%w: header %q", ErrLineBreak, header)
	}

	start := len(dst)
	out := append(dst, header...)
	out = append(out, LineTerminator...)

	out, err := msg.appendBody(out)
	if err != nil {
		return dst[:start], fmt.Errorf("encode %s: %w", msg.Kind(), err)
	}

	sep := msg.Kind().separator()
	for _, f := range msg.ExtraFields() {
		if out, err = appendLine(out, f.line(sep)); err != nil {
			return dst[:start], fmt.Errorf("encode %s extra field: %w", msg.Kind(), err)
		}
	}

	return append(out, LineTerminator...), nil
}

func appendLine(dst []byte, line string) ([]byte, error) {
	if util.ContainsLineBreak(line) {
		return dst, fmt.Errorf("%w: %q", ErrLineBreak, line)
	}
	if block.Line(line).IsBlank() {
		return dst, fmt.Errorf("%w: %q", ErrBlankLine, line)
	}

	dst = append(dst, line...)

	return append(dst, LineTerminator...), nil
}

func appendKeyValueLine(dst []byte, key string, value string) ([]byte, error) {
	return appendLine(dst, key+": "+value)
}

func appendFields[T any](dst []byte, m *T, table []fieldDef[T]) ([]byte, error) {
	var err error
	for _, f := range table {
		value, ok := f.encode(m)
		if !ok {
			continue
		}
		if dst, err = appendKeyValueLine(dst, f.key, value); err != nil {
			return dst, err
		}
	}

	return dst, nil
}
