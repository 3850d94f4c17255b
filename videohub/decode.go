package videohub

import (
	"io"
	"strings"

	"github.com/arloliu/go-videohub/block"
	"github.com/arloliu/go-videohub/internal/util"
)

const (
	reasonNoKeyValue = `expected "key: value"`
	reasonNoIndex    = `expected "<index> <value>"`
)

// DecodeBlock decodes a framed block into a typed message.
//
// The header selects the message kind (see KindOf). A block with an unrecognized header
// decodes to *Unknown. DecodeBlock never fails: content that does not fit the kind's fields
// ends up in the message's extra fields, and lines without any structure are also reported
// by Diagnostics.
func DecodeBlock(b *block.Block) Message {
	kind := KindOf(b.Header)
	d := &bodyDecoder{}

	switch kind.shape() {
	case shapePreamble:
		m := &Preamble{}
		decodeFields(d, b.Body, m, preambleFields)
		m.Remainder = d.rem

		return m

	case shapeDevice:
		m := &DeviceInfo{}
		decodeFields(d, b.Body, m, deviceFields)
		m.Remainder = d.rem

		return m

	case shapeLabels:
		m := &Labels{kind: kind}
		decodeIndexed(d, b.Body, func(index uint32, value string) bool {
			m.Entries = append(m.Entries, Label{Index: index, Name: value})
			return true
		})
		m.Remainder = d.rem

		return m

	case shapeRouting:
		m := &Routing{kind: kind}
		decodeIndexed(d, b.Body, func(index uint32, value string) bool {
			input, ok := util.ParseUint32(strings.TrimSpace(value))
			if !ok {
				return false
			}
			m.Entries = append(m.Entries, Route{Output: index, Input: input})
			return true
		})
		m.Remainder = d.rem

		return m

	case shapeLocks:
		m := &Locks{kind: kind}
		decodeIndexed(d, b.Body, func(index uint32, value string) bool {
			state, ok := ParseLockState(strings.TrimSpace(value))
			if !ok {
				return false
			}
			m.Entries = append(m.Entries, Lock{Index: index, State: state})
			return true
		})
		m.Remainder = d.rem

		return m

	case shapePortStatus:
		m := &PortStatus{kind: kind}
		decodeIndexed(d, b.Body, func(index uint32, value string) bool {
			m.Entries = append(m.Entries, Port{Index: index, Type: PortType(value)})
			return true
		})
		m.Remainder = d.rem

		return m

	case shapeDirections:
		m := &SerialPortDirections{}
		decodeIndexed(d, b.Body, func(index uint32, value string) bool {
			dir, ok := ParsePortDirection(strings.TrimSpace(value))
			if !ok {
				return false
			}
			m.Entries = append(m.Entries, SerialPortDirection{Index: index, Direction: dir})
			return true
		})
		m.Remainder = d.rem

		return m

	case shapeSettings:
		m := &Settings{kind: kind}
		decodeSettings(d, b.Body, m)
		m.Remainder = d.rem

		return m

	case shapeControl:
		m := &Control{kind: kind}
		decodeFields[Control](d, b.Body, m, nil)
		m.Remainder = d.rem

		return m

	default:
		m := &Unknown{HeaderLine: b.Header}
		if len(b.Body) > 0 {
			m.Lines = make([]string, len(b.Body))
			for i, l := range b.Body {
				m.Lines[i] = string(l)
			}
		}

		return m
	}
}

// Parse decodes the first complete block in data and returns the message and the number of
// bytes it occupied.
//
// It returns io.ErrUnexpectedEOF if data does not hold a complete block.
func Parse(data []byte) (Message, int, error) {
	f := block.NewFramer()
	consumed := 0
	for {
		blk, n, err := f.Next(data[consumed:])
		if err != nil {
			return nil, 0, err
		}
		consumed += n
		if blk != nil {
			return DecodeBlock(blk), consumed, nil
		}
		if n == 0 {
			return nil, 0, io.ErrUnexpectedEOF
		}
	}
}

// bodyDecoder accumulates the remainder of a block while its body is decoded.
type bodyDecoder struct {
	rem Remainder
}

func (d *bodyDecoder) extra(l block.Line, key string, value string) {
	d.rem.Extra = append(d.rem.Extra, Field{Key: key, Value: value, Raw: string(l)})
}

func (d *bodyDecoder) malformed(lineNo int, l block.Line, reason string) {
	d.rem.Diags = append(d.rem.Diags, Diagnostic{Line: lineNo, Text: string(l), Reason: reason})
	d.rem.Extra = append(d.rem.Extra, Field{Raw: string(l)})
}

// decodeFields decodes "key: value" lines against a field table.
func decodeFields[T any](d *bodyDecoder, body []block.Line, m *T, table []fieldDef[T]) {
	seen := make([]bool, len(table))
	for i, l := range body {
		key, value, ok := l.KeyValue()
		if !ok {
			d.malformed(i+1, l, reasonNoKeyValue)
			continue
		}

		idx := lookupField(table, key)
		if idx < 0 || seen[idx] || !table[idx].decode(m, value) {
			d.extra(l, key, value)
			continue
		}
		seen[idx] = true
	}
}

// decodeIndexed decodes "<index> <value>" lines. accept stores a parsed entry and returns
// false if the value does not parse.
func decodeIndexed(d *bodyDecoder, body []block.Line, accept func(index uint32, value string) bool) {
	seen := make(map[uint32]struct{}, len(body))
	for i, l := range body {
		index, value, ok := l.Indexed()
		if !ok {
			key, rest, hasSep := l.Prefix()
			if !hasSep {
				d.malformed(i+1, l, reasonNoIndex)
				continue
			}
			d.extra(l, key, rest)

			continue
		}

		if _, dup := seen[index]; dup || !accept(index, value) {
			key, _, _ := l.Prefix()
			d.extra(l, key, value)

			continue
		}
		seen[index] = struct{}{}
	}
}

func decodeSettings(d *bodyDecoder, body []block.Line, m *Settings) {
	seen := make(map[string]struct{}, len(body))
	for i, l := range body {
		key, value, ok := l.KeyValue()
		if !ok {
			d.malformed(i+1, l, reasonNoKeyValue)
			continue
		}

		if _, dup := seen[key]; dup {
			d.extra(l, key, value)
			continue
		}
		seen[key] = struct{}{}
		m.Entries = append(m.Entries, Setting{Name: key, Value: value})
	}
}
