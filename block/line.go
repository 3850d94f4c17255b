package block

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/arloliu/go-videohub/internal/util"
)

// NextLine returns the next complete line in buf starting at cursor pos.
//
// A line is terminated by LF or CRLF. The returned line excludes the terminator and aliases
// buf, next is the cursor just past the terminator.
//
// If no terminator is present at or after pos, it returns ErrIncomplete and next equals pos:
// nothing is consumed and the caller should retry once more bytes have been appended.
// A trailing CR is treated the same way, since its LF may still be in flight.
//
// It returns ErrCursorOutOfRange if pos is outside [0, len(buf)].
func NextLine(buf []byte, pos int) (line []byte, next int, err error) {
	if pos < 0 || pos > len(buf) {
		return nil, pos, fmt.Errorf("%w: cursor %d, buffer length %d", ErrCursorOutOfRange, pos, len(buf))
	}

	i := bytes.IndexByte(buf[pos:], '\n')
	if i < 0 {
		return nil, pos, ErrIncomplete
	}

	end := pos + i
	next = end + 1
	if end > pos && buf[end-1] == '\r' {
		end--
	}

	return buf[pos:end], next, nil
}

// Line is a single body line of a block, without its terminator.
type Line string

// IsBlank reports whether the line is empty or holds only spaces and tabs.
func (l Line) IsBlank() bool {
	return isBlank([]byte(l))
}

// KeyValue splits a "key: value" line on its first colon.
//
// Whitespace around the key and the value is trimmed, so "Key:value", "Key: value" and
// "Key :  value" all split the same way. It returns ok=false when the line has no colon or
// the key is empty.
func (l Line) KeyValue() (key string, value string, ok bool) {
	s := string(l)
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(s[:i])
	if key == "" {
		return "", "", false
	}

	return key, strings.TrimSpace(s[i+1:]), true
}

// Indexed splits an index-prefixed "<index> <value>" line.
//
// The index is an unsigned decimal number and is separated from the value by exactly one
// space or tab. The value is returned verbatim, including any further whitespace, so that
// labels survive re-encoding byte for byte. It returns ok=false when there is no separator or
// the index is not a valid uint32.
func (l Line) Indexed() (index uint32, value string, ok bool) {
	s := string(l)
	i := strings.IndexAny(s, " \t")
	if i <= 0 {
		return 0, "", false
	}

	index, ok = util.ParseUint32(s[:i])
	if !ok {
		return 0, "", false
	}

	return index, s[i+1:], true
}

// Prefix splits a line on its first space or tab and returns the text before it.
// It is used to preserve unrecognized index-prefixed lines, e.g. "x7 foo".
func (l Line) Prefix() (prefix string, rest string, ok bool) {
	s := string(l)
	i := strings.IndexAny(s, " \t")
	if i <= 0 {
		return "", "", false
	}

	return s[:i], s[i+1:], true
}

func isBlank(line []byte) bool {
	for _, c := range line {
		if !util.IsBlankSpace(c) {
			return false
		}
	}

	return true
}
