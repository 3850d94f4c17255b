package videohub

import (
	"strconv"
	"strings"

	"github.com/arloliu/go-videohub/internal/util"
)

// fieldDef describes one known "key: value" field of a message type T.
// The order of a field table is the order the encoder writes the fields in.
type fieldDef[T any] struct {
	key string
	// decode stores value into m, returning false if value does not parse.
	decode func(m *T, value string) bool
	// encode returns the value to write, or false if the field is unset.
	encode func(m *T) (string, bool)
}

func lookupField[T any](table []fieldDef[T], key string) int {
	for i := range table {
		if strings.EqualFold(table[i].key, key) {
			return i
		}
	}

	return -1
}

// textField defines an optional free-text field.
func textField[T any](key string, field func(*T) **string) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(m *T, value string) bool {
			*field(m) = &value
			return true
		},
		encode: func(m *T) (string, bool) {
			p := *field(m)
			if p == nil {
				return "", false
			}
			return *p, true
		},
	}
}

// countField defines an optional unsigned decimal field.
func countField[T any](key string, field func(*T) **uint32) fieldDef[T] {
	return fieldDef[T]{
		key: key,
		decode: func(m *T, value string) bool {
			v, ok := util.ParseUint32(value)
			if !ok {
				return false
			}
			*field(m) = &v
			return true
		},
		encode: func(m *T) (string, bool) {
			p := *field(m)
			if p == nil {
				return "", false
			}
			return strconv.FormatUint(uint64(*p), 10), true
		},
	}
}
