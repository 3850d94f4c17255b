package videohub

import (
	"strconv"
	"strings"
)

// Preamble is the PROTOCOL PREAMBLE block a device sends first after a connection is made.
//
//	PROTOCOL PREAMBLE:
//	Version: 2.8
type Preamble struct {
	// Version is the protocol version, e.g. "2.8". An empty version is not encoded.
	Version string
	Remainder
}

var preambleFields = []fieldDef[Preamble]{
	{
		key: "Version",
		decode: func(m *Preamble, value string) bool {
			if value == "" {
				return false
			}
			m.Version = value
			return true
		},
		encode: func(m *Preamble) (string, bool) {
			return m.Version, m.Version != ""
		},
	},
}

// ensure Preamble implements the Message interface.
var _ Message = (*Preamble)(nil)

// NewPreamble creates a PROTOCOL PREAMBLE message with the given version.
func NewPreamble(version string) *Preamble {
	return &Preamble{Version: version}
}

// Major returns the major protocol version, e.g. 2 for "2.8".
// It returns false if the version does not start with a decimal number.
func (m *Preamble) Major() (int, bool) {
	major, _, _ := strings.Cut(m.Version, ".")
	v, err := strconv.Atoi(major)
	if err != nil || v < 0 {
		return 0, false
	}

	return v, true
}

// Kind implements Message.Kind.
func (m *Preamble) Kind() Kind { return KindPreamble }

// Header implements Message.Header.
func (m *Preamble) Header() string { return KindPreamble.Header() }

// MarshalText implements Message.MarshalText.
func (m *Preamble) MarshalText() ([]byte, error) { return Encode(m) }

// Clone implements Message.Clone.
func (m *Preamble) Clone() Message {
	c := *m
	c.Remainder = m.Remainder.clone()

	return &c
}

func (m *Preamble) appendBody(dst []byte) ([]byte, error) {
	return appendFields(dst, m, preambleFields)
}
