package videohub

import "github.com/arloliu/go-videohub/internal/util"

// Unknown is a block whose header is not recognized.
//
// The header line and the body lines are kept exactly as received (minus line terminators),
// so the block re-encodes byte for byte.
type Unknown struct {
	HeaderLine string
	Lines      []string
}

// ensure Unknown implements the Message interface.
var _ Message = (*Unknown)(nil)

// NewUnknown creates an unknown message from a header line and body lines.
func NewUnknown(header string, lines ...string) *Unknown {
	return &Unknown{HeaderLine: header, Lines: lines}
}

// Name returns the normalized header text: upper case, single spaced, without trailing colon.
func (m *Unknown) Name() string {
	return normalizeHeader(m.HeaderLine)
}

// Kind implements Message.Kind. It always returns KindUnknown.
func (m *Unknown) Kind() Kind { return KindUnknown }

// Header implements Message.Header. It returns the header line verbatim.
func (m *Unknown) Header() string { return m.HeaderLine }

// ExtraFields implements Message.ExtraFields. Unknown blocks have no extra fields;
// all body lines are kept in Lines.
func (m *Unknown) ExtraFields() []Field { return nil }

// Diagnostics implements Message.Diagnostics. Unknown blocks are never diagnosed.
func (m *Unknown) Diagnostics() []Diagnostic { return nil }

// MarshalText implements Message.MarshalText.
func (m *Unknown) MarshalText() ([]byte, error) { return Encode(m) }

// Clone implements Message.Clone.
func (m *Unknown) Clone() Message {
	return &Unknown{HeaderLine: m.HeaderLine, Lines: util.CloneSlice(m.Lines, 0)}
}

func (m *Unknown) appendBody(dst []byte) ([]byte, error) {
	var err error
	for _, line := range m.Lines {
		if dst, err = appendLine(dst, line); err != nil {
			return dst, err
		}
	}

	return dst, nil
}
