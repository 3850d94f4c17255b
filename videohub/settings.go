package videohub

// Setting is one free "key: value" line of a settings block.
type Setting struct {
	Name  string
	Value string
}

// Settings is a block of free key/value pairs: ALARM STATUS or CONFIGURATION.
//
//	CONFIGURATION:
//	Take Mode: true
//
// Entries keep arrival order. A key repeated within one block goes to the extra fields.
type Settings struct {
	kind    Kind
	Entries []Setting
	Remainder
}

// ensure Settings implements the Message interface.
var _ Message = (*Settings)(nil)

// NewSettings creates a settings message of the given kind.
// It returns ErrKindMismatch if kind is not ALARM STATUS or CONFIGURATION.
func NewSettings(kind Kind, settings ...Setting) (*Settings, error) {
	if err := checkShape(kind, shapeSettings); err != nil {
		return nil, err
	}

	return &Settings{kind: kind, Entries: settings}, nil
}

// NewConfiguration creates a CONFIGURATION message.
func NewConfiguration(settings ...Setting) *Settings {
	return &Settings{kind: KindConfiguration, Entries: settings}
}

// Value returns the value of the named setting. Names match exactly.
func (m *Settings) Value(name string) (string, bool) {
	for _, s := range m.Entries {
		if s.Name == name {
			return s.Value, true
		}
	}

	return "", false
}

// Kind implements Message.Kind.
func (m *Settings) Kind() Kind { return m.kind }

// Header implements Message.Header.
func (m *Settings) Header() string { return m.kind.Header() }

// MarshalText implements Message.MarshalText.
func (m *Settings) MarshalText() ([]byte, error) { return Encode(m) }

// Clone implements Message.Clone.
func (m *Settings) Clone() Message {
	return &Settings{
		kind:      m.kind,
		Entries:   cloneEntries(m.Entries),
		Remainder: m.Remainder.clone(),
	}
}

func (m *Settings) appendBody(dst []byte) ([]byte, error) {
	var err error
	for _, s := range m.Entries {
		if dst, err = appendKeyValueLine(dst, s.Name, s.Value); err != nil {
			return dst, err
		}
	}

	return dst, nil
}
