package videohub

import "strconv"

// Label is one "<index> <name>" line of a labels block.
type Label struct {
	Index uint32
	Name  string
}

// Labels is one of the label blocks: INPUT LABELS, OUTPUT LABELS, MONITORING OUTPUT LABELS,
// SERIAL PORT LABELS or FRAME LABELS.
//
//	INPUT LABELS:
//	0 Camera 1
//	1 Camera 2
//
// Names are kept verbatim, including leading or trailing whitespace.
type Labels struct {
	kind    Kind
	Entries []Label
	Remainder
}

// ensure Labels implements the Message interface.
var _ Message = (*Labels)(nil)

// NewLabels creates a labels message of the given kind.
// It returns ErrKindMismatch if kind is not a labels kind.
func NewLabels(kind Kind, entries ...Label) (*Labels, error) {
	if err := checkShape(kind, shapeLabels); err != nil {
		return nil, err
	}

	return &Labels{kind: kind, Entries: entries}, nil
}

// NewInputLabels creates an INPUT LABELS message.
func NewInputLabels(entries ...Label) *Labels {
	return &Labels{kind: KindInputLabels, Entries: entries}
}

// NewOutputLabels creates an OUTPUT LABELS message.
func NewOutputLabels(entries ...Label) *Labels {
	return &Labels{kind: KindOutputLabels, Entries: entries}
}

// Name returns the label of the given index.
func (m *Labels) Name(index uint32) (string, bool) {
	for _, l := range m.Entries {
		if l.Index == index {
			return l.Name, true
		}
	}

	return "", false
}

// Kind implements Message.Kind.
func (m *Labels) Kind() Kind { return m.kind }

// Header implements Message.Header.
func (m *Labels) Header() string { return m.kind.Header() }

// MarshalText implements Message.MarshalText.
func (m *Labels) MarshalText() ([]byte, error) { return Encode(m) }

// Clone implements Message.Clone.
func (m *Labels) Clone() Message {
	return &Labels{
		kind:      m.kind,
		Entries:   cloneEntries(m.Entries),
		Remainder: m.Remainder.clone(),
	}
}

func (m *Labels) appendBody(dst []byte) ([]byte, error) {
	var err error
	for _, l := range m.Entries {
		if dst, err = appendIndexedLine(dst, l.Index, l.Name); err != nil {
			return dst, err
		}
	}

	return dst, nil
}

func appendIndexedLine(dst []byte, index uint32, value string) ([]byte, error) {
	return appendLine(dst, strconv.FormatUint(uint64(index), 10)+" "+value)
}
