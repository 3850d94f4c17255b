package videohub

// Control is a block without fields: ACK, NAK, PING or END PRELUDE.
//
// A device answers every command block with ACK or NAK, and a PING block with ACK.
// END PRELUDE marks the end of the initial state dump a device sends after connecting.
type Control struct {
	kind Kind
	Remainder
}

// ensure Control implements the Message interface.
var _ Message = (*Control)(nil)

// NewControl creates a control message of the given kind.
// It returns ErrKindMismatch if kind is not ACK, NAK, PING or END PRELUDE.
func NewControl(kind Kind) (*Control, error) {
	if err := checkShape(kind, shapeControl); err != nil {
		return nil, err
	}

	return &Control{kind: kind}, nil
}

// NewAck creates an ACK message.
func NewAck() *Control { return &Control{kind: KindAck} }

// NewNak creates a NAK message.
func NewNak() *Control { return &Control{kind: KindNak} }

// NewPing creates a PING message.
func NewPing() *Control { return &Control{kind: KindPing} }

// NewEndPrelude creates an END PRELUDE message.
func NewEndPrelude() *Control { return &Control{kind: KindEndPrelude} }

// Kind implements Message.Kind.
func (m *Control) Kind() Kind { return m.kind }

// Header implements Message.Header.
func (m *Control) Header() string { return m.kind.Header() }

// MarshalText implements Message.MarshalText.
func (m *Control) MarshalText() ([]byte, error) { return Encode(m) }

// Clone implements Message.Clone.
func (m *Control) Clone() Message {
	return &Control{kind: m.kind, Remainder: m.Remainder.clone()}
}

func (m *Control) appendBody(dst []byte) ([]byte, error) {
	return dst, nil
}

func checkShape(kind Kind, s shape) error {
	if kind.shape() != s {
		return ErrKindMismatch
	}

	return nil
}
