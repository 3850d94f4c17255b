package videohub

import "strings"

// PortType is the hardware type reported for a port in a status block.
//
// Devices report more types than the documented ones, so the value is kept as received.
type PortType string

// Documented port types.
const (
	PortTypeNone        PortType = "None"
	PortTypeBNC         PortType = "BNC"
	PortTypeOptical     PortType = "Optical"
	PortTypeThunderbolt PortType = "Thunderbolt"
	PortTypeRS422       PortType = "RS422"
)

var knownPortTypes = []PortType{PortTypeNone, PortTypeBNC, PortTypeOptical, PortTypeThunderbolt, PortTypeRS422}

// Canonical returns the documented spelling of a known port type, matched case-insensitively.
// Unknown types are returned unchanged.
func (t PortType) Canonical() PortType {
	for _, known := range knownPortTypes {
		if strings.EqualFold(string(t), string(known)) {
			return known
		}
	}

	return t
}

// Known reports whether the port type is one of the documented types.
func (t PortType) Known() bool {
	for _, known := range knownPortTypes {
		if strings.EqualFold(string(t), string(known)) {
			return true
		}
	}

	return false
}

// Port is one "<index> <type>" line of a status block.
type Port struct {
	Index uint32
	Type  PortType
}

// PortStatus is one of the hardware status blocks: VIDEO INPUT STATUS, VIDEO OUTPUT STATUS or
// SERIAL PORT STATUS.
//
//	VIDEO INPUT STATUS:
//	0 BNC
//	1 Optical
type PortStatus struct {
	kind    Kind
	Entries []Port
	Remainder
}

// ensure PortStatus implements the Message interface.
var _ Message = (*PortStatus)(nil)

// NewPortStatus creates a status message of the given kind.
// It returns ErrKindMismatch if kind is not a status kind.
func NewPortStatus(kind Kind, ports ...Port) (*PortStatus, error) {
	if err := checkShape(kind, shapePortStatus); err != nil {
		return nil, err
	}

	return &PortStatus{kind: kind, Entries: ports}, nil
}

// Kind implements Message.Kind.
func (m *PortStatus) Kind() Kind { return m.kind }

// Header implements Message.Header.
func (m *PortStatus) Header() string { return m.kind.Header() }

// MarshalText implements Message.MarshalText.
func (m *PortStatus) MarshalText() ([]byte, error) { return Encode(m) }

// Clone implements Message.Clone.
func (m *PortStatus) Clone() Message {
	return &PortStatus{
		kind:      m.kind,
		Entries:   cloneEntries(m.Entries),
		Remainder: m.Remainder.clone(),
	}
}

func (m *PortStatus) appendBody(dst []byte) ([]byte, error) {
	var err error
	for _, p := range m.Entries {
		if dst, err = appendIndexedLine(dst, p.Index, string(p.Type)); err != nil {
			return dst, err
		}
	}

	return dst, nil
}

// PortDirection is the direction of a serial port.
type PortDirection int

// Serial port directions.
const (
	// DirectionAuto selects the direction automatically.
	DirectionAuto PortDirection = iota
	// DirectionControl is "In (Workstation)".
	DirectionControl
	// DirectionSlave is "Out (Deck)".
	DirectionSlave
)

// String returns the wire representation of the direction.
func (d PortDirection) String() string {
	switch d {
	case DirectionAuto:
		return "auto"
	case DirectionControl:
		return "control"
	case DirectionSlave:
		return "slave"
	default:
		return "undefined"
	}
}

// ParsePortDirection parses a serial port direction, case-insensitively.
func ParsePortDirection(s string) (PortDirection, bool) {
	switch strings.ToLower(s) {
	case "auto":
		return DirectionAuto, true
	case "control":
		return DirectionControl, true
	case "slave":
		return DirectionSlave, true
	default:
		return 0, false
	}
}

// SerialPortDirection is one "<index> <direction>" line.
type SerialPortDirection struct {
	Index     uint32
	Direction PortDirection
}

// SerialPortDirections is the SERIAL PORT DIRECTIONS block.
//
//	SERIAL PORT DIRECTIONS:
//	0 control
//	1 slave
type SerialPortDirections struct {
	Entries []SerialPortDirection
	Remainder
}

// ensure SerialPortDirections implements the Message interface.
var _ Message = (*SerialPortDirections)(nil)

// NewSerialPortDirections creates a SERIAL PORT DIRECTIONS message.
func NewSerialPortDirections(entries ...SerialPortDirection) *SerialPortDirections {
	return &SerialPortDirections{Entries: entries}
}

// Kind implements Message.Kind.
func (m *SerialPortDirections) Kind() Kind { return KindSerialPortDirections }

// Header implements Message.Header.
func (m *SerialPortDirections) Header() string { return KindSerialPortDirections.Header() }

// MarshalText implements Message.MarshalText.
func (m *SerialPortDirections) MarshalText() ([]byte, error) { return Encode(m) }

// Clone implements Message.Clone.
func (m *SerialPortDirections) Clone() Message {
	return &SerialPortDirections{
		Entries:   cloneEntries(m.Entries),
		Remainder: m.Remainder.clone(),
	}
}

func (m *SerialPortDirections) appendBody(dst []byte) ([]byte, error) {
	var err error
	for _, d := range m.Entries {
		if dst, err = appendIndexedLine(dst, d.Index, d.Direction.String()); err != nil {
			return dst, err
		}
	}

	return dst, nil
}
