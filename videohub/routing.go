package videohub

import (
	"strconv"

	"github.com/arloliu/go-videohub/internal/util"
)

// Route is one "<destination> <source>" line of a routing block, e.g. "0 3" routes input 3
// to output 0.
type Route struct {
	Output uint32
	Input  uint32
}

// Routing is one of the routing blocks: VIDEO OUTPUT ROUTING, VIDEO MONITORING OUTPUT ROUTING,
// SERIAL PORT ROUTING, PROCESSING UNIT ROUTING or FRAME BUFFER ROUTING.
//
//	VIDEO OUTPUT ROUTING:
//	0 3
//	1 2
//
// Entries keep the block order. A controller sends a routing block with only the outputs it
// wants to change; a device answers with ACK and a routing block holding the new state.
type Routing struct {
	kind    Kind
	Entries []Route
	Remainder
}

// ensure Routing implements the Message interface.
var _ Message = (*Routing)(nil)

// NewRouting creates a routing message of the given kind.
// It returns ErrKindMismatch if kind is not a routing kind.
func NewRouting(kind Kind, routes ...Route) (*Routing, error) {
	if err := checkShape(kind, shapeRouting); err != nil {
		return nil, err
	}

	return &Routing{kind: kind, Entries: routes}, nil
}

// NewVideoOutputRouting creates a VIDEO OUTPUT ROUTING message.
func NewVideoOutputRouting(routes ...Route) *Routing {
	return &Routing{kind: KindVideoOutputRouting, Entries: routes}
}

// Input returns the input routed to output.
func (m *Routing) Input(output uint32) (uint32, bool) {
	for _, r := range m.Entries {
		if r.Output == output {
			return r.Input, true
		}
	}

	return 0, false
}

// Map returns the routes as an output to input map.
func (m *Routing) Map() map[uint32]uint32 {
	routes := make(map[uint32]uint32, len(m.Entries))
	for _, r := range m.Entries {
		routes[r.Output] = r.Input
	}

	return routes
}

// Kind implements Message.Kind.
func (m *Routing) Kind() Kind { return m.kind }

// Header implements Message.Header.
func (m *Routing) Header() string { return m.kind.Header() }

// MarshalText implements Message.MarshalText.
func (m *Routing) MarshalText() ([]byte, error) { return Encode(m) }

// Clone implements Message.Clone.
func (m *Routing) Clone() Message {
	return &Routing{
		kind:      m.kind,
		Entries:   cloneEntries(m.Entries),
		Remainder: m.Remainder.clone(),
	}
}

func (m *Routing) appendBody(dst []byte) ([]byte, error) {
	var err error
	for _, r := range m.Entries {
		if dst, err = appendIndexedLine(dst, r.Output, strconv.FormatUint(uint64(r.Input), 10)); err != nil {
			return dst, err
		}
	}

	return dst, nil
}

func cloneEntries[T any](entries []T) []T {
	return util.CloneSlice(entries, 0)
}
