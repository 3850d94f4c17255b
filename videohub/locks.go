package videohub

import "strings"

// LockState is the state of a port lock.
type LockState int

// Lock states.
const (
	// LockUnlocked means the port is not locked ("U").
	LockUnlocked LockState = iota
	// LockOwned means the port is locked by the current client ("O").
	LockOwned
	// LockLocked means the port is locked by a different client ("L").
	LockLocked
	// LockForce asks the device to unlock a port locked by another client ("F").
	// It is only sent by controllers.
	LockForce
)

// String returns the wire representation of the lock state.
func (s LockState) String() string {
	switch s {
	case LockUnlocked:
		return "U"
	case LockOwned:
		return "O"
	case LockLocked:
		return "L"
	case LockForce:
		return "F"
	default:
		return "?"
	}
}

// ParseLockState parses a lock state letter, case-insensitively.
func ParseLockState(s string) (LockState, bool) {
	switch strings.ToUpper(s) {
	case "U":
		return LockUnlocked, true
	case "O":
		return LockOwned, true
	case "L":
		return LockLocked, true
	case "F":
		return LockForce, true
	default:
		return 0, false
	}
}

// Lock is one "<index> <state>" line of a locks block.
type Lock struct {
	Index uint32
	State LockState
}

// Locks is one of the lock blocks: VIDEO OUTPUT LOCKS, MONITORING OUTPUT LOCKS,
// SERIAL PORT LOCKS, PROCESSING UNIT LOCKS or FRAME BUFFER LOCKS.
//
//	VIDEO OUTPUT LOCKS:
//	0 U
//	1 O
type Locks struct {
	kind    Kind
	Entries []Lock
	Remainder
}

// ensure Locks implements the Message interface.
var _ Message = (*Locks)(nil)

// NewLocks creates a locks message of the given kind.
// It returns ErrKindMismatch if kind is not a locks kind.
func NewLocks(kind Kind, locks ...Lock) (*Locks, error) {
	if err := checkShape(kind, shapeLocks); err != nil {
		return nil, err
	}

	return &Locks{kind: kind, Entries: locks}, nil
}

// NewVideoOutputLocks creates a VIDEO OUTPUT LOCKS message.
func NewVideoOutputLocks(locks ...Lock) *Locks {
	return &Locks{kind: KindVideoOutputLocks, Entries: locks}
}

// State returns the lock state of the given index.
func (m *Locks) State(index uint32) (LockState, bool) {
	for _, l := range m.Entries {
		if l.Index == index {
			return l.State, true
		}
	}

	return LockUnlocked, false
}

// Kind implements Message.Kind.
func (m *Locks) Kind() Kind { return m.kind }

// Header implements Message.Header.
func (m *Locks) Header() string { return m.kind.Header() }

// MarshalText implements Message.MarshalText.
func (m *Locks) MarshalText() ([]byte, error) { return Encode(m) }

// Clone implements Message.Clone.
func (m *Locks) Clone() Message {
	return &Locks{
		kind:      m.kind,
		Entries:   cloneEntries(m.Entries),
		Remainder: m.Remainder.clone(),
	}
}

func (m *Locks) appendBody(dst []byte) ([]byte, error) {
	var err error
	for _, l := range m.Entries {
		if dst, err = appendIndexedLine(dst, l.Index, l.State.String()); err != nil {
			return dst, err
		}
	}

	return dst, nil
}
