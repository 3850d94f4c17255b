package block

import (
	"errors"
	"fmt"
)

// State represents the state of a Framer.
type State uint32

// Framer states.
const (
	// AwaitingHeaderState is the initial state: the framer waits for a non-blank header line.
	AwaitingHeaderState State = iota
	// InBodyState indicates that a header was seen and body lines are being accumulated
	// until a blank line completes the block.
	InBodyState
)

// String returns string representation of the state.
func (s State) String() string {
	switch s {
	case AwaitingHeaderState:
		return "awaiting-header"
	case InBodyState:
		return "in-body"
	default:
		return "unknown"
	}
}

// Framer assembles lines into blocks.
//
// It is driven by repeatedly calling Next with a buffer that only ever grows at its tail
// between calls. Lines already tokenized are kept in the framer, so a partially received block
// is never rescanned from the beginning.
//
// The zero value is ready to use. A Framer is not goroutine-safe and belongs to exactly one
// byte stream.
type Framer struct {
	state  State
	pos    int // bytes of the buffer already tokenized
	header string
	body   []Line
}

// NewFramer creates a Framer in the AwaitingHeaderState.
func NewFramer() *Framer {
	return &Framer{}
}

// Next advances the framer over buf.
//
// It returns a non-nil block once the blank line terminating it has been seen, together with
// the number of leading bytes of buf the block occupied. Those bytes include any stray blank
// lines before the header and the terminating blank line, and must be discarded by the caller
// before the next call.
//
// While awaiting a header, Next may also return a nil block with n > 0: the reported bytes
// were stray blank lines and can be discarded too.
//
// A nil block with n == 0 means more bytes are needed. Nothing is lost: the caller appends the
// next chunk to buf and calls Next again.
//
// The only error is ErrBufferContract (or ErrCursorOutOfRange), returned when buf is shorter
// than the part the framer has already scanned.
func (f *Framer) Next(buf []byte) (blk *Block, n int, err error) {
	if len(buf) < f.pos {
		return nil, 0, fmt.Errorf("%w: scanned %d bytes, buffer has %d", ErrBufferContract, f.pos, len(buf))
	}

	for {
		line, next, err := NextLine(buf, f.pos)
		if err != nil {
			if !errors.Is(err, ErrIncomplete) {
				return nil, 0, err
			}

			if f.state == AwaitingHeaderState && f.pos > 0 {
				n = f.pos
				f.pos = 0

				return nil, n, nil
			}

			return nil, 0, nil
		}
		f.pos = next

		blank := isBlank(line)
		switch f.state {
		case AwaitingHeaderState:
			if blank {
				continue
			}
			f.header = string(line)
			f.state = InBodyState

		case InBodyState:
			if !blank {
				f.body = append(f.body, Line(line))
				continue
			}

			blk = &Block{Header: f.header, Body: f.body}
			n = f.pos
			f.Reset()

			return blk, n, nil
		}
	}
}

// State returns the current framer state.
func (f *Framer) State() State {
	return f.state
}

// PendingLines returns the number of lines of the current, incomplete block held by the
// framer, including its header line.
func (f *Framer) PendingLines() int {
	if f.state == AwaitingHeaderState {
		return 0
	}

	return len(f.body) + 1
}

// Scanned returns the number of leading buffer bytes already tokenized.
func (f *Framer) Scanned() int {
	return f.pos
}

// Reset discards any partial block and returns the framer to AwaitingHeaderState.
func (f *Framer) Reset() {
	f.state = AwaitingHeaderState
	f.pos = 0
	f.header = ""
	f.body = nil
}
