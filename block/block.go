package block

import (
	"strings"

	"github.com/arloliu/go-videohub/internal/util"
)

// Block is one framed protocol unit: a header line and its ordered body lines.
//
// It is a transient value between raw bytes and a decoded message. The terminating blank line
// is not part of the block.
type Block struct {
	// Header is the header line content without terminator, e.g. "INPUT LABELS:".
	Header string
	// Body holds the body lines in arrival order.
	Body []Line
}

// Name returns the header text before the trailing colon with surrounding whitespace trimmed.
// Headers without a colon, such as "ACK", are returned trimmed.
func (b *Block) Name() string {
	name := strings.TrimSpace(b.Header)
	name = strings.TrimSuffix(name, ":")

	return strings.TrimSpace(name)
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	return &Block{Header: b.Header, Body: util.CloneSlice(b.Body, 0)}
}
