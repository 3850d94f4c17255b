package videohub

import (
	"fmt"

	"github.com/arloliu/go-videohub/internal/util"
)

// LineTerminator is the line terminator written by the encoder.
// The decoder accepts both LF and CRLF.
const LineTerminator = "\n"

// Message represents one decoded or to-be-encoded protocol block.
//
// The set of implementations is closed: *Preamble, *DeviceInfo, *Labels, *Routing, *Locks,
// *PortStatus, *SerialPortDirections, *Settings, *Control and *Unknown.
// Use a type switch on the concrete type, or Kind(), to dispatch.
//
// Messages are treated as immutable values once constructed. Use Clone to derive a modified copy.
type Message interface {
	// Kind returns the kind of the block.
	Kind() Kind

	// Header returns the header line written by the encoder, without terminator.
	Header() string

	// ExtraFields returns the fields that were not mapped onto structured fields, in arrival order.
	ExtraFields() []Field

	// Diagnostics returns anomalies recorded while decoding the block.
	Diagnostics() []Diagnostic

	// MarshalText encodes the message into its wire representation.
	MarshalText() ([]byte, error)

	// Clone creates a deep copy of the message.
	Clone() Message

	// appendBody appends the structured body lines.
	appendBody(dst []byte) ([]byte, error)
}

// Field is a body datum kept in the extra-fields bag of a message.
//
// Fields produced by the decoder carry the verbatim line in Raw, and Raw is what the encoder
// writes back. A Field built by hand may leave Raw empty; it is then rendered as Key and Value
// joined by ": " for key/value kinds or by a single space for index-prefixed kinds.
//
// A malformed line is kept with an empty Key and its text in Raw.
type Field struct {
	Key   string
	Value string
	Raw   string
}

func (f Field) line(sep string) string {
	if f.Raw != "" {
		return f.Raw
	}

	return f.Key + sep + f.Value
}

// Diagnostic records a body line that had no separable structure.
// It implements error and wraps ErrMalformedLine.
type Diagnostic struct {
	// Line is the 1-based position of the line within the block body.
	Line int
	// Text is the line content.
	Text string
	// Reason describes what was expected.
	Reason string
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s at body line %d: %s: %q", ErrMalformedLine, d.Line, d.Reason, d.Text)
}

// Unwrap returns ErrMalformedLine.
func (d Diagnostic) Unwrap() error {
	return ErrMalformedLine
}

// Remainder holds the part of a block that did not map onto structured fields.
// It is embedded in every typed message.
type Remainder struct {
	// Extra is the extra-fields bag.
	Extra []Field
	// Diags holds the per-line diagnostics.
	Diags []Diagnostic
}

// ExtraFields returns the extra-fields bag.
func (r *Remainder) ExtraFields() []Field {
	return r.Extra
}

// Diagnostics returns the decode diagnostics.
func (r *Remainder) Diagnostics() []Diagnostic {
	return r.Diags
}

func (r *Remainder) clone() Remainder {
	return Remainder{
		Extra: util.CloneSlice(r.Extra, 0),
		Diags: util.CloneSlice(r.Diags, 0),
	}
}

// Ptr returns a pointer to v. It helps populating optional fields such as DeviceInfo.VideoInputs.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
