// Package videohub implements the message model of the Blackmagic Videohub Ethernet Protocol,
// together with the field decoder that turns a framed block into a typed Message and the
// encoder that renders a Message back into wire bytes.
//
// Message Kinds:
// Every block header maps onto a Kind. The typed kinds share a handful of body shapes:
//   - Preamble, DeviceInfo: "key: value" lines with a fixed field table.
//   - Labels, Routing, Locks, PortStatus, SerialPortDirections: index-prefixed "<index> <value>" lines.
//   - Settings (ALARM STATUS, CONFIGURATION): free "key: value" lines in arrival order.
//   - Control (ACK, NAK, PING, END PRELUDE): no fields.
//
// A block whose header is not recognized decodes to Unknown, which keeps the header line and
// the body lines verbatim.
//
// Tolerance:
// Real devices send undocumented keys, repeat fields and occasionally emit garbage lines. The
// decoder never rejects a block because of its content:
//   - an unrecognized key, an unparseable value or a repeated key/index is stored verbatim in
//     the message's extra fields (see Remainder) and re-emitted last on encoding,
//   - a line with no separable structure at all is additionally reported as a Diagnostic.
//
// Bounds of indices against the device's matrix size are not checked; that is up to the layer
// interpreting the messages.
//
// Encoding:
// Encode renders the header, the structured fields in the order devices emit them, the extra
// fields, and a blank line. Lines are always terminated by LineTerminator.
package videohub
