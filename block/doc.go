// Package block splits a Videohub protocol byte stream into blocks.
//
// The Videohub Ethernet Protocol has no length prefixes. A block is a header line ending in a
// colon (or a bare word such as ACK), followed by zero or more body lines, followed by one
// blank line:
//
//	VIDEO OUTPUT ROUTING:
//	0 3
//	1 2
//	(blank line)
//
// The package offers two layers:
//
//   - NextLine: tokenizes one LF or CRLF terminated line out of a buffer without copying.
//   - Framer: a two-state machine (AwaitingHeader, InBody) that groups lines into a Block.
//
// Both are incremental. When a line or a block is not complete yet they report it instead of
// blocking, so the caller decides how to wait for more bytes. Neither imposes a size limit:
// the protocol has none, and callers that need one must police their buffers themselves.
package block
