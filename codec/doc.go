// Package codec ties the block framer and the message decoder/encoder together into a
// stateful, per-connection codec for the Blackmagic Videohub Ethernet Protocol.
//
// Codec works on caller-owned buffers and never blocks: Decode returns at most one message and
// reports "need more data" with a nil message and a nil error. Bytes are only consumed once a
// complete block, or a run of stray blank lines, has been framed.
//
//	c, _ := codec.New()
//	c.Write(chunk)
//	for {
//		msg, err := c.Next()
//		if err != nil || msg == nil {
//			break
//		}
//		handle(msg)
//	}
//
// Reader and Writer adapt a Codec to an io.Reader / io.Writer owned by the caller, e.g. a
// net.Conn to a router on TCP port 9990. The Reader enforces a cap on the bytes buffered for a
// single unfinished block.
//
// Logging goes through the logger package and counters are kept in Metrics, which can be
// exported to Prometheus with Metrics.Collector.
//
// None of the types in this package are goroutine-safe, except Metrics.
package codec
