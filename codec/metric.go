package codec

import (
	"sync/atomic"

	"github.com/arloliu/go-videohub/videohub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/puzpuzpuz/xsync/v3"
)

// Metrics contains atomic counters of a codec. Create it with NewMetrics.
// A Metrics may be shared by several codecs and read concurrently, e.g. by a Prometheus scrape.
type Metrics struct {
	// BlocksDecoded indicates the number of blocks decoded into messages.
	BlocksDecoded atomic.Uint64
	// UnknownBlocks indicates the number of decoded blocks with an unrecognized header.
	UnknownBlocks atomic.Uint64
	// ExtraFields indicates the number of body lines kept in extra-fields bags.
	ExtraFields atomic.Uint64
	// MalformedLines indicates the number of body lines reported as diagnostics.
	MalformedLines atomic.Uint64
	// BytesConsumed indicates the number of input bytes consumed by the framer.
	BytesConsumed atomic.Uint64

	// MessagesEncoded indicates the number of messages encoded.
	MessagesEncoded atomic.Uint64
	// BytesEncoded indicates the number of bytes produced by the encoder.
	BytesEncoded atomic.Uint64
	// EncodeErrors indicates the number of messages rejected by the encoder.
	EncodeErrors atomic.Uint64

	// BufferLimitErrors indicates the number of streams aborted by the buffer cap.
	BufferLimitErrors atomic.Uint64

	kinds *xsync.MapOf[videohub.Kind, *atomic.Uint64]
}

// NewMetrics creates a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{kinds: xsync.NewMapOf[videohub.Kind, *atomic.Uint64]()}
}

// KindCount returns the number of decoded messages of the given kind.
func (m *Metrics) KindCount(kind videohub.Kind) uint64 {
	if c, ok := m.kinds.Load(kind); ok {
		return c.Load()
	}

	return 0
}

// KindCounts returns a snapshot of the decoded message count per kind.
func (m *Metrics) KindCounts() map[videohub.Kind]uint64 {
	counts := make(map[videohub.Kind]uint64, m.kinds.Size())
	m.kinds.Range(func(kind videohub.Kind, c *atomic.Uint64) bool {
		counts[kind] = c.Load()
		return true
	})

	return counts
}

func (m *Metrics) incKind(kind videohub.Kind) {
	c, _ := m.kinds.LoadOrCompute(kind, func() *atomic.Uint64 { return &atomic.Uint64{} })
	c.Add(1)
}

func (m *Metrics) recordDecoded(msg videohub.Message) {
	m.BlocksDecoded.Add(1)
	m.incKind(msg.Kind())
	if msg.Kind() == videohub.KindUnknown {
		m.UnknownBlocks.Add(1)
	}
	m.ExtraFields.Add(uint64(len(msg.ExtraFields())))
	m.MalformedLines.Add(uint64(len(msg.Diagnostics())))
}

func (m *Metrics) addBytesConsumed(n int) {
	m.BytesConsumed.Add(uint64(n))
}

func (m *Metrics) recordEncoded(n int) {
	m.MessagesEncoded.Add(1)
	m.BytesEncoded.Add(uint64(n))
}

func (m *Metrics) incEncodeErrors() {
	m.EncodeErrors.Add(1)
}

func (m *Metrics) incBufferLimitErrors() {
	m.BufferLimitErrors.Add(1)
}

// Collector returns a prometheus.Collector exporting the counters under the given namespace,
// e.g. "videohub_codec_blocks_decoded_total" for namespace "videohub".
func (m *Metrics) Collector(namespace string) prometheus.Collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "codec", name), help, labels, nil)
	}

	return &metricsCollector{
		m: m,
		counters: []counterDesc{
			{desc("blocks_decoded_total", "Blocks decoded into messages."), &m.BlocksDecoded},
			{desc("unknown_blocks_total", "Decoded blocks with an unrecognized header."), &m.UnknownBlocks},
			{desc("extra_fields_total", "Body lines kept in extra-fields bags."), &m.ExtraFields},
			{desc("malformed_lines_total", "Body lines without separable structure."), &m.MalformedLines},
			{desc("consumed_bytes_total", "Input bytes consumed by the framer."), &m.BytesConsumed},
			{desc("messages_encoded_total", "Messages encoded."), &m.MessagesEncoded},
			{desc("encoded_bytes_total", "Bytes produced by the encoder."), &m.BytesEncoded},
			{desc("encode_errors_total", "Messages rejected by the encoder."), &m.EncodeErrors},
			{desc("buffer_limit_errors_total", "Streams aborted by the buffer cap."), &m.BufferLimitErrors},
		},
		kindDesc: desc("messages_decoded_total", "Decoded messages by kind.", "kind"),
	}
}

type counterDesc struct {
	desc  *prometheus.Desc
	value *atomic.Uint64
}

type metricsCollector struct {
	m        *Metrics
	counters []counterDesc
	kindDesc *prometheus.Desc
}

var _ prometheus.Collector = (*metricsCollector)(nil)

func (c *metricsCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, counter := range c.counters {
		ch <- counter.desc
	}
	ch <- c.kindDesc
}

func (c *metricsCollector) Collect(ch chan<- prometheus.Metric) {
	for _, counter := range c.counters {
		ch <- prometheus.MustNewConstMetric(counter.desc, prometheus.CounterValue, float64(counter.value.Load()))
	}
	for kind, n := range c.m.KindCounts() {
		ch <- prometheus.MustNewConstMetric(c.kindDesc, prometheus.CounterValue, float64(n), kind.String())
	}
}
