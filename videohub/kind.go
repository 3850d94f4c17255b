package videohub

import "strings"

// Kind identifies the type of a protocol block.
type Kind int

// Block kinds of the Videohub Ethernet Protocol.
const (
	KindUnknown Kind = iota // Block with an unrecognized header

	KindPreamble   // PROTOCOL PREAMBLE:
	KindDeviceInfo // VIDEOHUB DEVICE:

	KindInputLabels            // INPUT LABELS:
	KindOutputLabels           // OUTPUT LABELS:
	KindMonitoringOutputLabels // MONITORING OUTPUT LABELS:
	KindSerialPortLabels       // SERIAL PORT LABELS:
	KindFrameLabels            // FRAME LABELS:

	KindVideoOutputRouting           // VIDEO OUTPUT ROUTING:
	KindVideoMonitoringOutputRouting // VIDEO MONITORING OUTPUT ROUTING:
	KindSerialPortRouting            // SERIAL PORT ROUTING:
	KindProcessingUnitRouting        // PROCESSING UNIT ROUTING:
	KindFrameBufferRouting           // FRAME BUFFER ROUTING:

	KindVideoOutputLocks      // VIDEO OUTPUT LOCKS:
	KindMonitoringOutputLocks // MONITORING OUTPUT LOCKS:
	KindSerialPortLocks       // SERIAL PORT LOCKS:
	KindProcessingUnitLocks   // PROCESSING UNIT LOCKS:
	KindFrameBufferLocks      // FRAME BUFFER LOCKS:

	KindVideoInputStatus  // VIDEO INPUT STATUS:
	KindVideoOutputStatus // VIDEO OUTPUT STATUS:
	KindSerialPortStatus  // SERIAL PORT STATUS:

	KindSerialPortDirections // SERIAL PORT DIRECTIONS:

	KindAlarmStatus   // ALARM STATUS:
	KindConfiguration // CONFIGURATION:

	KindAck        // ACK
	KindNak        // NAK
	KindPing       // PING:
	KindEndPrelude // END PRELUDE:

	numKinds
)

// shape is the body layout shared by several kinds.
type shape int

const (
	shapeUnknown shape = iota
	shapePreamble
	shapeDevice
	shapeLabels
	shapeRouting
	shapeLocks
	shapePortStatus
	shapeDirections
	shapeSettings
	shapeControl
)

type kindInfo struct {
	header string
	name   string
	shape  shape
}

var kindTable = [numKinds]kindInfo{
	KindUnknown:    {"", "unknown", shapeUnknown},
	KindPreamble:   {"PROTOCOL PREAMBLE:", "preamble", shapePreamble},
	KindDeviceInfo: {"VIDEOHUB DEVICE:", "device-info", shapeDevice},

	KindInputLabels:            {"INPUT LABELS:", "input-labels", shapeLabels},
	KindOutputLabels:           {"OUTPUT LABELS:", "output-labels", shapeLabels},
	KindMonitoringOutputLabels: {"MONITORING OUTPUT LABELS:", "monitoring-output-labels", shapeLabels},
	KindSerialPortLabels:       {"SERIAL PORT LABELS:", "serial-port-labels", shapeLabels},
	KindFrameLabels:            {"FRAME LABELS:", "frame-labels", shapeLabels},

	KindVideoOutputRouting:           {"VIDEO OUTPUT ROUTING:", "video-output-routing", shapeRouting},
	KindVideoMonitoringOutputRouting: {"VIDEO MONITORING OUTPUT ROUTING:", "video-monitoring-output-routing", shapeRouting},
	KindSerialPortRouting:            {"SERIAL PORT ROUTING:", "serial-port-routing", shapeRouting},
	KindProcessingUnitRouting:        {"PROCESSING UNIT ROUTING:", "processing-unit-routing", shapeRouting},
	KindFrameBufferRouting:           {"FRAME BUFFER ROUTING:", "frame-buffer-routing", shapeRouting},

	KindVideoOutputLocks:      {"VIDEO OUTPUT LOCKS:", "video-output-locks", shapeLocks},
	KindMonitoringOutputLocks: {"MONITORING OUTPUT LOCKS:", "monitoring-output-locks", shapeLocks},
	KindSerialPortLocks:       {"SERIAL PORT LOCKS:", "serial-port-locks", shapeLocks},
	KindProcessingUnitLocks:   {"PROCESSING UNIT LOCKS:", "processing-unit-locks", shapeLocks},
	KindFrameBufferLocks:      {"FRAME BUFFER LOCKS:", "frame-buffer-locks", shapeLocks},

	KindVideoInputStatus:  {"VIDEO INPUT STATUS:", "video-input-status", shapePortStatus},
	KindVideoOutputStatus: {"VIDEO OUTPUT STATUS:", "video-output-status", shapePortStatus},
	KindSerialPortStatus:  {"SERIAL PORT STATUS:", "serial-port-status", shapePortStatus},

	KindSerialPortDirections: {"SERIAL PORT DIRECTIONS:", "serial-port-directions", shapeDirections},

	KindAlarmStatus:   {"ALARM STATUS:", "alarm-status", shapeSettings},
	KindConfiguration: {"CONFIGURATION:", "configuration", shapeSettings},

	KindAck:        {"ACK", "ack", shapeControl},
	KindNak:        {"NAK", "nak", shapeControl},
	KindPing:       {"PING:", "ping", shapeControl},
	KindEndPrelude: {"END PRELUDE:", "end-prelude", shapeControl},
}

// headerAliases lists header spellings seen in the wild that map onto a documented kind.
var headerAliases = map[string]Kind{
	"MONITOR OUTPUT LABELS": KindMonitoringOutputLabels,
}

// kindByHeader maps normalized header text to its kind.
var kindByHeader = func() map[string]Kind {
	m := make(map[string]Kind, int(numKinds)+len(headerAliases))
	for k := KindPreamble; k < numKinds; k++ {
		m[normalizeHeader(kindTable[k].header)] = k
	}
	for alias, k := range headerAliases {
		m[alias] = k
	}

	return m
}()

// KindOf returns the kind identified by a header line.
//
// The comparison ignores letter case, surrounding whitespace, repeated inner whitespace and a
// trailing colon, so "ping", "PING:" and " Ping :" all identify KindPing.
// It returns KindUnknown for an unrecognized header.
func KindOf(header string) Kind {
	if k, ok := kindByHeader[normalizeHeader(header)]; ok {
		return k
	}

	return KindUnknown
}

// Header returns the canonical header line of the kind, e.g. "INPUT LABELS:".
// It returns an empty string for KindUnknown.
func (k Kind) Header() string {
	if !k.valid() {
		return ""
	}

	return kindTable[k].header
}

// String returns string representation of the kind.
func (k Kind) String() string {
	if !k.valid() {
		return "undefined"
	}

	return kindTable[k].name
}

func (k Kind) valid() bool {
	return k >= KindUnknown && k < numKinds
}

func (k Kind) shape() shape {
	if !k.valid() {
		return shapeUnknown
	}

	return kindTable[k].shape
}

// indexed reports whether body lines of the kind are "<index> <value>" lines.
func (k Kind) indexed() bool {
	switch k.shape() {
	case shapeLabels, shapeRouting, shapeLocks, shapePortStatus, shapeDirections:
		return true
	default:
		return false
	}
}

// separator returns the text joining a key and a value when rendering an extra field.
func (k Kind) separator() string {
	if k.indexed() {
		return " "
	}

	return ": "
}

func normalizeHeader(header string) string {
	h := strings.TrimSpace(header)
	h = strings.TrimSuffix(h, ":")

	return strings.ToUpper(strings.Join(strings.Fields(h), " "))
}
