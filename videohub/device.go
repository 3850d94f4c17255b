package videohub

import "strings"

// DevicePresence is the value of the "Device present" field.
type DevicePresence int

// Device presence values.
const (
	DeviceAbsent      DevicePresence = iota // false
	DevicePresent                           // true
	DeviceNeedsUpdate                       // needs_update
)

// String returns the wire representation of the presence value.
func (p DevicePresence) String() string {
	switch p {
	case DeviceAbsent:
		return "false"
	case DevicePresent:
		return "true"
	case DeviceNeedsUpdate:
		return "needs_update"
	default:
		return "undefined"
	}
}

// ParseDevicePresence parses a "Device present" value. It is case-insensitive.
func ParseDevicePresence(s string) (DevicePresence, bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return DevicePresent, true
	case strings.EqualFold(s, "false"):
		return DeviceAbsent, true
	case strings.EqualFold(s, "needs_update"):
		return DeviceNeedsUpdate, true
	default:
		return 0, false
	}
}

// DeviceInfo is the VIDEOHUB DEVICE block describing the router.
//
//	VIDEOHUB DEVICE:
//	Device present: true
//	Model name: Blackmagic Smart Videohub 12x12
//	Video inputs: 12
//	Video outputs: 12
//
// Every field is optional; a nil field was not present in the block and is not encoded.
type DeviceInfo struct {
	Present                *DevicePresence
	ModelName              *string
	FriendlyName           *string
	UniqueID               *string
	VideoInputs            *uint32
	VideoProcessingUnits   *uint32
	VideoOutputs           *uint32
	VideoMonitoringOutputs *uint32
	SerialPorts            *uint32
	Remainder
}

var deviceFields = []fieldDef[DeviceInfo]{
	{
		key: "Device present",
		decode: func(m *DeviceInfo, value string) bool {
			p, ok := ParseDevicePresence(value)
			if !ok {
				return false
			}
			m.Present = &p
			return true
		},
		encode: func(m *DeviceInfo) (string, bool) {
			if m.Present == nil {
				return "", false
			}
			return m.Present.String(), true
		},
	},
	textField("Model name", func(m *DeviceInfo) **string { return &m.ModelName }),
	textField("Friendly name", func(m *DeviceInfo) **string { return &m.FriendlyName }),
	textField("Unique ID", func(m *DeviceInfo) **string { return &m.UniqueID }),
	countField("Video inputs", func(m *DeviceInfo) **uint32 { return &m.VideoInputs }),
	countField("Video processing units", func(m *DeviceInfo) **uint32 { return &m.VideoProcessingUnits }),
	countField("Video outputs", func(m *DeviceInfo) **uint32 { return &m.VideoOutputs }),
	countField("Video monitoring outputs", func(m *DeviceInfo) **uint32 { return &m.VideoMonitoringOutputs }),
	countField("Serial ports", func(m *DeviceInfo) **uint32 { return &m.SerialPorts }),
}

// ensure DeviceInfo implements the Message interface.
var _ Message = (*DeviceInfo)(nil)

// Kind implements Message.Kind.
func (m *DeviceInfo) Kind() Kind { return KindDeviceInfo }

// Header implements Message.Header.
func (m *DeviceInfo) Header() string { return KindDeviceInfo.Header() }

// MarshalText implements Message.MarshalText.
func (m *DeviceInfo) MarshalText() ([]byte, error) { return Encode(m) }

// Clone implements Message.Clone.
func (m *DeviceInfo) Clone() Message {
	return &DeviceInfo{
		Present:                clonePtr(m.Present),
		ModelName:              clonePtr(m.ModelName),
		FriendlyName:           clonePtr(m.FriendlyName),
		UniqueID:               clonePtr(m.UniqueID),
		VideoInputs:            clonePtr(m.VideoInputs),
		VideoProcessingUnits:   clonePtr(m.VideoProcessingUnits),
		VideoOutputs:           clonePtr(m.VideoOutputs),
		VideoMonitoringOutputs: clonePtr(m.VideoMonitoringOutputs),
		SerialPorts:            clonePtr(m.SerialPorts),
		Remainder:              m.Remainder.clone(),
	}
}

func (m *DeviceInfo) appendBody(dst []byte) ([]byte, error) {
	return appendFields(dst, m, deviceFields)
}
