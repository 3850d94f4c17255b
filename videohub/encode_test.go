package videohub

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncode_Messages(t *testing.T) {
	tests := []struct {
		description string
		msg         Message
		expected    string
	}{
		{
			description: "routing",
			msg:         NewVideoOutputRouting(Route{0, 3}, Route{1, 2}),
			expected:    "VIDEO OUTPUT ROUTING:\n0 3\n1 2\n\n",
		},
		{
			description: "empty routing",
			msg:         NewVideoOutputRouting(),
			expected:    "VIDEO OUTPUT ROUTING:\n\n",
		},
		{
			description: "preamble",
			msg:         NewPreamble("2.8"),
			expected:    "PROTOCOL PREAMBLE:\nVersion: 2.8\n\n",
		},
		{
			description: "preamble without version",
			msg:         NewPreamble(""),
			expected:    "PROTOCOL PREAMBLE:\n\n",
		},
		{
			description: "device fields in canonical order",
			msg: &DeviceInfo{
				SerialPorts:  Ptr(uint32(0)),
				VideoInputs:  Ptr(uint32(40)),
				ModelName:    Ptr("Blackmagic Videohub 40x40"),
				Present:      Ptr(DevicePresent),
				VideoOutputs: Ptr(uint32(40)),
			},
			expected: "VIDEOHUB DEVICE:\n" +
				"Device present: true\n" +
				"Model name: Blackmagic Videohub 40x40\n" +
				"Video inputs: 40\n" +
				"Video outputs: 40\n" +
				"Serial ports: 0\n\n",
		},
		{
			description: "labels",
			msg:         NewInputLabels(Label{0, "Camera 1"}, Label{1, ""}),
			expected:    "INPUT LABELS:\n0 Camera 1\n1 \n\n",
		},
		{
			description: "locks",
			msg:         NewVideoOutputLocks(Lock{0, LockForce}, Lock{5, LockOwned}),
			expected:    "VIDEO OUTPUT LOCKS:\n0 F\n5 O\n\n",
		},
		{
			description: "directions",
			msg:         NewSerialPortDirections(SerialPortDirection{0, DirectionControl}, SerialPortDirection{1, DirectionAuto}),
			expected:    "SERIAL PORT DIRECTIONS:\n0 control\n1 auto\n\n",
		},
		{
			description: "configuration",
			msg:         NewConfiguration(Setting{"Take Mode", "true"}),
			expected:    "CONFIGURATION:\nTake Mode: true\n\n",
		},
		{
			description: "ack",
			msg:         NewAck(),
			expected:    "ACK\n\n",
		},
		{
			description: "nak",
			msg:         NewNak(),
			expected:    "NAK\n\n",
		},
		{
			description: "ping",
			msg:         NewPing(),
			expected:    "PING:\n\n",
		},
		{
			description: "end prelude",
			msg:         NewEndPrelude(),
			expected:    "END PRELUDE:\n\n",
		},
		{
			description: "hand-built extra fields",
			msg: &Labels{
				kind:      KindOutputLabels,
				Entries:   []Label{{0, "Program"}},
				Remainder: Remainder{Extra: []Field{{Key: "x1", Value: "odd"}}},
			},
			expected: "OUTPUT LABELS:\n0 Program\nx1 odd\n\n",
		},
		{
			description: "hand-built key/value extra field",
			msg: &Preamble{
				Version:   "2.8",
				Remainder: Remainder{Extra: []Field{{Key: "Build", Value: "7"}}},
			},
			expected: "PROTOCOL PREAMBLE:\nVersion: 2.8\nBuild: 7\n\n",
		},
		{
			description: "unknown",
			msg:         NewUnknown("VENDOR THING:", "a", "b c"),
			expected:    "VENDOR THING:\na\nb c\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require := require.New(t)

			encoded, err := Encode(tt.msg)
			require.NoError(err)
			require.Equal(tt.expected, string(encoded))

			text, err := tt.msg.MarshalText()
			require.NoError(err)
			require.Equal(encoded, text)
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		description string
		msg         Message
		expectedErr error
	}{
		{"nil message", nil, ErrNilMessage},
		{"label with LF", NewInputLabels(Label{0, "a\nb"}), ErrLineBreak},
		{"label with CR", NewInputLabels(Label{0, "a\rb"}), ErrLineBreak},
		{"setting value with LF", NewConfiguration(Setting{"Take Mode", "x\n"}), ErrLineBreak},
		{"unknown empty header", NewUnknown("  "), ErrEmptyHeader},
		{"unknown header with LF", NewUnknown("A\nB:"), ErrLineBreak},
		{"unknown blank body line", NewUnknown("VENDOR:", "ok", ""), ErrBlankLine},
		{
			"blank raw extra field",
			&Control{kind: KindAck, Remainder: Remainder{Extra: []Field{{Raw: "\t"}}}},
			ErrBlankLine,
		},
		{
			"extra field with CR",
			&Preamble{Version: "2.8", Remainder: Remainder{Extra: []Field{{Key: "Note", Value: "a\rb"}}}},
			ErrLineBreak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require := require.New(t)

			dst := []byte("prefix")
			out, err := AppendMessage(dst, tt.msg)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal("prefix", string(out))
		})
	}
}

func TestEncode_AppendMessage(t *testing.T) {
	require := require.New(t)

	var buf []byte
	var err error
	buf, err = AppendMessage(buf, NewPing())
	require.NoError(err)
	buf, err = AppendMessage(buf, NewAck())
	require.NoError(err)
	require.Equal("PING:\n\nACK\n\n", string(buf))
}

func TestNewWithKind(t *testing.T) {
	require := require.New(t)

	_, err := NewLabels(KindVideoOutputRouting)
	require.ErrorIs(err, ErrKindMismatch)
	_, err = NewRouting(KindInputLabels)
	require.ErrorIs(err, ErrKindMismatch)
	_, err = NewLocks(KindAck)
	require.ErrorIs(err, ErrKindMismatch)
	_, err = NewPortStatus(KindConfiguration)
	require.ErrorIs(err, ErrKindMismatch)
	_, err = NewSettings(KindUnknown)
	require.ErrorIs(err, ErrKindMismatch)
	_, err = NewControl(KindPreamble)
	require.ErrorIs(err, ErrKindMismatch)

	labels, err := NewLabels(KindFrameLabels, Label{0, "Frame 1"})
	require.NoError(err)
	require.Equal("FRAME LABELS:", labels.Header())
	name, ok := labels.Name(0)
	require.True(ok)
	require.Equal("Frame 1", name)

	routing, err := NewRouting(KindProcessingUnitRouting, Route{0, 1})
	require.NoError(err)
	require.Equal(KindProcessingUnitRouting, routing.Kind())

	locks, err := NewLocks(KindSerialPortLocks, Lock{1, LockLocked})
	require.NoError(err)
	state, ok := locks.State(1)
	require.True(ok)
	require.Equal(LockLocked, state)

	status, err := NewPortStatus(KindSerialPortStatus, Port{0, PortTypeRS422})
	require.NoError(err)
	require.Equal("SERIAL PORT STATUS:", status.Header())

	alarm, err := NewSettings(KindAlarmStatus)
	require.NoError(err)
	require.Equal("ALARM STATUS:", alarm.Header())

	ctrl, err := NewControl(KindEndPrelude)
	require.NoError(err)
	require.Equal(KindEndPrelude, ctrl.Kind())
}

// messageGen generates messages that survive an encode/decode round trip unchanged.
func messageGen() *rapid.Generator[Message] {
	index := rapid.Uint32Range(0, 300)
	text := rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 ._/-]{0,14}[A-Za-z0-9]`)
	label := rapid.StringMatching(`[ A-Za-z0-9._:-]{0,16}`)

	kindOf := func(s shape) *rapid.Generator[Kind] {
		var kinds []Kind
		for k := KindPreamble; k < numKinds; k++ {
			if k.shape() == s {
				kinds = append(kinds, k)
			}
		}
		return rapid.SampledFrom(kinds)
	}

	optText := func(t *rapid.T, name string) *string {
		if rapid.Bool().Draw(t, name+"-set") {
			return Ptr(text.Draw(t, name))
		}
		return nil
	}
	optCount := func(t *rapid.T, name string) *uint32 {
		if rapid.Bool().Draw(t, name+"-set") {
			return Ptr(rapid.Uint32().Draw(t, name))
		}
		return nil
	}

	preamble := rapid.Custom(func(t *rapid.T) Message {
		return NewPreamble(rapid.StringMatching(`[0-9]\.[0-9]{1,2}`).Draw(t, "version"))
	})

	device := rapid.Custom(func(t *rapid.T) Message {
		m := &DeviceInfo{
			ModelName:              optText(t, "model"),
			FriendlyName:           optText(t, "friendly"),
			UniqueID:               optText(t, "id"),
			VideoInputs:            optCount(t, "inputs"),
			VideoProcessingUnits:   optCount(t, "units"),
			VideoOutputs:           optCount(t, "outputs"),
			VideoMonitoringOutputs: optCount(t, "monitoring"),
			SerialPorts:            optCount(t, "serial"),
		}
		if rapid.Bool().Draw(t, "present-set") {
			m.Present = Ptr(DevicePresence(rapid.IntRange(0, 2).Draw(t, "present")))
		}
		return m
	})

	labels := rapid.Custom(func(t *rapid.T) Message {
		entries := rapid.SliceOfNDistinct(rapid.Custom(func(t *rapid.T) Label {
			return Label{Index: index.Draw(t, "index"), Name: label.Draw(t, "name")}
		}), 0, 12, func(l Label) uint32 { return l.Index }).Draw(t, "labels")
		return &Labels{kind: kindOf(shapeLabels).Draw(t, "kind"), Entries: nilIfEmpty(entries)}
	})

	routing := rapid.Custom(func(t *rapid.T) Message {
		entries := rapid.SliceOfNDistinct(rapid.Custom(func(t *rapid.T) Route {
			return Route{Output: index.Draw(t, "output"), Input: rapid.Uint32().Draw(t, "input")}
		}), 0, 12, func(r Route) uint32 { return r.Output }).Draw(t, "routes")
		return &Routing{kind: kindOf(shapeRouting).Draw(t, "kind"), Entries: nilIfEmpty(entries)}
	})

	locks := rapid.Custom(func(t *rapid.T) Message {
		entries := rapid.SliceOfNDistinct(rapid.Custom(func(t *rapid.T) Lock {
			return Lock{Index: index.Draw(t, "index"), State: LockState(rapid.IntRange(0, 3).Draw(t, "state"))}
		}), 0, 12, func(l Lock) uint32 { return l.Index }).Draw(t, "locks")
		return &Locks{kind: kindOf(shapeLocks).Draw(t, "kind"), Entries: nilIfEmpty(entries)}
	})

	status := rapid.Custom(func(t *rapid.T) Message {
		entries := rapid.SliceOfNDistinct(rapid.Custom(func(t *rapid.T) Port {
			typ := rapid.SampledFrom([]PortType{
				PortTypeNone, PortTypeBNC, PortTypeOptical, PortTypeThunderbolt, PortTypeRS422, "12G-SDI", "HDMI",
			}).Draw(t, "type")
			return Port{Index: index.Draw(t, "index"), Type: typ}
		}), 0, 12, func(p Port) uint32 { return p.Index }).Draw(t, "ports")
		return &PortStatus{kind: kindOf(shapePortStatus).Draw(t, "kind"), Entries: nilIfEmpty(entries)}
	})

	directions := rapid.Custom(func(t *rapid.T) Message {
		entries := rapid.SliceOfNDistinct(rapid.Custom(func(t *rapid.T) SerialPortDirection {
			dir := PortDirection(rapid.IntRange(0, 2).Draw(t, "direction"))
			return SerialPortDirection{Index: index.Draw(t, "index"), Direction: dir}
		}), 0, 12, func(d SerialPortDirection) uint32 { return d.Index }).Draw(t, "directions")
		return &SerialPortDirections{Entries: nilIfEmpty(entries)}
	})

	settings := rapid.Custom(func(t *rapid.T) Message {
		entries := rapid.SliceOfNDistinct(rapid.Custom(func(t *rapid.T) Setting {
			value := ""
			if rapid.Bool().Draw(t, "value-set") {
				value = text.Draw(t, "value")
			}
			return Setting{Name: text.Draw(t, "name"), Value: value}
		}), 0, 8, func(s Setting) string { return s.Name }).Draw(t, "settings")
		return &Settings{kind: kindOf(shapeSettings).Draw(t, "kind"), Entries: nilIfEmpty(entries)}
	})

	control := rapid.Custom(func(t *rapid.T) Message {
		return &Control{kind: kindOf(shapeControl).Draw(t, "kind")}
	})

	unknown := rapid.Custom(func(t *rapid.T) Message {
		header := rapid.StringMatching(`X-[A-Z]{1,10}:`).Draw(t, "header")
		lines := rapid.SliceOfN(text, 0, 6).Draw(t, "lines")
		return &Unknown{HeaderLine: header, Lines: nilIfEmpty(lines)}
	})

	return rapid.OneOf(preamble, device, labels, routing, locks, status, directions, settings, control, unknown)
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}

	return s
}

func TestEncode_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := messageGen().Draw(t, "msg")

		encoded, err := Encode(msg)
		require.NoError(t, err)

		decoded, n, err := Parse(encoded)
		require.NoError(t, err)
		require.Equal(t, len(encoded), n)
		require.Equal(t, msg, decoded)
	})
}

func TestEncode_ExtraFieldsSurviveRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := messageGen().Draw(t, "msg")
		if msg.Kind() == KindUnknown || msg.Kind().shape() == shapeSettings {
			t.Skip("every line is structured for unknown and settings blocks")
		}

		// append a line that can never map onto a structured field of any kind
		key := rapid.StringMatching(`zz[a-z]{1,8}`).Draw(t, "key")
		value := rapid.StringMatching(`[a-z0-9]{1,8}`).Draw(t, "value")
		line := key + msg.Kind().separator() + value

		encoded, err := Encode(msg)
		require.NoError(t, err)
		withExtra := append(encoded[:len(encoded)-1:len(encoded)-1], []byte(line+"\n\n")...)

		decoded, _, err := Parse(withExtra)
		require.NoError(t, err)
		require.Equal(t, []Field{{Key: key, Value: value, Raw: line}}, decoded.ExtraFields())

		reencoded, err := Encode(decoded)
		require.NoError(t, err)
		require.Equal(t, string(withExtra), string(reencoded))
	})
}
