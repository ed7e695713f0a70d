package comm

import "github.com/robotalks/fcu.go/pkg/link"

// ControlType is how the mixer interprets a channel.
type ControlType int

// Control types.
const (
	PassThrough ControlType = iota
	Rate
	Angle
	Throttle
)

func (t ControlType) String() string {
	switch t {
	case PassThrough:
		return "passthrough"
	case Rate:
		return "rate"
	case Angle:
		return "angle"
	case Throttle:
		return "throttle"
	}
	return "unknown"
}

// ControlChannel is one axis of a Control.
type ControlChannel struct {
	Value  float32
	Active bool
	Type   ControlType
}

// Control is a setpoint for the command mux.
type Control struct {
	X, Y, Z, F ControlChannel
	StampMS    uint32
}

var modeTypes = map[link.ControlMode][4]ControlType{
	link.ModePassThrough:                      {PassThrough, PassThrough, PassThrough, Throttle},
	link.ModeRollRatePitchRateYawRateThrottle: {Rate, Rate, Rate, Throttle},
	link.ModeRollPitchYawRateThrottle:         {Angle, Angle, Rate, Throttle},
}

// TranslateOffboard converts an offboard control request.
// Values and validity flags are copied as they are. An unknown mode leaves
// every channel as PassThrough.
func TranslateOffboard(msg *link.OffboardControl, stampMS uint32) Control {
	types := modeTypes[msg.Mode]
	ch := msg.Channels()
	var out [4]ControlChannel
	for i := range out {
		out[i] = ControlChannel{Value: ch[i].Value, Active: ch[i].Valid, Type: types[i]}
	}
	return Control{X: out[0], Y: out[1], Z: out[2], F: out[3], StampMS: stampMS}
}
