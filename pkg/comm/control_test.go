package comm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/fcu.go/pkg/link"
)

func TestTranslateOffboard(t *testing.T) {
	tests := []struct {
		mode  link.ControlMode
		types [4]ControlType
	}{
		{link.ModePassThrough, [4]ControlType{PassThrough, PassThrough, PassThrough, Throttle}},
		{link.ModeRollRatePitchRateYawRateThrottle, [4]ControlType{Rate, Rate, Rate, Throttle}},
		{link.ModeRollPitchYawRateThrottle, [4]ControlType{Angle, Angle, Rate, Throttle}},
	}
	inputs := []link.OffboardControl{
		{X: 0.5, Y: -0.25, Z: 3, F: 0.7, XValid: true, YValid: false, ZValid: true, FValid: false},
		{X: -100, Y: 1e6, Z: 0, F: -1, XValid: false, YValid: true, ZValid: false, FValid: true},
		{},
	}
	for _, test := range tests {
		for _, in := range inputs {
			in := in
			in.Mode = test.mode
			c := TranslateOffboard(&in, 42)
			ch := [4]ControlChannel{c.X, c.Y, c.Z, c.F}
			src := in.Channels()
			for i := range ch {
				require.Equal(t, test.types[i], ch[i].Type, "mode %d channel %d", test.mode, i)
				require.Equal(t, src[i].Value, ch[i].Value)
				require.Equal(t, src[i].Valid, ch[i].Active)
			}
			require.EqualValues(t, 42, c.StampMS)
		}
	}
}

func TestTranslateOffboardUnknownMode(t *testing.T) {
	c := TranslateOffboard(&link.OffboardControl{Mode: 99, F: 1, FValid: true}, 0)
	require.Equal(t, PassThrough, c.F.Type)
	require.True(t, c.F.Active)
}
