package rc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/fcu.go/pkg/rc/joystick"
)

func TestApply(t *testing.T) {
	r := NewReceiver()
	require.Equal(t, float32(0.5), r.Channel(ChannelRoll))
	require.Equal(t, float32(0), r.Channel(ChannelThrottle))

	r.Apply(joystick.Event{Kind: joystick.EventAxis, Index: ChannelThrottle, Value: 32767})
	require.Equal(t, float32(1), r.Channel(ChannelThrottle))
	r.Apply(joystick.Event{Kind: joystick.EventAxis, Index: ChannelRoll, Value: -32767})
	require.Equal(t, float32(0), r.Channel(ChannelRoll))
	r.Apply(joystick.Event{Kind: joystick.EventAxis, Index: 6, Value: 100})

	r.Apply(joystick.Event{Kind: joystick.EventButton, Index: 1, Value: 1})
	require.Equal(t, float32(1), r.Channel(ChannelAux1+1))
	r.Apply(joystick.Event{Kind: joystick.EventButton, Index: 1, Value: 0})
	require.Equal(t, float32(0), r.Channel(ChannelAux1+1))
	r.Apply(joystick.Event{Kind: joystick.EventButton, Index: 9, Value: 1})

	require.Equal(t, float32(0), r.Channel(-1))
	require.Equal(t, float32(0), r.Channel(Channels))
}

func TestControlDrainsUpdates(t *testing.T) {
	r := NewReceiver()
	r.updates <- update{event: joystick.Event{Kind: joystick.EventAxis, Index: ChannelYaw, Value: 32767}}
	r.updates <- update{event: joystick.Event{Kind: joystick.EventButton, Index: 0, Value: 1}}
	require.NoError(t, r.Control(nil))
	require.Equal(t, float32(1), r.Channel(ChannelYaw))
	require.Equal(t, float32(1), r.Channel(ChannelAux1))

	r.updates <- update{lost: true}
	require.NoError(t, r.Control(nil))
	require.Equal(t, Neutral[ChannelYaw], r.Channel(ChannelYaw))
	require.Equal(t, float32(0), r.Channel(ChannelAux1))
}
