package ground

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/fcu.go/pkg/comm"
	"github.com/robotalks/fcu.go/pkg/fcu"
	fx "github.com/robotalks/fcu.go/pkg/framework"
	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/params"
)

const testTimeout = 5 * time.Second

func startStation() (*Station, context.Context, func()) {
	fcEnd, gsEnd := memPair()
	loop := fx.NewLoop()
	fc := fcu.New(loop, params.New(""), func(uint32, uint32) (link.PacketReadWriter, error) {
		return fcEnd, nil
	}, nil)
	fc.Boot()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	st := New(gsEnd)
	st.HeartbeatInterval = 20 * time.Millisecond
	runner := fx.NewRunnerWith(ctx).Go(loop, st)
	return st, ctx, func() {
		cancel()
		runner.Wait()
	}
}

func TestRequestParams(t *testing.T) {
	st, ctx, stop := startStation()
	defer stop()
	values, err := st.RequestParams(ctx)
	require.NoError(t, err)
	require.Len(t, values, int(params.Count))
	for n, val := range values {
		require.Equal(t, uint32(n), val.Index)
		require.Equal(t, uint32(params.Count), val.Count)
	}
	require.Equal(t, "SYS_ID", values[0].ParamID)
	require.Equal(t, int32(1), values[0].IntValue)
	require.Equal(t, values, st.Params())
}

func TestGetSetParam(t *testing.T) {
	st, ctx, stop := startStation()
	defer stop()
	val, err := st.GetParam(ctx, "STRM_STATUS")
	require.NoError(t, err)
	require.Equal(t, link.ParamTypeInt32, val.Type)
	require.Equal(t, int32(10), val.IntValue)

	val, err = st.SetParam(ctx, "STRM_STATUS", "20")
	require.NoError(t, err)
	require.Equal(t, int32(20), val.IntValue)

	val, err = st.SetParam(ctx, "ARM_THRESHOLD", "0.25")
	require.NoError(t, err)
	require.Equal(t, link.ParamTypeFloat, val.Type)
	require.InDelta(t, 0.25, val.FloatValue, 1e-6)

	_, err = st.SetParam(ctx, "STRM_STATUS", "fast")
	require.Error(t, err)

	shortCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = st.GetParam(shortCtx, "NO_SUCH_PARAM")
	require.Error(t, err)
}

func TestCommand(t *testing.T) {
	st, ctx, stop := startStation()
	defer stop()
	ok, err := st.Command(ctx, link.CommandGyroCalibration)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.Command(ctx, link.CommandAirspeedCalibration)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.Command(ctx, link.CommandWriteParams)
	require.NoError(t, err)
	require.False(t, ok)

	version, err := st.Version(ctx)
	require.NoError(t, err)
	require.Equal(t, comm.Version, version)
}

func TestTimesync(t *testing.T) {
	st, ctx, stop := startStation()
	defer stop()
	rtt, remote, err := st.Timesync(ctx)
	require.NoError(t, err)
	require.True(t, rtt > 0)
	require.True(t, remote > 0)
	require.Zero(t, remote%1000)
}

func TestRebootReplaysBootLog(t *testing.T) {
	st, ctx, stop := startStation()
	defer stop()
	booted := make(chan struct{}, 1)
	rebooted := false
	unwatch := st.Watch(func(_ uint8, msg link.Message) {
		switch m := msg.(type) {
		case *link.CommandAck:
			if m.Command == link.CommandReboot {
				rebooted = true
			}
		case *link.LogMessage:
			if rebooted && m.Text == "Booting" {
				select {
				case booted <- struct{}{}:
				default:
				}
			}
		}
	})
	defer unwatch()

	ok, err := st.Command(ctx, link.CommandReboot)
	require.NoError(t, err)
	require.True(t, ok)
	select {
	case <-booted:
	case <-ctx.Done():
		t.Fatal("Booting not received after reboot")
	}
}

func TestWatch(t *testing.T) {
	st, ctx, stop := startStation()
	defer stop()
	got := make(chan link.Message, 1)
	unwatch := st.Watch(func(sysid uint8, msg link.Message) {
		if _, ok := msg.(*link.Status); ok && sysid == 1 {
			select {
			case got <- msg:
			default:
			}
		}
	})
	select {
	case msg := <-got:
		require.False(t, msg.(*link.Status).Armed)
	case <-ctx.Done():
		t.Fatal("no status received")
	}
	unwatch()
}
