package fcu

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/fcu.go/pkg/comm"
	fx "github.com/robotalks/fcu.go/pkg/framework"
	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/params"
)

type discard struct {
	written int
}

func (d *discard) ReadPacket() ([]byte, error) { return nil, io.EOF }
func (d *discard) WritePacket([]byte) error    { d.written++; return nil }

func newTestFC() (*FlightController, *fx.Loop, *discard) {
	rw := &discard{}
	loop := fx.NewLoop()
	fc := New(loop, params.New(""), func(uint32, uint32) (link.PacketReadWriter, error) {
		return rw, nil
	}, nil)
	return fc, loop, rw
}

func TestBootAppliesParams(t *testing.T) {
	fc, loop, rw := newTestFC()
	require.Zero(t, fc.Manager.StreamPeriodUS(comm.StreamStatus))
	fc.Boot()
	require.Equal(t, uint32(100000), fc.Manager.StreamPeriodUS(comm.StreamStatus))
	require.Equal(t, 1, fc.Manager.BufferedLogs())

	loop.RunOnce(context.Background())
	require.NotZero(t, rw.written)
}

func TestResetReboots(t *testing.T) {
	fc, loop, _ := newTestFC()
	fc.Boot()
	fc.Board.Reset(false)
	require.Equal(t, 1, fc.Manager.BufferedLogs())
	loop.RunOnce(context.Background())
	require.Equal(t, 2, fc.Manager.BufferedLogs())
	data, ok := fc.Board.BackupData()
	require.True(t, ok)
	require.Equal(t, uint32(1), data.ResetCount)

	loop.RunOnce(context.Background())
	require.Equal(t, 2, fc.Manager.BufferedLogs())
}
