package sim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/fcu.go/pkg/comm"
	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/params"
	"github.com/robotalks/fcu.go/pkg/rc"
)

type sticks [rc.Channels]float32

func (s *sticks) Channel(ch int) float32 { return s[ch] }

type clock struct {
	now   time.Time
	slept time.Duration
}

func (c *clock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestVehicle() (*Vehicle, *sticks, *clock) {
	c := &clock{now: time.Unix(1000, 0)}
	b := NewBoard()
	b.start, b.now = c.now, func() time.Time { return c.now }
	b.sleep = func(d time.Duration) { c.slept += d; c.advance(d) }
	s := sticks(rc.Neutral)
	b.RC = &s
	return NewVehicle(b, params.New("")), &s, c
}

// Vehicle and its estimator adapter satisfy the manager collaborators.
var (
	_ comm.Board        = &Board{}
	_ comm.StateManager = &Vehicle{}
	_ comm.Sensors      = &Vehicle{}
	_ comm.CommandMux   = &Vehicle{}
	_ comm.Mixer        = &Vehicle{}
	_ comm.RCController = &Vehicle{}
	_ comm.Estimator    = estimator{}
)

func TestAngle(t *testing.T) {
	require.InDelta(t, math.Pi/2, AngleFromDegrees(90).Radians(), 1e-9)
	require.InDelta(t, -90, AngleFromDegrees(270).Degrees(), 1e-9)
	require.InDelta(t, 0, AngleFromRadians(4*math.Pi).Radians(), 1e-9)
	require.InDelta(t, -math.Pi+0.1, AngleFromRadians(math.Pi-0.1).AddRadians(0.2).Radians(), 1e-9)
}

func TestEulerQuaternion(t *testing.T) {
	require.Equal(t, link.Identity, Euler{}.Quaternion())
	e := Euler{Roll: AngleFromDegrees(10), Pitch: AngleFromDegrees(-20), Yaw: AngleFromDegrees(135)}
	back := EulerFromQuaternion(e.Quaternion())
	require.InDelta(t, e.Roll.Radians(), back.Roll.Radians(), 1e-5)
	require.InDelta(t, e.Pitch.Radians(), back.Pitch.Radians(), 1e-5)
	require.InDelta(t, e.Yaw.Radians(), back.Yaw.Radians(), 1e-5)

	g := Euler{}.Gravity()
	require.InDelta(t, -9.80665, g.Z, 1e-5)
}

func TestBoardClock(t *testing.T) {
	v, _, c := newTestVehicle()
	b := v.Board
	require.EqualValues(t, 0, b.ClockMicros())
	c.advance(1500 * time.Microsecond)
	require.EqualValues(t, 1500, b.ClockMicros())
	require.EqualValues(t, 1, b.ClockMillis())
	b.ClockDelay(20)
	require.Equal(t, 20*time.Millisecond, c.slept)
	require.EqualValues(t, 21, b.ClockMillis())
}

func TestBoardReset(t *testing.T) {
	b := NewBoard()
	_, ok := b.BackupData()
	require.False(t, ok)

	var resets []bool
	b.OnReset = func(bootloader bool) { resets = append(resets, bootloader) }
	b.Reset(true)
	b.Reset(false)
	require.Equal(t, []bool{true, false}, resets)
	data, ok := b.BackupData()
	require.True(t, ok)
	require.EqualValues(t, 2, data.ResetCount)

	flushed := 0
	b.Flush = func() { flushed++ }
	b.SerialFlush()
	require.Equal(t, 1, flushed)
	require.Equal(t, rc.Neutral[rc.ChannelRoll], b.RCRead(rc.ChannelRoll))
	require.Equal(t, float32(0), b.RCRead(rc.Channels))
}

func TestBoardBackupData(t *testing.T) {
	b := NewBoard()
	b.SetBackupData(link.BackupData{ErrorCode: 7, PC: 0x800})
	data, ok := b.BackupData()
	require.True(t, ok)
	require.Equal(t, link.BackupData{ErrorCode: 7, PC: 0x800}, data)
}

func TestSenseCountsSensorErrors(t *testing.T) {
	v, _, _ := newTestVehicle()
	v.Sense()
	gyro := v.gyro
	v.rates.X = float32(math.NaN())
	v.Sense()
	require.EqualValues(t, 1, v.Board.NumSensorErrors())
	require.Equal(t, gyro, v.gyro)
}

func TestArming(t *testing.T) {
	v, s, _ := newTestVehicle()
	s[rc.ChannelThrottle] = 0.5
	s[rc.ChannelAux1] = 1
	v.Control()
	require.False(t, v.State().Armed, "throttle above arm threshold")

	s[rc.ChannelThrottle] = 0
	v.Control()
	require.True(t, v.State().Armed)

	s[rc.ChannelThrottle] = 0.8
	v.Control()
	require.True(t, v.State().Armed)

	s[rc.ChannelAux1] = 0
	v.Control()
	require.False(t, v.State().Armed)
}

func TestOffboardMux(t *testing.T) {
	v, s, c := newTestVehicle()
	c.advance(time.Second)
	require.False(t, v.OffboardControlActive())

	v.SetNewOffboardCommand(comm.Control{
		X:       comm.ControlChannel{Value: 0.3, Active: true, Type: comm.Rate},
		StampMS: v.Board.ClockMillis(),
	})
	v.Control()
	require.True(t, v.OffboardControlActive())
	require.False(t, v.RCOverrideActive())
	require.Equal(t, comm.Rate, v.CombinedControl().X.Type)
	require.Equal(t, float32(0.3), v.CombinedControl().X.Value)
	require.Equal(t, comm.Angle, v.CombinedControl().Y.Type)

	s[rc.ChannelRoll] = 0.9
	v.Control()
	require.True(t, v.RCOverrideActive())
	require.Equal(t, comm.Angle, v.CombinedControl().X.Type)

	s[rc.ChannelRoll] = 0.5
	c.advance(OffboardTimeoutMS * time.Millisecond)
	v.Control()
	require.False(t, v.OffboardControlActive())
	require.Equal(t, comm.Angle, v.CombinedControl().X.Type)
}

func TestFlight(t *testing.T) {
	v, s, c := newTestVehicle()
	s[rc.ChannelAux1] = 1
	v.Control()
	require.True(t, v.State().Armed)

	s[rc.ChannelThrottle] = 1
	for i := 0; i < 100; i++ {
		v.Sense()
		v.Control()
		v.Actuate()
		c.advance(10 * time.Millisecond)
	}
	require.True(t, v.Data().BaroAltitude > 1)
	for _, out := range v.Outputs() {
		require.True(t, out > 0)
	}

	s[rc.ChannelAux1] = 0
	v.Control()
	v.Actuate()
	require.Equal(t, []float32{0, 0, 0, 0}, v.Outputs())
}

func TestCalibration(t *testing.T) {
	v, _, _ := newTestVehicle()
	v.Sense()
	_, gyro, _ := v.FilteredIMU()
	require.NotEqual(t, link.Vector{}, gyro)

	require.True(t, v.StartGyroCalibration())
	for i := 0; i < 100; i++ {
		v.Sense()
	}
	_, gyro, _ = v.FilteredIMU()
	require.InDelta(t, 0, gyro.X, 1e-6)

	v.altitude = 3
	require.True(t, v.StartBaroCalibration())
	require.Equal(t, float32(0), v.Data().BaroAltitude)
	require.False(t, v.StartDiffPressureCalibration())
	require.False(t, v.Data().DiffPressureValid)
}

func TestRCTrim(t *testing.T) {
	v, s, _ := newTestVehicle()
	s[rc.ChannelRoll] = 0.6
	v.Control()
	require.True(t, v.CalculateEquilibriumTorqueFromRC())
	v.Control()
	require.InDelta(t, 0, v.CombinedControl().X.Value, 1e-6)
}

func TestAttitudeCorrection(t *testing.T) {
	v, _, _ := newTestVehicle()
	q := Euler{Yaw: AngleFromDegrees(90)}.Quaternion()
	v.Estimator().SetAttitudeCorrection(q)
	got := v.Estimator().State().Attitude
	require.InDelta(t, q.W, got.W, 1e-6)
	require.InDelta(t, q.Z, got.Z, 1e-6)
}
