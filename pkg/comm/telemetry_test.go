package comm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/params"
)

func TestStatusControlMode(t *testing.T) {
	tests := []struct {
		name      string
		fixedWing bool
		xType     ControlType
		mode      link.ControlMode
	}{
		{"fixed-wing", true, Angle, link.ModePassThrough},
		{"angle", false, Angle, link.ModeRollPitchYawRateThrottle},
		{"rate", false, Rate, link.ModeRollRatePitchRateYawRateThrottle},
		{"passthrough", false, PassThrough, link.ModeRollRatePitchRateYawRateThrottle},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := newRig().init()
			if test.fixedWing {
				r.params.SetInt(params.FixedWing, 1)
			}
			r.mux.combined.X.Type = test.xType
			r.m.UpdateStatus()
			msgs := r.link.take()
			require.Len(t, msgs, 1)
			require.Equal(t, test.mode, msgs[0].(*link.Status).ControlMode)
		})
	}
}

func TestStatus(t *testing.T) {
	r := newRig()
	r.m.UpdateStatus()
	require.Empty(t, r.link.take())

	r.init()
	r.state.state = FlightState{Armed: true, ErrorCodes: 0x11}
	r.mux.offboard = true
	r.board.errors = 4
	r.m.UpdateStatus()
	require.Equal(t, []link.Message{&link.Status{
		Armed:           true,
		Offboard:        true,
		ErrorCodes:      0x11,
		ControlMode:     link.ModeRollRatePitchRateYawRateThrottle,
		NumSensorErrors: 4,
		LoopTimeUS:      1234,
	}}, r.link.take())
}

func TestSensorStreamsGated(t *testing.T) {
	r := newRig().init()
	r.params.NotifyAll()
	r.params.SetInt(params.StreamHeartbeatRate, 0)
	r.params.SetInt(params.StreamStatusRate, 0)
	r.params.SetInt(params.StreamAttitudeRate, 0)
	r.params.SetInt(params.StreamIMURate, 0)
	r.params.SetInt(params.StreamOutputRawRate, 0)
	r.params.SetInt(params.StreamRCRawRate, 0)

	r.m.Stream()
	require.Empty(t, r.link.take())

	r.sensors.data = SensorData{
		DiffPressureValid: true, DiffPressure: 101,
		BaroValid: true, BaroAltitude: 12,
		SonarRangeValid: true, SonarRange: 1.5,
		MagPresent: true, Mag: link.Vector{X: 1, Y: 2, Z: 3},
	}
	r.board.nowUS += 1000000
	r.m.Stream()
	require.Equal(t, []link.Message{
		&link.DiffPressure{Pressure: 101},
		&link.Baro{Altitude: 12},
		&link.Sonar{Range: 1.5, MaxRange: SonarMaxRange, MinRange: SonarMinRange},
		&link.Mag{X: 1, Y: 2, Z: 3},
	}, r.link.take())
}

func TestStreamsOncePerTick(t *testing.T) {
	r := newRig().init()
	r.params.NotifyAll()
	r.board.nowUS = 10000001
	r.m.Stream()
	msgs := r.link.take()
	seen := map[link.MsgID]int{}
	for _, msg := range msgs {
		seen[msg.MsgID()]++
	}
	for id, n := range seen {
		require.Equal(t, 1, n, "msg %#02x", uint8(id))
	}
	require.Equal(t, 1, seen[link.MsgHeartbeat])
	require.Equal(t, 1, seen[link.MsgStatus])
	require.Equal(t, 1, seen[link.MsgAttitude])
	require.Equal(t, 1, seen[link.MsgIMU])
	require.Equal(t, 1, seen[link.MsgOutputRaw])
	require.Equal(t, 1, seen[link.MsgRCRaw])
	require.Equal(t, 1, r.board.flushes)

	r.m.Stream()
	require.Empty(t, r.link.take())
}

func TestTelemetryValues(t *testing.T) {
	r := newRig().init()
	r.board.nowUS = 5000
	r.board.rc = [RCChannels]float32{1, 0.5, 0, 1.5}
	r.estimator.state = EstimatorState{
		TimestampUS:     77,
		Attitude:        link.Identity,
		AngularVelocity: link.Vector{X: 0.1, Y: 0.2, Z: 0.3},
	}
	r.sensors.acc = link.Vector{Z: -9.8}
	r.sensors.gyro = link.Vector{X: 0.01}
	r.sensors.stampUS = 4900
	r.sensors.data.IMUTemperature = 30

	r.m.sendAttitude()
	r.m.sendIMU()
	r.m.sendOutputRaw()
	r.m.sendRCRaw()
	r.m.SendNamedValueInt("count", 3)
	r.m.SendNamedValueFloat("gain", 0.5)
	require.Equal(t, []link.Message{
		&link.Attitude{TimestampUS: 77, QW: 1, RollRate: 0.1, PitchRate: 0.2, YawRate: 0.3},
		&link.IMU{TimestampUS: 4900, AccZ: -9.8, GyroX: 0.01, Temperature: 30},
		&link.OutputRaw{TimestampMS: 5, Values: []float32{0.1, 0.2}},
		&link.RCRaw{TimestampMS: 5, Values: []uint32{1000, 500, 0, 1500, 0, 0, 0, 0}},
		&link.NamedValueInt{TimestampMS: 5, Name: "count", Value: 3},
		&link.NamedValueFloat{TimestampMS: 5, Name: "gain", Value: 0.5},
	}, r.link.take())
	require.Equal(t, []uint8{1, 1, 1, 1, 1, 1}, r.link.sysids)
}

func TestRCRawReusesValues(t *testing.T) {
	r := newRig().init()
	r.board.rc = [RCChannels]float32{1}
	r.m.sendRCRaw()
	first := r.link.take()[0].(*link.RCRaw).Values
	require.EqualValues(t, 1000, first[0])

	r.board.rc = [RCChannels]float32{0.5}
	r.m.sendRCRaw()
	second := r.link.take()[0].(*link.RCRaw).Values
	require.EqualValues(t, 500, second[0])
	require.True(t, &first[0] == &second[0])
}
