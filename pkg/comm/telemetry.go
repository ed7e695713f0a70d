package comm

import (
	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/params"
)

// Sonar range limits reported with every range message.
const (
	SonarMaxRange = 8.0
	SonarMinRange = 0.25
)

// RCChannels is the number of RC channels reported.
const RCChannels = 8

// UpdateStatus sends the status immediately.
func (m *Manager) UpdateStatus() {
	m.sendStatus()
}

// SendNamedValueInt sends a named debug value.
func (m *Manager) SendNamedValueInt(name string, value int32) {
	m.send(&link.NamedValueInt{TimestampMS: m.sys.Board.ClockMillis(), Name: name, Value: value})
}

// SendNamedValueFloat sends a named debug value.
func (m *Manager) SendNamedValueFloat(name string, value float32) {
	m.send(&link.NamedValueFloat{TimestampMS: m.sys.Board.ClockMillis(), Name: name, Value: value})
}

func (m *Manager) fixedWing() bool {
	return m.sys.Params.Int(params.FixedWing) != 0
}

func (m *Manager) sendHeartbeat() {
	m.send(&link.Heartbeat{FixedWing: m.fixedWing()})
}

func (m *Manager) controlMode() link.ControlMode {
	switch {
	case m.fixedWing():
		return link.ModePassThrough
	case m.sys.Mux.CombinedControl().X.Type == Angle:
		return link.ModeRollPitchYawRateThrottle
	default:
		return link.ModeRollRatePitchRateYawRateThrottle
	}
}

func (m *Manager) sendStatus() {
	if !m.initialized {
		return
	}
	state := m.sys.State.State()
	m.send(&link.Status{
		Armed:           state.Armed,
		Failsafe:        state.Failsafe,
		RCOverride:      m.sys.Mux.RCOverrideActive(),
		Offboard:        m.sys.Mux.OffboardControlActive(),
		ErrorCodes:      state.ErrorCodes,
		ControlMode:     m.controlMode(),
		NumSensorErrors: m.sys.Board.NumSensorErrors(),
		LoopTimeUS:      m.sys.Timer.LoopTimeUS(),
	})
}

func (m *Manager) sendAttitude() {
	est := m.sys.Estimator.State()
	m.send(&link.Attitude{
		TimestampUS: est.TimestampUS,
		QW:          est.Attitude.W,
		QX:          est.Attitude.X,
		QY:          est.Attitude.Y,
		QZ:          est.Attitude.Z,
		RollRate:    est.AngularVelocity.X,
		PitchRate:   est.AngularVelocity.Y,
		YawRate:     est.AngularVelocity.Z,
	})
}

func (m *Manager) sendIMU() {
	acc, gyro, stamp := m.sys.Sensors.FilteredIMU()
	m.send(&link.IMU{
		TimestampUS: stamp,
		AccX:        acc.X,
		AccY:        acc.Y,
		AccZ:        acc.Z,
		GyroX:       gyro.X,
		GyroY:       gyro.Y,
		GyroZ:       gyro.Z,
		Temperature: m.sys.Sensors.Data().IMUTemperature,
	})
}

func (m *Manager) sendOutputRaw() {
	m.send(&link.OutputRaw{
		TimestampMS: m.sys.Board.ClockMillis(),
		Values:      m.sys.Mixer.Outputs(),
	})
}

// sendRCRaw reuses the message and its values on every tick; Link.Send
// encodes before returning.
func (m *Manager) sendRCRaw() {
	for i := range m.rcValues {
		m.rcValues[i] = uint32(uint16(m.sys.Board.RCRead(i) * 1000))
	}
	m.rcRaw = link.RCRaw{TimestampMS: m.sys.Board.ClockMillis(), Values: m.rcValues[:]}
	m.send(&m.rcRaw)
}

func (m *Manager) sendDiffPressure() {
	if d := m.sys.Sensors.Data(); d.DiffPressureValid {
		m.send(&link.DiffPressure{
			Velocity:    d.DiffPressureVelocity,
			Pressure:    d.DiffPressure,
			Temperature: d.DiffPressureTemp,
		})
	}
}

func (m *Manager) sendBaro() {
	if d := m.sys.Sensors.Data(); d.BaroValid {
		m.send(&link.Baro{
			Altitude:    d.BaroAltitude,
			Pressure:    d.BaroPressure,
			Temperature: d.BaroTemperature,
		})
	}
}

func (m *Manager) sendSonar() {
	if d := m.sys.Sensors.Data(); d.SonarRangeValid {
		m.send(&link.Sonar{
			Range:    d.SonarRange,
			MaxRange: SonarMaxRange,
			MinRange: SonarMinRange,
		})
	}
}

func (m *Manager) sendMag() {
	if d := m.sys.Sensors.Data(); d.MagPresent {
		m.send(&link.Mag{X: d.Mag.X, Y: d.Mag.Y, Z: d.Mag.Z})
	}
}
