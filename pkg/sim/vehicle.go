package sim

import (
	"math"

	"github.com/robotalks/fcu.go/pkg/comm"
	fx "github.com/robotalks/fcu.go/pkg/framework"
	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/params"
	"github.com/robotalks/fcu.go/pkg/rc"
)

// Params is the parameter access needed by the vehicle.
type Params interface {
	Int(params.ID) int32
	Float(params.ID) float32
}

// Simulation constants.
const (
	// OffboardTimeoutMS is how long an offboard command stays active.
	OffboardTimeoutMS = 100
	// RCDeadband is the stick deflection which overrides offboard control.
	RCDeadband = 0.05
	// AngleGain converts angle error to a rate setpoint, 1/s.
	AngleGain = 4.0
	// ClimbRate is the vertical speed at full throttle above hover, m/s.
	ClimbRate = 2.0
	// HoverThrottle is the throttle which holds altitude.
	HoverThrottle = 0.5

	baroPressureMSL = 101325
	baroTemperature = 25
	imuTemperature  = 35
)

// Vehicle simulates the flight stack around the link manager: arming,
// sensors, attitude estimate, command mux, mixer and controller.
type Vehicle struct {
	Board  *Board
	Params Params

	state    comm.FlightState
	attitude Euler
	rates    link.Vector
	altitude float32

	acc, gyro  link.Vector
	imuStampUS uint64
	gyroBias   link.Vector
	baroOffset float32

	offboard comm.Control
	rcCmd    comm.Control
	combined comm.Control
	rcActive bool
	trim     link.Vector

	outputs [4]float32
	lastUS  uint64
	started bool
}

// InitialGyroBias is the gyro bias before calibration.
var InitialGyroBias = link.Vector{X: 0.01, Y: -0.005, Z: 0.002}

// NewVehicle creates a Vehicle on the board.
func NewVehicle(board *Board, p Params) *Vehicle {
	return &Vehicle{Board: board, Params: p, gyroBias: InitialGyroBias}
}

// AddToLoop implements LoopAdder.
func (v *Vehicle) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PrLvSense, fx.ControlFunc(func(fx.ControlContext) error {
		v.Sense()
		return nil
	}))
	loop.AddController(fx.PrLvControl, fx.ControlFunc(func(fx.ControlContext) error {
		v.Control()
		return nil
	}))
	loop.AddController(fx.PrLvActuate, fx.ControlFunc(func(fx.ControlContext) error {
		v.Actuate()
		return nil
	}))
}

// Sense updates the filtered sensor readings from the simulated attitude.
func (v *Vehicle) Sense() {
	now := v.Board.ClockMicros()
	acc := v.attitude.Gravity()
	gyro := link.Vector{
		X: v.rates.X + v.gyroBias.X,
		Y: v.rates.Y + v.gyroBias.Y,
		Z: v.rates.Z + v.gyroBias.Z,
	}
	if !finite(acc) || !finite(gyro) {
		v.Board.SensorError()
		return
	}
	v.acc = lpf(v.acc, acc, v.Params.Float(params.AccLPFAlpha))
	v.gyro = lpf(v.gyro, gyro, v.Params.Float(params.GyroLPFAlpha))
	v.imuStampUS = now
}

// Control handles arming and muxes RC and offboard commands.
func (v *Vehicle) Control() {
	b := v.Board
	throttle := b.RCRead(rc.ChannelThrottle)
	switch armSwitch := b.RCRead(rc.ChannelAux1) > 0.5; {
	case !armSwitch:
		v.state.Armed = false
	case !v.state.Armed && throttle < v.Params.Float(params.ArmThreshold):
		v.state.Armed = true
	}

	stick := func(ch int) float32 { return (b.RCRead(ch) - 0.5) * 2 }
	roll, pitch, yaw := stick(rc.ChannelRoll), stick(rc.ChannelPitch), stick(rc.ChannelYaw)
	v.rcCmd = comm.Control{
		X:       comm.ControlChannel{Value: roll*v.Params.Float(params.RCMaxRoll) - v.trim.X, Active: true, Type: comm.Angle},
		Y:       comm.ControlChannel{Value: pitch*v.Params.Float(params.RCMaxPitch) - v.trim.Y, Active: true, Type: comm.Angle},
		Z:       comm.ControlChannel{Value: yaw*v.Params.Float(params.RCMaxYawRate) - v.trim.Z, Active: true, Type: comm.Rate},
		F:       comm.ControlChannel{Value: throttle, Active: true, Type: comm.Throttle},
		StampMS: b.ClockMillis(),
	}
	v.rcActive = abs(roll) > RCDeadband || abs(pitch) > RCDeadband || abs(yaw) > RCDeadband

	v.combined = v.rcCmd
	if v.OffboardControlActive() && !v.rcActive {
		v.combined = muxControl(v.offboard, v.rcCmd)
	}
}

// Actuate mixes the combined command and integrates the vehicle motion.
func (v *Vehicle) Actuate() {
	now := v.Board.ClockMicros()
	dt := float32(0)
	if v.started {
		dt = float32(now-v.lastUS) / 1e6
	}
	v.lastUS, v.started = now, true

	c := v.combined
	if !v.state.Armed {
		v.outputs = [4]float32{}
		v.rates = link.Vector{}
		return
	}
	v.rates = link.Vector{
		X: v.rateFor(c.X, v.attitude.Roll),
		Y: v.rateFor(c.Y, v.attitude.Pitch),
		Z: v.rateFor(c.Z, v.attitude.Yaw),
	}
	throttle := c.F.Value
	v.outputs = [4]float32{
		clamp01(throttle - v.rates.X + v.rates.Y + v.rates.Z),
		clamp01(throttle + v.rates.X - v.rates.Y + v.rates.Z),
		clamp01(throttle + v.rates.X + v.rates.Y - v.rates.Z),
		clamp01(throttle - v.rates.X - v.rates.Y - v.rates.Z),
	}
	v.attitude.Roll = v.attitude.Roll.AddRadians(float64(v.rates.X * dt))
	v.attitude.Pitch = v.attitude.Pitch.AddRadians(float64(v.rates.Y * dt))
	v.attitude.Yaw = v.attitude.Yaw.AddRadians(float64(v.rates.Z * dt))
	v.altitude += (throttle - HoverThrottle) * 2 * ClimbRate * dt
	if v.altitude < 0 {
		v.altitude = 0
	}
}

func (v *Vehicle) rateFor(ch comm.ControlChannel, angle Angle) float32 {
	if !ch.Active {
		return 0
	}
	switch ch.Type {
	case comm.Angle:
		return AngleGain * (ch.Value - float32(angle.Radians()))
	default:
		return ch.Value
	}
}

// State implements comm.StateManager.
func (v *Vehicle) State() comm.FlightState {
	return v.state
}

// Data implements comm.Sensors.
func (v *Vehicle) Data() comm.SensorData {
	alt := v.altitude - v.baroOffset
	yaw := v.attitude.Yaw.Radians()
	return comm.SensorData{
		IMUTemperature: imuTemperature,

		BaroValid:       true,
		BaroAltitude:    alt,
		BaroPressure:    float32(baroPressureMSL * math.Pow(1-2.25577e-5*float64(alt), 5.25588)),
		BaroTemperature: baroTemperature,

		SonarRangeValid: v.altitude < comm.SonarMaxRange,
		SonarRange:      v.altitude,

		MagPresent: true,
		Mag:        link.Vector{X: float32(math.Cos(yaw)) * 0.2, Y: -float32(math.Sin(yaw)) * 0.2, Z: 0.4},
	}
}

// FilteredIMU implements comm.Sensors.
func (v *Vehicle) FilteredIMU() (acc, gyro link.Vector, stampUS uint64) {
	return v.acc, v.gyro, v.imuStampUS
}

// StartIMUCalibration implements comm.Sensors.
func (v *Vehicle) StartIMUCalibration() bool {
	v.acc = v.attitude.Gravity()
	return true
}

// StartGyroCalibration implements comm.Sensors.
func (v *Vehicle) StartGyroCalibration() bool {
	v.gyroBias = link.Vector{}
	return true
}

// StartBaroCalibration implements comm.Sensors.
func (v *Vehicle) StartBaroCalibration() bool {
	v.baroOffset = v.altitude
	return true
}

// StartDiffPressureCalibration implements comm.Sensors. There is no
// airspeed sensor on the simulated vehicle.
func (v *Vehicle) StartDiffPressureCalibration() bool {
	return false
}

// EstimatorState returns the attitude estimate.
func (v *Vehicle) EstimatorState() comm.EstimatorState {
	return comm.EstimatorState{
		TimestampUS:     v.imuStampUS,
		Attitude:        v.attitude.Quaternion(),
		AngularVelocity: v.gyro,
	}
}

// SetAttitudeCorrection implements comm.Estimator.
func (v *Vehicle) SetAttitudeCorrection(q link.Quaternion) {
	v.attitude = EulerFromQuaternion(q)
}

// SetNewOffboardCommand implements comm.CommandMux.
func (v *Vehicle) SetNewOffboardCommand(c comm.Control) {
	v.offboard = c
}

// CombinedControl implements comm.CommandMux.
func (v *Vehicle) CombinedControl() comm.Control {
	return v.combined
}

// RCOverrideActive implements comm.CommandMux.
func (v *Vehicle) RCOverrideActive() bool {
	return v.rcActive && v.OffboardControlActive()
}

// OffboardControlActive implements comm.CommandMux.
func (v *Vehicle) OffboardControlActive() bool {
	if v.offboard.StampMS == 0 {
		return false
	}
	return v.Board.ClockMillis()-v.offboard.StampMS < OffboardTimeoutMS
}

// Outputs implements comm.Mixer.
func (v *Vehicle) Outputs() []float32 {
	return v.outputs[:]
}

// CalculateEquilibriumTorqueFromRC implements comm.RCController, the
// current stick deflection becomes the trim.
func (v *Vehicle) CalculateEquilibriumTorqueFromRC() bool {
	v.trim = link.Vector{
		X: v.rcCmd.X.Value + v.trim.X,
		Y: v.rcCmd.Y.Value + v.trim.Y,
		Z: v.rcCmd.Z.Value + v.trim.Z,
	}
	return true
}

// Estimator adapts the vehicle to comm.Estimator.
func (v *Vehicle) Estimator() comm.Estimator {
	return estimator{v}
}

type estimator struct {
	*Vehicle
}

func (e estimator) State() comm.EstimatorState {
	return e.EstimatorState()
}

// muxControl takes each active offboard channel, RC fills the rest.
func muxControl(offboard, rcCmd comm.Control) comm.Control {
	pick := func(o, r comm.ControlChannel) comm.ControlChannel {
		if o.Active {
			return o
		}
		return r
	}
	return comm.Control{
		X:       pick(offboard.X, rcCmd.X),
		Y:       pick(offboard.Y, rcCmd.Y),
		Z:       pick(offboard.Z, rcCmd.Z),
		F:       pick(offboard.F, rcCmd.F),
		StampMS: offboard.StampMS,
	}
}

func lpf(prev, cur link.Vector, alpha float32) link.Vector {
	return link.Vector{
		X: alpha*prev.X + (1-alpha)*cur.X,
		Y: alpha*prev.Y + (1-alpha)*cur.Y,
		Z: alpha*prev.Z + (1-alpha)*cur.Z,
	}
}

func finite(v link.Vector) bool {
	for _, f := range [...]float32{v.X, v.Y, v.Z} {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return false
		}
	}
	return true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
