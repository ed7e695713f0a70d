package comm

import (
	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/params"
)

// ParamStore is the parameter store as seen by the Manager.
type ParamStore interface {
	Count() int
	Lookup(name string) (params.ID, bool)
	Name(params.ID) string
	Type(params.ID) params.Type
	Int(params.ID) int32
	Float(params.ID) float32
	SetInt(params.ID, int32) bool
	SetFloat(params.ID, float32) bool
	AddCallback(params.ID, params.ChangeFunc)
	Read() bool
	Write() bool
	SetDefaults()
}

// Board abstracts the hardware.
type Board interface {
	ClockMicros() uint64
	ClockMillis() uint32
	// ClockDelay blocks for the given milliseconds.
	ClockDelay(ms uint32)
	// SerialFlush writes out everything queued on the link.
	SerialFlush()
	// Reset restarts the board, into the bootloader if requested.
	Reset(bootloader bool)
	// BackupData returns fault data persisted across the last reset.
	BackupData() (link.BackupData, bool)
	NumSensorErrors() uint32
	// RCRead returns the normalized value of an RC channel.
	RCRead(channel int) float32
}

// FlightState is the state machine snapshot.
type FlightState struct {
	Armed      bool
	Failsafe   bool
	ErrorCodes uint32
}

// StateManager owns arming and failsafe.
type StateManager interface {
	State() FlightState
}

// SensorData is the latest sensor snapshot.
type SensorData struct {
	IMUTemperature float32

	DiffPressureValid    bool
	DiffPressureVelocity float32
	DiffPressure         float32
	DiffPressureTemp     float32

	BaroValid       bool
	BaroAltitude    float32
	BaroPressure    float32
	BaroTemperature float32

	SonarRangeValid bool
	SonarRange      float32

	MagPresent bool
	Mag        link.Vector
}

// Sensors provides sensor data and calibration.
type Sensors interface {
	Data() SensorData
	FilteredIMU() (acc, gyro link.Vector, stampUS uint64)
	StartIMUCalibration() bool
	StartGyroCalibration() bool
	StartBaroCalibration() bool
	StartDiffPressureCalibration() bool
}

// EstimatorState is the attitude estimate.
type EstimatorState struct {
	TimestampUS     uint64
	Attitude        link.Quaternion
	AngularVelocity link.Vector
}

// Estimator estimates attitude.
type Estimator interface {
	State() EstimatorState
	SetAttitudeCorrection(link.Quaternion)
}

// CommandMux muxes RC and offboard setpoints.
type CommandMux interface {
	// SetNewOffboardCommand replaces any pending offboard command.
	SetNewOffboardCommand(Control)
	CombinedControl() Control
	RCOverrideActive() bool
	OffboardControlActive() bool
}

// Mixer produces actuator outputs.
type Mixer interface {
	Outputs() []float32
}

// RCController is the attitude controller, as far as RC trim goes.
type RCController interface {
	CalculateEquilibriumTorqueFromRC() bool
}

// LoopTimer reports the host loop time.
type LoopTimer interface {
	LoopTimeUS() uint32
}

// System groups the collaborators of a Manager.
type System struct {
	Params     ParamStore
	Board      Board
	State      StateManager
	Sensors    Sensors
	Estimator  Estimator
	Mux        CommandMux
	Mixer      Mixer
	Controller RCController
	Timer      LoopTimer
}
