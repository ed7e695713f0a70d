package link

import "fmt"

// MsgID identifies a message type on the wire.
type MsgID uint8

// Message IDs. Inbound requests are in 0x01-0x1f, telemetry from 0x20.
const (
	MsgHeartbeat          MsgID = 0x01
	MsgParamRequestList   MsgID = 0x02
	MsgParamRequestRead   MsgID = 0x03
	MsgParamSetInt        MsgID = 0x04
	MsgParamSetFloat      MsgID = 0x05
	MsgOffboardControl    MsgID = 0x06
	MsgCommand            MsgID = 0x07
	MsgTimesync           MsgID = 0x08
	MsgAttitudeCorrection MsgID = 0x09

	MsgStatus          MsgID = 0x20
	MsgAttitude        MsgID = 0x21
	MsgIMU             MsgID = 0x22
	MsgOutputRaw       MsgID = 0x23
	MsgRCRaw           MsgID = 0x24
	MsgDiffPressure    MsgID = 0x25
	MsgBaro            MsgID = 0x26
	MsgSonar           MsgID = 0x27
	MsgMag             MsgID = 0x28
	MsgNamedValueInt   MsgID = 0x29
	MsgNamedValueFloat MsgID = 0x2a
	MsgParamValue      MsgID = 0x2b
	MsgCommandAck      MsgID = 0x2c
	MsgVersion         MsgID = 0x2d
	MsgLog             MsgID = 0x2e
	MsgErrorData       MsgID = 0x2f
)

// CommandKind enumerates discrete maintenance commands.
type CommandKind int32

// Command kinds.
const (
	CommandReadParams CommandKind = iota
	CommandWriteParams
	CommandSetParamDefaults
	CommandAccelCalibration
	CommandGyroCalibration
	CommandBaroCalibration
	CommandAirspeedCalibration
	CommandRCCalibration
	CommandReboot
	CommandRebootToBootloader
	CommandSendVersion
)

var commandNames = map[CommandKind]string{
	CommandReadParams:          "read-params",
	CommandWriteParams:         "write-params",
	CommandSetParamDefaults:    "set-param-defaults",
	CommandAccelCalibration:    "accel-calibration",
	CommandGyroCalibration:     "gyro-calibration",
	CommandBaroCalibration:     "baro-calibration",
	CommandAirspeedCalibration: "airspeed-calibration",
	CommandRCCalibration:       "rc-calibration",
	CommandReboot:              "reboot",
	CommandRebootToBootloader:  "reboot-to-bootloader",
	CommandSendVersion:         "send-version",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int32(k))
}

// ParseCommandKind resolves a command by its String form.
func ParseCommandKind(name string) (CommandKind, bool) {
	for k, n := range commandNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// ControlMode is the offboard control mode, also reported in Status.
type ControlMode int32

// Control modes.
const (
	ModePassThrough ControlMode = iota
	ModeRollRatePitchRateYawRateThrottle
	ModeRollPitchYawRateThrottle
)

// LogSeverity is the severity of a device log message.
type LogSeverity int32

// Severities.
const (
	LogInfo LogSeverity = iota
	LogWarning
	LogError
	LogCritical
)

func (s LogSeverity) String() string {
	switch s {
	case LogInfo:
		return "INFO"
	case LogWarning:
		return "WARN"
	case LogError:
		return "ERROR"
	case LogCritical:
		return "CRIT"
	}
	return fmt.Sprintf("severity(%d)", int32(s))
}

// ParamType tags the value carried by ParamValue.
type ParamType int32

// Param types.
const (
	ParamTypeInvalid ParamType = iota
	ParamTypeInt32
	ParamTypeFloat
)

// Vector is a 3-axis value.
type Vector struct {
	X, Y, Z float32
}

// Quaternion is an attitude, W first.
type Quaternion struct {
	W, X, Y, Z float32
}

// Identity is the zero rotation.
var Identity = Quaternion{W: 1}

// BackupData is the fault diagnostic block a board keeps across resets.
type BackupData struct {
	ErrorCode  uint32
	ResetCount uint32
	ArmFlag    uint32
	PC         uint32
	LR         uint32
}

// OffboardChannel is one axis of an OffboardControl request.
type OffboardChannel struct {
	Value float32
	Valid bool
}
