package params

// ID identifies a parameter, valid IDs are in [0, Count).
type ID int

// Type is the stored type of a parameter.
type Type int

// Parameter types.
const (
	TypeInvalid Type = iota
	TypeInt32
	TypeFloat
)

// Parameter IDs.
const (
	SystemID ID = iota
	BaudRate
	SerialDevice
	FixedWing

	StreamHeartbeatRate
	StreamStatusRate
	StreamAttitudeRate
	StreamIMURate
	StreamAirspeedRate
	StreamBaroRate
	StreamSonarRate
	StreamMagRate
	StreamOutputRawRate
	StreamRCRawRate

	GyroLPFAlpha
	AccLPFAlpha
	ArmThreshold
	RCMaxRoll
	RCMaxPitch
	RCMaxYawRate

	// Count is the number of parameters.
	Count
)

// MaxNameLen is the longest parameter name accepted on the link.
const MaxNameLen = 16

type definition struct {
	name string
	typ  Type
	i    int32
	f    float32
}

func intParam(name string, def int32) definition {
	return definition{name: name, typ: TypeInt32, i: def}
}

func floatParam(name string, def float32) definition {
	return definition{name: name, typ: TypeFloat, f: def}
}

var definitions = [Count]definition{
	SystemID:     intParam("SYS_ID", 1),
	BaudRate:     intParam("BAUD_RATE", 921600),
	SerialDevice: intParam("SERIAL_DEVICE", 0),
	FixedWing:    intParam("FIXED_WING", 0),

	StreamHeartbeatRate: intParam("STRM_HRTBT", 1),
	StreamStatusRate:    intParam("STRM_STATUS", 10),
	StreamAttitudeRate:  intParam("STRM_ATTITUDE", 200),
	StreamIMURate:       intParam("STRM_IMU", 250),
	StreamAirspeedRate:  intParam("STRM_AIRSPEED", 50),
	StreamBaroRate:      intParam("STRM_BARO", 50),
	StreamSonarRate:     intParam("STRM_SONAR", 40),
	StreamMagRate:       intParam("STRM_MAG", 75),
	StreamOutputRawRate: intParam("STRM_SERVO", 50),
	StreamRCRawRate:     intParam("STRM_RC", 50),

	GyroLPFAlpha: floatParam("GYRO_LPF_ALPHA", 0.3),
	AccLPFAlpha:  floatParam("ACC_LPF_ALPHA", 0.5),
	ArmThreshold: floatParam("ARM_THRESHOLD", 0.15),
	RCMaxRoll:    floatParam("RC_MAX_ROLL", 0.786),
	RCMaxPitch:   floatParam("RC_MAX_PITCH", 0.786),
	RCMaxYawRate: floatParam("RC_MAX_YAWRATE", 3.14159),
}
