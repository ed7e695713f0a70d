package link

import (
	"github.com/golang/protobuf/proto"
)

// Status summarizes the flight state.
type Status struct {
	Armed           bool        `protobuf:"varint,1,opt,name=armed,proto3" json:"armed,omitempty"`
	Failsafe        bool        `protobuf:"varint,2,opt,name=failsafe,proto3" json:"failsafe,omitempty"`
	RCOverride      bool        `protobuf:"varint,3,opt,name=rc_override,proto3" json:"rc_override,omitempty"`
	Offboard        bool        `protobuf:"varint,4,opt,name=offboard,proto3" json:"offboard,omitempty"`
	ErrorCodes      uint32      `protobuf:"varint,5,opt,name=error_codes,proto3" json:"error_codes,omitempty"`
	ControlMode     ControlMode `protobuf:"varint,6,opt,name=control_mode,proto3" json:"control_mode,omitempty"`
	NumSensorErrors uint32      `protobuf:"varint,7,opt,name=num_sensor_errors,proto3" json:"num_sensor_errors,omitempty"`
	LoopTimeUS      uint32      `protobuf:"varint,8,opt,name=loop_time_us,proto3" json:"loop_time_us,omitempty"`
}

// MsgID implements Message.
func (m *Status) MsgID() MsgID { return MsgStatus }

// ProtoMessage implements proto.Message.
func (m *Status) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Status) Reset() { *m = Status{} }

// String implements proto.Message.
func (m *Status) String() string { return proto.CompactTextString(m) }

// Attitude is the estimated attitude and body rates.
type Attitude struct {
	TimestampUS uint64  `protobuf:"varint,1,opt,name=timestamp_us,proto3" json:"timestamp_us,omitempty"`
	QW          float32 `protobuf:"fixed32,2,opt,name=qw,proto3" json:"qw,omitempty"`
	QX          float32 `protobuf:"fixed32,3,opt,name=qx,proto3" json:"qx,omitempty"`
	QY          float32 `protobuf:"fixed32,4,opt,name=qy,proto3" json:"qy,omitempty"`
	QZ          float32 `protobuf:"fixed32,5,opt,name=qz,proto3" json:"qz,omitempty"`
	RollRate    float32 `protobuf:"fixed32,6,opt,name=roll_rate,proto3" json:"roll_rate,omitempty"`
	PitchRate   float32 `protobuf:"fixed32,7,opt,name=pitch_rate,proto3" json:"pitch_rate,omitempty"`
	YawRate     float32 `protobuf:"fixed32,8,opt,name=yaw_rate,proto3" json:"yaw_rate,omitempty"`
}

// MsgID implements Message.
func (m *Attitude) MsgID() MsgID { return MsgAttitude }

// ProtoMessage implements proto.Message.
func (m *Attitude) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Attitude) Reset() { *m = Attitude{} }

// String implements proto.Message.
func (m *Attitude) String() string { return proto.CompactTextString(m) }

// IMU is one filtered IMU sample.
type IMU struct {
	TimestampUS uint64  `protobuf:"varint,1,opt,name=timestamp_us,proto3" json:"timestamp_us,omitempty"`
	AccX        float32 `protobuf:"fixed32,2,opt,name=acc_x,proto3" json:"acc_x,omitempty"`
	AccY        float32 `protobuf:"fixed32,3,opt,name=acc_y,proto3" json:"acc_y,omitempty"`
	AccZ        float32 `protobuf:"fixed32,4,opt,name=acc_z,proto3" json:"acc_z,omitempty"`
	GyroX       float32 `protobuf:"fixed32,5,opt,name=gyro_x,proto3" json:"gyro_x,omitempty"`
	GyroY       float32 `protobuf:"fixed32,6,opt,name=gyro_y,proto3" json:"gyro_y,omitempty"`
	GyroZ       float32 `protobuf:"fixed32,7,opt,name=gyro_z,proto3" json:"gyro_z,omitempty"`
	Temperature float32 `protobuf:"fixed32,8,opt,name=temperature,proto3" json:"temperature,omitempty"`
}

// MsgID implements Message.
func (m *IMU) MsgID() MsgID { return MsgIMU }

// ProtoMessage implements proto.Message.
func (m *IMU) ProtoMessage() {}

// Reset implements proto.Message.
func (m *IMU) Reset() { *m = IMU{} }

// String implements proto.Message.
func (m *IMU) String() string { return proto.CompactTextString(m) }

// OutputRaw reports raw actuator outputs.
type OutputRaw struct {
	TimestampMS uint32    `protobuf:"varint,1,opt,name=timestamp_ms,proto3" json:"timestamp_ms,omitempty"`
	Values      []float32 `protobuf:"fixed32,2,rep,packed,name=values,proto3" json:"values,omitempty"`
}

// MsgID implements Message.
func (m *OutputRaw) MsgID() MsgID { return MsgOutputRaw }

// ProtoMessage implements proto.Message.
func (m *OutputRaw) ProtoMessage() {}

// Reset implements proto.Message.
func (m *OutputRaw) Reset() { *m = OutputRaw{} }

// String implements proto.Message.
func (m *OutputRaw) String() string { return proto.CompactTextString(m) }

// RCRaw reports raw RC channels in microseconds.
type RCRaw struct {
	TimestampMS uint32   `protobuf:"varint,1,opt,name=timestamp_ms,proto3" json:"timestamp_ms,omitempty"`
	Values      []uint32 `protobuf:"varint,2,rep,packed,name=values,proto3" json:"values,omitempty"`
}

// MsgID implements Message.
func (m *RCRaw) MsgID() MsgID { return MsgRCRaw }

// ProtoMessage implements proto.Message.
func (m *RCRaw) ProtoMessage() {}

// Reset implements proto.Message.
func (m *RCRaw) Reset() { *m = RCRaw{} }

// String implements proto.Message.
func (m *RCRaw) String() string { return proto.CompactTextString(m) }

// DiffPressure reports airspeed sensor readings.
type DiffPressure struct {
	Velocity    float32 `protobuf:"fixed32,1,opt,name=velocity,proto3" json:"velocity,omitempty"`
	Pressure    float32 `protobuf:"fixed32,2,opt,name=pressure,proto3" json:"pressure,omitempty"`
	Temperature float32 `protobuf:"fixed32,3,opt,name=temperature,proto3" json:"temperature,omitempty"`
}

// MsgID implements Message.
func (m *DiffPressure) MsgID() MsgID { return MsgDiffPressure }

// ProtoMessage implements proto.Message.
func (m *DiffPressure) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DiffPressure) Reset() { *m = DiffPressure{} }

// String implements proto.Message.
func (m *DiffPressure) String() string { return proto.CompactTextString(m) }

// Baro reports barometer readings.
type Baro struct {
	Altitude    float32 `protobuf:"fixed32,1,opt,name=altitude,proto3" json:"altitude,omitempty"`
	Pressure    float32 `protobuf:"fixed32,2,opt,name=pressure,proto3" json:"pressure,omitempty"`
	Temperature float32 `protobuf:"fixed32,3,opt,name=temperature,proto3" json:"temperature,omitempty"`
}

// MsgID implements Message.
func (m *Baro) MsgID() MsgID { return MsgBaro }

// ProtoMessage implements proto.Message.
func (m *Baro) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Baro) Reset() { *m = Baro{} }

// String implements proto.Message.
func (m *Baro) String() string { return proto.CompactTextString(m) }

// Sonar reports a rangefinder reading.
type Sonar struct {
	Type     uint32  `protobuf:"varint,1,opt,name=type,proto3" json:"type,omitempty"`
	Range    float32 `protobuf:"fixed32,2,opt,name=range,proto3" json:"range,omitempty"`
	MaxRange float32 `protobuf:"fixed32,3,opt,name=max_range,proto3" json:"max_range,omitempty"`
	MinRange float32 `protobuf:"fixed32,4,opt,name=min_range,proto3" json:"min_range,omitempty"`
}

// MsgID implements Message.
func (m *Sonar) MsgID() MsgID { return MsgSonar }

// ProtoMessage implements proto.Message.
func (m *Sonar) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Sonar) Reset() { *m = Sonar{} }

// String implements proto.Message.
func (m *Sonar) String() string { return proto.CompactTextString(m) }

// Mag reports the magnetometer field.
type Mag struct {
	X float32 `protobuf:"fixed32,1,opt,name=x,proto3" json:"x,omitempty"`
	Y float32 `protobuf:"fixed32,2,opt,name=y,proto3" json:"y,omitempty"`
	Z float32 `protobuf:"fixed32,3,opt,name=z,proto3" json:"z,omitempty"`
}

// MsgID implements Message.
func (m *Mag) MsgID() MsgID { return MsgMag }

// ProtoMessage implements proto.Message.
func (m *Mag) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Mag) Reset() { *m = Mag{} }

// String implements proto.Message.
func (m *Mag) String() string { return proto.CompactTextString(m) }

// NamedValueInt is a free-form debug integer.
type NamedValueInt struct {
	TimestampMS uint32 `protobuf:"varint,1,opt,name=timestamp_ms,proto3" json:"timestamp_ms,omitempty"`
	Name        string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Value       int32  `protobuf:"varint,3,opt,name=value,proto3" json:"value,omitempty"`
}

// MsgID implements Message.
func (m *NamedValueInt) MsgID() MsgID { return MsgNamedValueInt }

// ProtoMessage implements proto.Message.
func (m *NamedValueInt) ProtoMessage() {}

// Reset implements proto.Message.
func (m *NamedValueInt) Reset() { *m = NamedValueInt{} }

// String implements proto.Message.
func (m *NamedValueInt) String() string { return proto.CompactTextString(m) }

// NamedValueFloat is a free-form debug float.
type NamedValueFloat struct {
	TimestampMS uint32  `protobuf:"varint,1,opt,name=timestamp_ms,proto3" json:"timestamp_ms,omitempty"`
	Name        string  `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Value       float32 `protobuf:"fixed32,3,opt,name=value,proto3" json:"value,omitempty"`
}

// MsgID implements Message.
func (m *NamedValueFloat) MsgID() MsgID { return MsgNamedValueFloat }

// ProtoMessage implements proto.Message.
func (m *NamedValueFloat) ProtoMessage() {}

// Reset implements proto.Message.
func (m *NamedValueFloat) Reset() { *m = NamedValueFloat{} }

// String implements proto.Message.
func (m *NamedValueFloat) String() string { return proto.CompactTextString(m) }

// ParamValue reports one parameter. Only the value matching Type is meaningful.
type ParamValue struct {
	ParamID    string    `protobuf:"bytes,1,opt,name=param_id,proto3" json:"param_id,omitempty"`
	Index      uint32    `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
	Count      uint32    `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Type       ParamType `protobuf:"varint,4,opt,name=type,proto3" json:"type,omitempty"`
	IntValue   int32     `protobuf:"varint,5,opt,name=int_value,proto3" json:"int_value,omitempty"`
	FloatValue float32   `protobuf:"fixed32,6,opt,name=float_value,proto3" json:"float_value,omitempty"`
}

// MsgID implements Message.
func (m *ParamValue) MsgID() MsgID { return MsgParamValue }

// ProtoMessage implements proto.Message.
func (m *ParamValue) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ParamValue) Reset() { *m = ParamValue{} }

// String implements proto.Message.
func (m *ParamValue) String() string { return proto.CompactTextString(m) }

// CommandAck acknowledges a Command.
type CommandAck struct {
	Command CommandKind `protobuf:"varint,1,opt,name=command,proto3" json:"command,omitempty"`
	Success bool        `protobuf:"varint,2,opt,name=success,proto3" json:"success,omitempty"`
}

// MsgID implements Message.
func (m *CommandAck) MsgID() MsgID { return MsgCommandAck }

// ProtoMessage implements proto.Message.
func (m *CommandAck) ProtoMessage() {}

// Reset implements proto.Message.
func (m *CommandAck) Reset() { *m = CommandAck{} }

// String implements proto.Message.
func (m *CommandAck) String() string { return proto.CompactTextString(m) }

// Version reports the firmware version string.
type Version struct {
	Version string `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
}

// MsgID implements Message.
func (m *Version) MsgID() MsgID { return MsgVersion }

// ProtoMessage implements proto.Message.
func (m *Version) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Version) Reset() { *m = Version{} }

// String implements proto.Message.
func (m *Version) String() string { return proto.CompactTextString(m) }

// LogMessage is a device log line.
type LogMessage struct {
	Severity LogSeverity `protobuf:"varint,1,opt,name=severity,proto3" json:"severity,omitempty"`
	Text     string      `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
}

// MsgID implements Message.
func (m *LogMessage) MsgID() MsgID { return MsgLog }

// ProtoMessage implements proto.Message.
func (m *LogMessage) ProtoMessage() {}

// Reset implements proto.Message.
func (m *LogMessage) Reset() { *m = LogMessage{} }

// String implements proto.Message.
func (m *LogMessage) String() string { return proto.CompactTextString(m) }

// ErrorData carries the BackupData captured before the last reset.
type ErrorData struct {
	ErrorCode  uint32 `protobuf:"varint,1,opt,name=error_code,proto3" json:"error_code,omitempty"`
	ResetCount uint32 `protobuf:"varint,2,opt,name=reset_count,proto3" json:"reset_count,omitempty"`
	ArmFlag    uint32 `protobuf:"varint,3,opt,name=arm_flag,proto3" json:"arm_flag,omitempty"`
	PC         uint32 `protobuf:"varint,4,opt,name=pc,proto3" json:"pc,omitempty"`
	LR         uint32 `protobuf:"varint,5,opt,name=lr,proto3" json:"lr,omitempty"`
}

// NewErrorData wraps BackupData for sending.
func NewErrorData(d BackupData) *ErrorData {
	return &ErrorData{
		ErrorCode:  d.ErrorCode,
		ResetCount: d.ResetCount,
		ArmFlag:    d.ArmFlag,
		PC:         d.PC,
		LR:         d.LR,
	}
}

// MsgID implements Message.
func (m *ErrorData) MsgID() MsgID { return MsgErrorData }

// ProtoMessage implements proto.Message.
func (m *ErrorData) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ErrorData) Reset() { *m = ErrorData{} }

// String implements proto.Message.
func (m *ErrorData) String() string { return proto.CompactTextString(m) }
