package link

import (
	"github.com/golang/protobuf/proto"
)

// Message is anything exchanged over the link.
type Message interface {
	proto.Message
	MsgID() MsgID
}

// Event is a Message sent by the ground and handled by the flight controller.
type Event interface {
	Message
	isEvent()
}

// Heartbeat is exchanged in both directions to keep the link alive.
type Heartbeat struct {
	FixedWing bool `protobuf:"varint,1,opt,name=fixed_wing,proto3" json:"fixed_wing,omitempty"`
}

// MsgID implements Message.
func (m *Heartbeat) MsgID() MsgID { return MsgHeartbeat }

// ProtoMessage implements proto.Message.
func (m *Heartbeat) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Heartbeat) Reset() { *m = Heartbeat{} }

// String implements proto.Message.
func (m *Heartbeat) String() string { return proto.CompactTextString(m) }

func (m *Heartbeat) isEvent() {}

// ParamRequestList asks for the full parameter set.
type ParamRequestList struct {
	TargetSystem uint32 `protobuf:"varint,1,opt,name=target_system,proto3" json:"target_system,omitempty"`
}

// MsgID implements Message.
func (m *ParamRequestList) MsgID() MsgID { return MsgParamRequestList }

// ProtoMessage implements proto.Message.
func (m *ParamRequestList) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ParamRequestList) Reset() { *m = ParamRequestList{} }

// String implements proto.Message.
func (m *ParamRequestList) String() string { return proto.CompactTextString(m) }

func (m *ParamRequestList) isEvent() {}

// ParamRequestRead asks for a single parameter, by name when
// ParamIndex is negative.
type ParamRequestRead struct {
	TargetSystem uint32 `protobuf:"varint,1,opt,name=target_system,proto3" json:"target_system,omitempty"`
	ParamID      string `protobuf:"bytes,2,opt,name=param_id,proto3" json:"param_id,omitempty"`
	ParamIndex   int32  `protobuf:"varint,3,opt,name=param_index,proto3" json:"param_index,omitempty"`
}

// MsgID implements Message.
func (m *ParamRequestRead) MsgID() MsgID { return MsgParamRequestRead }

// ProtoMessage implements proto.Message.
func (m *ParamRequestRead) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ParamRequestRead) Reset() { *m = ParamRequestRead{} }

// String implements proto.Message.
func (m *ParamRequestRead) String() string { return proto.CompactTextString(m) }

func (m *ParamRequestRead) isEvent() {}

// ParamSetInt sets an integer parameter.
type ParamSetInt struct {
	TargetSystem uint32 `protobuf:"varint,1,opt,name=target_system,proto3" json:"target_system,omitempty"`
	ParamID      string `protobuf:"bytes,2,opt,name=param_id,proto3" json:"param_id,omitempty"`
	Value        int32  `protobuf:"varint,3,opt,name=value,proto3" json:"value,omitempty"`
}

// MsgID implements Message.
func (m *ParamSetInt) MsgID() MsgID { return MsgParamSetInt }

// ProtoMessage implements proto.Message.
func (m *ParamSetInt) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ParamSetInt) Reset() { *m = ParamSetInt{} }

// String implements proto.Message.
func (m *ParamSetInt) String() string { return proto.CompactTextString(m) }

func (m *ParamSetInt) isEvent() {}

// ParamSetFloat sets a float parameter.
type ParamSetFloat struct {
	TargetSystem uint32  `protobuf:"varint,1,opt,name=target_system,proto3" json:"target_system,omitempty"`
	ParamID      string  `protobuf:"bytes,2,opt,name=param_id,proto3" json:"param_id,omitempty"`
	Value        float32 `protobuf:"fixed32,3,opt,name=value,proto3" json:"value,omitempty"`
}

// MsgID implements Message.
func (m *ParamSetFloat) MsgID() MsgID { return MsgParamSetFloat }

// ProtoMessage implements proto.Message.
func (m *ParamSetFloat) ProtoMessage() {}

// Reset implements proto.Message.
func (m *ParamSetFloat) Reset() { *m = ParamSetFloat{} }

// String implements proto.Message.
func (m *ParamSetFloat) String() string { return proto.CompactTextString(m) }

func (m *ParamSetFloat) isEvent() {}

// OffboardControl is a control setpoint from an offboard computer.
type OffboardControl struct {
	Mode   ControlMode `protobuf:"varint,1,opt,name=mode,proto3" json:"mode,omitempty"`
	X      float32     `protobuf:"fixed32,2,opt,name=x,proto3" json:"x,omitempty"`
	Y      float32     `protobuf:"fixed32,3,opt,name=y,proto3" json:"y,omitempty"`
	Z      float32     `protobuf:"fixed32,4,opt,name=z,proto3" json:"z,omitempty"`
	F      float32     `protobuf:"fixed32,5,opt,name=f,proto3" json:"f,omitempty"`
	XValid bool        `protobuf:"varint,6,opt,name=x_valid,proto3" json:"x_valid,omitempty"`
	YValid bool        `protobuf:"varint,7,opt,name=y_valid,proto3" json:"y_valid,omitempty"`
	ZValid bool        `protobuf:"varint,8,opt,name=z_valid,proto3" json:"z_valid,omitempty"`
	FValid bool        `protobuf:"varint,9,opt,name=f_valid,proto3" json:"f_valid,omitempty"`
}

// Channels returns x, y, z, F in that order.
func (m *OffboardControl) Channels() [4]OffboardChannel {
	return [4]OffboardChannel{
		{Value: m.X, Valid: m.XValid},
		{Value: m.Y, Valid: m.YValid},
		{Value: m.Z, Valid: m.ZValid},
		{Value: m.F, Valid: m.FValid},
	}
}

// MsgID implements Message.
func (m *OffboardControl) MsgID() MsgID { return MsgOffboardControl }

// ProtoMessage implements proto.Message.
func (m *OffboardControl) ProtoMessage() {}

// Reset implements proto.Message.
func (m *OffboardControl) Reset() { *m = OffboardControl{} }

// String implements proto.Message.
func (m *OffboardControl) String() string { return proto.CompactTextString(m) }

func (m *OffboardControl) isEvent() {}

// Command requests a discrete maintenance action.
type Command struct {
	Command CommandKind `protobuf:"varint,1,opt,name=command,proto3" json:"command,omitempty"`
}

// MsgID implements Message.
func (m *Command) MsgID() MsgID { return MsgCommand }

// ProtoMessage implements proto.Message.
func (m *Command) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Command) Reset() { *m = Command{} }

// String implements proto.Message.
func (m *Command) String() string { return proto.CompactTextString(m) }

func (m *Command) isEvent() {}

// Timesync is a request when TC1 is zero, otherwise a response.
type Timesync struct {
	TC1 int64 `protobuf:"varint,1,opt,name=tc1,proto3" json:"tc1,omitempty"`
	TS1 int64 `protobuf:"varint,2,opt,name=ts1,proto3" json:"ts1,omitempty"`
}

// MsgID implements Message.
func (m *Timesync) MsgID() MsgID { return MsgTimesync }

// ProtoMessage implements proto.Message.
func (m *Timesync) ProtoMessage() {}

// Reset implements proto.Message.
func (m *Timesync) Reset() { *m = Timesync{} }

// String implements proto.Message.
func (m *Timesync) String() string { return proto.CompactTextString(m) }

func (m *Timesync) isEvent() {}

// AttitudeCorrection is an external attitude fix for the estimator.
type AttitudeCorrection struct {
	QW float32 `protobuf:"fixed32,1,opt,name=qw,proto3" json:"qw,omitempty"`
	QX float32 `protobuf:"fixed32,2,opt,name=qx,proto3" json:"qx,omitempty"`
	QY float32 `protobuf:"fixed32,3,opt,name=qy,proto3" json:"qy,omitempty"`
	QZ float32 `protobuf:"fixed32,4,opt,name=qz,proto3" json:"qz,omitempty"`
}

// Quaternion gets the correction.
func (m *AttitudeCorrection) Quaternion() Quaternion {
	return Quaternion{W: m.QW, X: m.QX, Y: m.QY, Z: m.QZ}
}

// MsgID implements Message.
func (m *AttitudeCorrection) MsgID() MsgID { return MsgAttitudeCorrection }

// ProtoMessage implements proto.Message.
func (m *AttitudeCorrection) ProtoMessage() {}

// Reset implements proto.Message.
func (m *AttitudeCorrection) Reset() { *m = AttitudeCorrection{} }

// String implements proto.Message.
func (m *AttitudeCorrection) String() string { return proto.CompactTextString(m) }

func (m *AttitudeCorrection) isEvent() {}
