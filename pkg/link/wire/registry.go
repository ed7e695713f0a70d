package wire

import "github.com/robotalks/fcu.go/pkg/link"

// MessageTypes maps message IDs to constructors.
var MessageTypes = map[link.MsgID]func() link.Message{
	link.MsgHeartbeat:          func() link.Message { return &link.Heartbeat{} },
	link.MsgParamRequestList:   func() link.Message { return &link.ParamRequestList{} },
	link.MsgParamRequestRead:   func() link.Message { return &link.ParamRequestRead{} },
	link.MsgParamSetInt:        func() link.Message { return &link.ParamSetInt{} },
	link.MsgParamSetFloat:      func() link.Message { return &link.ParamSetFloat{} },
	link.MsgOffboardControl:    func() link.Message { return &link.OffboardControl{} },
	link.MsgCommand:            func() link.Message { return &link.Command{} },
	link.MsgTimesync:           func() link.Message { return &link.Timesync{} },
	link.MsgAttitudeCorrection: func() link.Message { return &link.AttitudeCorrection{} },

	link.MsgStatus:          func() link.Message { return &link.Status{} },
	link.MsgAttitude:        func() link.Message { return &link.Attitude{} },
	link.MsgIMU:             func() link.Message { return &link.IMU{} },
	link.MsgOutputRaw:       func() link.Message { return &link.OutputRaw{} },
	link.MsgRCRaw:           func() link.Message { return &link.RCRaw{} },
	link.MsgDiffPressure:    func() link.Message { return &link.DiffPressure{} },
	link.MsgBaro:            func() link.Message { return &link.Baro{} },
	link.MsgSonar:           func() link.Message { return &link.Sonar{} },
	link.MsgMag:             func() link.Message { return &link.Mag{} },
	link.MsgNamedValueInt:   func() link.Message { return &link.NamedValueInt{} },
	link.MsgNamedValueFloat: func() link.Message { return &link.NamedValueFloat{} },
	link.MsgParamValue:      func() link.Message { return &link.ParamValue{} },
	link.MsgCommandAck:      func() link.Message { return &link.CommandAck{} },
	link.MsgVersion:         func() link.Message { return &link.Version{} },
	link.MsgLog:             func() link.Message { return &link.LogMessage{} },
	link.MsgErrorData:       func() link.Message { return &link.ErrorData{} },
}
