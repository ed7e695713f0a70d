package comm

import (
	"github.com/golang/glog"

	"github.com/robotalks/fcu.go/pkg/link"
)

// RebootDelayMS is the delay between the ack of a reboot and the reset.
const RebootDelayMS = 20

type reboot int

const (
	noReboot reboot = iota
	rebootNormal
	rebootBootloader
)

func (m *Manager) handleCommand(cmd link.CommandKind) {
	result, rb := m.execCommand(cmd)
	m.send(&link.CommandAck{Command: cmd, Success: result})
	if rb != noReboot {
		m.sys.Board.ClockDelay(RebootDelayMS)
		m.sys.Board.SerialFlush()
		m.sys.Board.Reset(rb == rebootBootloader)
	}
	m.sys.Board.SerialFlush()
}

// execCommand refuses everything while armed.
func (m *Manager) execCommand(cmd link.CommandKind) (bool, reboot) {
	if m.sys.State.State().Armed {
		return false, noReboot
	}
	switch cmd {
	case link.CommandReadParams:
		return m.sys.Params.Read(), noReboot
	case link.CommandWriteParams:
		return m.sys.Params.Write(), noReboot
	case link.CommandSetParamDefaults:
		m.sys.Params.SetDefaults()
	case link.CommandAccelCalibration:
		return m.sys.Sensors.StartIMUCalibration(), noReboot
	case link.CommandGyroCalibration:
		return m.sys.Sensors.StartGyroCalibration(), noReboot
	case link.CommandBaroCalibration:
		return m.sys.Sensors.StartBaroCalibration(), noReboot
	case link.CommandAirspeedCalibration:
		return m.sys.Sensors.StartDiffPressureCalibration(), noReboot
	case link.CommandRCCalibration:
		// The result is not reported.
		m.sys.Controller.CalculateEquilibriumTorqueFromRC()
	case link.CommandReboot:
		return true, rebootNormal
	case link.CommandRebootToBootloader:
		return true, rebootBootloader
	case link.CommandSendVersion:
		m.send(&link.Version{Version: Version})
	default:
		glog.V(1).Infof("unknown command %v", cmd)
	}
	return true, noReboot
}
