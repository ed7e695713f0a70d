package comm

import (
	"fmt"

	"github.com/golang/glog"

	fx "github.com/robotalks/fcu.go/pkg/framework"
	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/params"
)

// Version is reported by the send-version command.
var Version = "dev"

// Manager is the flight controller's endpoint of the ground link.
type Manager struct {
	link link.Link
	sys  System

	sysid            uint8
	initialized      bool
	connected        bool
	deferredDataSent bool
	sendParamsIndex  int
	listening        bool

	streams [StreamCount]Stream
	logs    LogBuffer

	rcRaw    link.RCRaw
	rcValues [RCChannels]uint32
}

// NewManager creates a Manager. Nothing is sent before Init.
func NewManager(l link.Link, sys System) *Manager {
	m := &Manager{link: l, sys: sys}
	m.sendParamsIndex = sys.Params.Count()
	senders := [StreamCount]func(){
		StreamHeartbeat:    m.sendHeartbeat,
		StreamStatus:       m.sendStatus,
		StreamAttitude:     m.sendAttitude,
		StreamIMU:          m.sendIMU,
		StreamDiffPressure: m.sendDiffPressure,
		StreamBaro:         m.sendBaro,
		StreamSonar:        m.sendSonar,
		StreamMag:          m.sendMag,
		StreamOutputRaw:    m.sendOutputRaw,
		StreamRCRaw:        m.sendRCRaw,
		StreamLowPriority:  m.sendLowPriority,
	}
	for id, send := range senders {
		m.streams[id] = NewStream(0, send)
	}
	m.streams[StreamLowPriority].periodUS = LowPriorityPeriodUS
	return m
}

var streamParams = map[params.ID]StreamID{
	params.StreamHeartbeatRate: StreamHeartbeat,
	params.StreamStatusRate:    StreamStatus,
	params.StreamIMURate:       StreamIMU,
	params.StreamAttitudeRate:  StreamAttitude,
	params.StreamAirspeedRate:  StreamDiffPressure,
	params.StreamBaroRate:      StreamBaro,
	params.StreamSonarRate:     StreamSonar,
	params.StreamMagRate:       StreamMag,
	params.StreamOutputRawRate: StreamOutputRaw,
	params.StreamRCRawRate:     StreamRCRaw,
}

// Init subscribes to the link, opens it and registers parameter listeners.
// It starts a new session: the next heartbeat sends deferred data again.
func (m *Manager) Init() {
	p := m.sys.Params
	m.link.Subscribe(m)
	linkErr := m.link.Init(uint32(p.Int(params.BaudRate)), uint32(p.Int(params.SerialDevice)))
	if linkErr != nil {
		glog.Errorf("link init error: %v", linkErr)
	}

	m.sysid = uint8(p.Int(params.SystemID))
	m.sendParamsIndex = p.Count()
	m.connected = false
	m.deferredDataSent = false

	if !m.listening {
		p.AddCallback(params.SystemID, m.updateSystemID)
		for id, stream := range streamParams {
			stream := stream
			p.AddCallback(id, func(id params.ID) {
				m.setStreamingRate(stream, id)
			})
		}
		m.listening = true
	}

	m.initialized = true
	if linkErr != nil {
		m.Log(link.LogError, "link: %v", linkErr)
	}
	m.Log(link.LogInfo, "Booting")
}

// Receive pumps inbound events.
func (m *Manager) Receive() {
	m.link.Receive()
}

// Stream ticks every stream and flushes the output.
func (m *Manager) Stream() {
	now := m.sys.Board.ClockMicros()
	for i := range m.streams {
		m.streams[i].Tick(now)
	}
	m.sys.Board.SerialFlush()
}

// AddToLoop implements LoopAdder.
func (m *Manager) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PrLvSense, fx.ControlFunc(func(fx.ControlContext) error {
		m.Receive()
		return nil
	}))
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(func(fx.ControlContext) error {
		m.Stream()
		return nil
	}))
}

// HandleEvent implements link.Handler.
func (m *Manager) HandleEvent(ev link.Event) {
	switch e := ev.(type) {
	case *link.ParamRequestList:
		m.handleParamRequestList(e)
	case *link.ParamRequestRead:
		m.handleParamRequestRead(e)
	case *link.ParamSetInt:
		m.handleParamSetInt(e)
	case *link.ParamSetFloat:
		m.handleParamSetFloat(e)
	case *link.OffboardControl:
		m.handleOffboardControl(e)
	case *link.Command:
		m.handleCommand(e.Command)
	case *link.Timesync:
		m.handleTimesync(e)
	case *link.AttitudeCorrection:
		m.sys.Estimator.SetAttitudeCorrection(e.Quaternion())
	case *link.Heartbeat:
		m.handleHeartbeat()
	default:
		glog.V(1).Infof("ignore event %T", ev)
	}
}

// SystemID returns the current system id.
func (m *Manager) SystemID() uint8 {
	return m.sysid
}

// Connected reports whether a heartbeat was received since Init.
func (m *Manager) Connected() bool {
	return m.connected
}

// StreamPeriodUS returns the period of a stream.
func (m *Manager) StreamPeriodUS(id StreamID) uint32 {
	return m.streams[id].PeriodUS()
}

// Log sends a device log message once connected, otherwise buffers it
// until the first heartbeat.
func (m *Manager) Log(severity link.LogSeverity, format string, args ...interface{}) {
	text := truncate(fmt.Sprintf(format, args...))
	if m.initialized && m.connected {
		m.send(&link.LogMessage{Severity: severity, Text: text})
		return
	}
	m.logs.Push(severity, text)
}

// BufferedLogs returns the number of buffered log messages.
func (m *Manager) BufferedLogs() int {
	return m.logs.Len()
}

func (m *Manager) handleHeartbeat() {
	m.connected = true
	if !m.deferredDataSent {
		if data, ok := m.sys.Board.BackupData(); ok {
			m.send(link.NewErrorData(data))
		}
		m.logs.Drain(func(severity link.LogSeverity, text string) {
			m.send(&link.LogMessage{Severity: severity, Text: text})
		})
		m.deferredDataSent = true
	}
	m.sendHeartbeat()
}

func (m *Manager) handleOffboardControl(e *link.OffboardControl) {
	m.sys.Mux.SetNewOffboardCommand(TranslateOffboard(e, m.sys.Board.ClockMillis()))
}

func (m *Manager) handleTimesync(e *link.Timesync) {
	if e.TC1 != 0 {
		return
	}
	now := m.sys.Board.ClockMicros()
	m.send(&link.Timesync{TC1: int64(now) * 1000, TS1: e.TS1})
}

func (m *Manager) updateSystemID(params.ID) {
	m.sysid = uint8(m.sys.Params.Int(params.SystemID))
}

func (m *Manager) setStreamingRate(stream StreamID, id params.ID) {
	m.streams[stream].SetRate(uint32(m.sys.Params.Int(id)))
}

func (m *Manager) send(msg link.Message) {
	if err := m.link.Send(m.sysid, msg); err != nil {
		glog.V(1).Infof("send %T error: %v", msg, err)
	}
}
