package comm

import (
	"fmt"

	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/params"
)

type tracer struct {
	trace []string
}

func (t *tracer) add(format string, args ...interface{}) {
	t.trace = append(t.trace, fmt.Sprintf(format, args...))
}

type fakeLink struct {
	*tracer
	handler      link.Handler
	inbox        []link.Event
	sent         []link.Message
	sysids       []uint8
	initErr      error
	baud, device uint32
}

func (l *fakeLink) Init(baud, device uint32) error {
	l.baud, l.device = baud, device
	return l.initErr
}

func (l *fakeLink) Subscribe(h link.Handler) {
	l.handler = h
}

func (l *fakeLink) Receive() {
	events := l.inbox
	l.inbox = nil
	for _, ev := range events {
		l.handler.HandleEvent(ev)
	}
}

func (l *fakeLink) Send(sysid uint8, msg link.Message) error {
	l.add("send %T", msg)
	l.sent = append(l.sent, msg)
	l.sysids = append(l.sysids, sysid)
	return nil
}

func (l *fakeLink) take() []link.Message {
	sent := l.sent
	l.sent = nil
	return sent
}

type fakeParams struct {
	*params.Store
	readOK, writeOK         bool
	reads, writes, defaults int
}

func (p *fakeParams) Read() bool {
	p.reads++
	return p.readOK
}

func (p *fakeParams) Write() bool {
	p.writes++
	return p.writeOK
}

func (p *fakeParams) SetDefaults() {
	p.defaults++
	p.Store.SetDefaults()
}

type fakeBoard struct {
	*tracer
	nowUS   uint64
	flushes int
	resets  []bool
	backup  *link.BackupData
	rc      [RCChannels]float32
	errors  uint32
}

func (b *fakeBoard) ClockMicros() uint64 { return b.nowUS }
func (b *fakeBoard) ClockMillis() uint32 { return uint32(b.nowUS / 1000) }
func (b *fakeBoard) ClockDelay(ms uint32) {
	b.add("delay %d", ms)
	b.nowUS += uint64(ms) * 1000
}
func (b *fakeBoard) SerialFlush() {
	b.add("flush")
	b.flushes++
}
func (b *fakeBoard) Reset(bootloader bool) {
	b.add("reset %v", bootloader)
	b.resets = append(b.resets, bootloader)
}
func (b *fakeBoard) BackupData() (link.BackupData, bool) {
	if b.backup == nil {
		return link.BackupData{}, false
	}
	return *b.backup, true
}
func (b *fakeBoard) NumSensorErrors() uint32    { return b.errors }
func (b *fakeBoard) RCRead(channel int) float32 { return b.rc[channel] }

type fakeState struct {
	state FlightState
}

func (s *fakeState) State() FlightState { return s.state }

type fakeSensors struct {
	data         SensorData
	acc, gyro    link.Vector
	stampUS      uint64
	calibrateOK  bool
	calibrations []string
}

func (s *fakeSensors) Data() SensorData { return s.data }
func (s *fakeSensors) FilteredIMU() (link.Vector, link.Vector, uint64) {
	return s.acc, s.gyro, s.stampUS
}
func (s *fakeSensors) calibrate(name string) bool {
	s.calibrations = append(s.calibrations, name)
	return s.calibrateOK
}
func (s *fakeSensors) StartIMUCalibration() bool          { return s.calibrate("imu") }
func (s *fakeSensors) StartGyroCalibration() bool         { return s.calibrate("gyro") }
func (s *fakeSensors) StartBaroCalibration() bool         { return s.calibrate("baro") }
func (s *fakeSensors) StartDiffPressureCalibration() bool { return s.calibrate("airspeed") }

type fakeEstimator struct {
	state       EstimatorState
	corrections []link.Quaternion
}

func (e *fakeEstimator) State() EstimatorState { return e.state }
func (e *fakeEstimator) SetAttitudeCorrection(q link.Quaternion) {
	e.corrections = append(e.corrections, q)
}

type fakeMux struct {
	commands []Control
	combined Control
	rc       bool
	offboard bool
}

func (m *fakeMux) SetNewOffboardCommand(c Control) { m.commands = append(m.commands, c) }
func (m *fakeMux) CombinedControl() Control        { return m.combined }
func (m *fakeMux) RCOverrideActive() bool          { return m.rc }
func (m *fakeMux) OffboardControlActive() bool     { return m.offboard }

type fakeMixer struct {
	outputs []float32
}

func (m *fakeMixer) Outputs() []float32 { return m.outputs }

type fakeController struct {
	trims int
}

func (c *fakeController) CalculateEquilibriumTorqueFromRC() bool {
	c.trims++
	return false
}

type fakeTimer uint32

func (t fakeTimer) LoopTimeUS() uint32 { return uint32(t) }

type rig struct {
	*tracer
	link       *fakeLink
	params     *fakeParams
	board      *fakeBoard
	state      *fakeState
	sensors    *fakeSensors
	estimator  *fakeEstimator
	mux        *fakeMux
	mixer      *fakeMixer
	controller *fakeController
	m          *Manager
}

func newRig() *rig {
	tr := &tracer{}
	r := &rig{
		tracer:     tr,
		link:       &fakeLink{tracer: tr},
		params:     &fakeParams{Store: params.New(""), readOK: true, writeOK: true},
		board:      &fakeBoard{tracer: tr},
		state:      &fakeState{},
		sensors:    &fakeSensors{calibrateOK: true},
		estimator:  &fakeEstimator{},
		mux:        &fakeMux{},
		mixer:      &fakeMixer{outputs: []float32{0.1, 0.2}},
		controller: &fakeController{},
	}
	r.m = NewManager(r.link, System{
		Params:     r.params,
		Board:      r.board,
		State:      r.state,
		Sensors:    r.sensors,
		Estimator:  r.estimator,
		Mux:        r.mux,
		Mixer:      r.mixer,
		Controller: r.controller,
		Timer:      fakeTimer(1234),
	})
	return r
}

// init initializes the manager and discards anything sent.
func (r *rig) init() *rig {
	r.m.Init()
	r.link.take()
	r.trace = nil
	return r
}

// connect delivers a heartbeat and discards the replies.
func (r *rig) connect() *rig {
	r.deliver(&link.Heartbeat{})
	r.link.take()
	r.trace = nil
	return r
}

func (r *rig) deliver(events ...link.Event) []link.Message {
	r.link.inbox = append(r.link.inbox, events...)
	r.m.Receive()
	return r.link.take()
}
