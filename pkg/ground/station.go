// Package ground implements the ground station side of the link.
package ground

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/fcu.go/pkg/framework"
	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/link/wire"
)

// Defaults
const (
	DefaultHeartbeatInterval = time.Second
	// DefaultSysID is the flight controller's SYS_ID default.
	DefaultSysID = 1
)

var (
	// ErrUnknownParam indicates the flight controller has no such parameter.
	ErrUnknownParam = errors.New("unknown parameter")
	// ErrStopped indicates the station is no longer running.
	ErrStopped = errors.New("station stopped")
)

// WatchFunc receives every decoded message from the flight controller.
type WatchFunc func(sysid uint8, msg link.Message)

type waiter struct {
	match func(link.Message) bool
	ch    chan link.Message
}

// Station talks to one flight controller over a PacketReadWriter.
type Station struct {
	// SysID is the target system of parameter requests.
	SysID             uint8
	HeartbeatInterval time.Duration
	FixedWing         bool

	rw link.PacketReadWriter

	writeLock sync.Mutex
	seq       uint8

	lock       sync.Mutex
	params     map[string]*link.ParamValue
	paramCount uint32
	paramsCh   chan struct{}
	waiters    map[*waiter]struct{}
	watchers   map[int]WatchFunc
	watchID    int
	done       chan struct{}
	stopOnce   sync.Once
}

// New creates a Station on rw.
func New(rw link.PacketReadWriter) *Station {
	return &Station{
		SysID:             DefaultSysID,
		HeartbeatInterval: DefaultHeartbeatInterval,
		rw:                rw,
		params:            make(map[string]*link.ParamValue),
		paramsCh:          make(chan struct{}),
		waiters:           make(map[*waiter]struct{}),
		watchers:          make(map[int]WatchFunc),
		done:              make(chan struct{}),
	}
}

// Run implements Runnable. It reads frames and sends heartbeats until ctx
// is canceled or the transport fails.
func (s *Station) Run(ctx context.Context) error {
	defer s.stopOnce.Do(func() { close(s.done) })
	ctx, cancel := context.WithCancel(ctx)
	runner := fx.NewRunnerWith(ctx)
	if runnable, ok := s.rw.(fx.Runnable); ok {
		runner.Go(fx.NamedRun("transport", runnable))
	}
	runner.Go(fx.NamedRun("heartbeat", fx.RunFunc(s.heartbeat)))
	defer runner.Wait()
	defer cancel()

	closer, ok := s.rw.(io.Closer)
	if !ok {
		return s.readLoop()
	}
	return fx.RunWithContextCloser(ctx, closer, s.readLoop)
}

// Send sends msg to the flight controller.
func (s *Station) Send(msg link.Message) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()
	pkt, err := wire.Pack(s.seq, s.SysID, msg)
	if err != nil {
		return err
	}
	s.seq++
	if glog.V(2) {
		glog.Infof("SND %T %s", msg, msg.String())
	}
	return s.rw.WritePacket(pkt)
}

// Request sends msg and waits for the first reply accepted by match.
func (s *Station) Request(ctx context.Context, msg link.Message, match func(link.Message) bool) (link.Message, error) {
	w := &waiter{match: match, ch: make(chan link.Message, 1)}
	s.lock.Lock()
	s.waiters[w] = struct{}{}
	s.lock.Unlock()
	defer func() {
		s.lock.Lock()
		delete(s.waiters, w)
		s.lock.Unlock()
	}()
	if err := s.Send(msg); err != nil {
		return nil, err
	}
	select {
	case reply := <-w.ch:
		return reply, nil
	case <-s.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Watch registers fn for every received message. Call the returned func to
// stop watching.
func (s *Station) Watch(fn WatchFunc) func() {
	s.lock.Lock()
	defer s.lock.Unlock()
	id := s.watchID
	s.watchID++
	s.watchers[id] = fn
	return func() {
		s.lock.Lock()
		delete(s.watchers, id)
		s.lock.Unlock()
	}
}

// Command runs a command and returns the acknowledged result.
func (s *Station) Command(ctx context.Context, kind link.CommandKind) (bool, error) {
	reply, err := s.Request(ctx, &link.Command{Command: kind}, func(msg link.Message) bool {
		ack, ok := msg.(*link.CommandAck)
		return ok && ack.Command == kind
	})
	if err != nil {
		return false, err
	}
	return reply.(*link.CommandAck).Success, nil
}

// Version asks for the firmware version.
func (s *Station) Version(ctx context.Context) (string, error) {
	reply, err := s.Request(ctx, &link.Command{Command: link.CommandSendVersion}, func(msg link.Message) bool {
		_, ok := msg.(*link.Version)
		return ok
	})
	if err != nil {
		return "", err
	}
	return reply.(*link.Version).Version, nil
}

// Timesync measures the round trip time and reads the flight controller
// clock in nanoseconds.
func (s *Station) Timesync(ctx context.Context) (time.Duration, int64, error) {
	start := time.Now()
	ts1 := start.UnixNano()
	reply, err := s.Request(ctx, &link.Timesync{TS1: ts1}, func(msg link.Message) bool {
		m, ok := msg.(*link.Timesync)
		return ok && m.TC1 != 0 && m.TS1 == ts1
	})
	if err != nil {
		return 0, 0, err
	}
	return time.Since(start), reply.(*link.Timesync).TC1, nil
}

// RequestParams asks for the full parameter list and waits until every
// parameter has been received.
func (s *Station) RequestParams(ctx context.Context) ([]*link.ParamValue, error) {
	if err := s.Send(&link.ParamRequestList{TargetSystem: uint32(s.SysID)}); err != nil {
		return nil, err
	}
	for {
		s.lock.Lock()
		complete := s.paramCount > 0 && uint32(len(s.params)) >= s.paramCount
		updated := s.paramsCh
		s.lock.Unlock()
		if complete {
			return s.Params(), nil
		}
		select {
		case <-updated:
		case <-s.done:
			return nil, ErrStopped
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Params returns cached parameter values ordered by index.
func (s *Station) Params() []*link.ParamValue {
	s.lock.Lock()
	values := make([]*link.ParamValue, 0, len(s.params))
	for _, val := range s.params {
		values = append(values, val)
	}
	s.lock.Unlock()
	sort.Slice(values, func(i, j int) bool { return values[i].Index < values[j].Index })
	return values
}

// GetParam reads a parameter by name.
func (s *Station) GetParam(ctx context.Context, name string) (*link.ParamValue, error) {
	req := &link.ParamRequestRead{TargetSystem: uint32(s.SysID), ParamID: name, ParamIndex: -1}
	reply, err := s.Request(ctx, req, func(msg link.Message) bool {
		val, ok := msg.(*link.ParamValue)
		return ok && val.ParamID == name
	})
	if err != nil {
		if err == context.DeadlineExceeded {
			return nil, fmt.Errorf("%s: %v", name, ErrUnknownParam)
		}
		return nil, err
	}
	return reply.(*link.ParamValue), nil
}

// SetParam parses value according to the parameter type, sets it and
// returns the value read back.
func (s *Station) SetParam(ctx context.Context, name, value string) (*link.ParamValue, error) {
	cur, err := s.cachedParam(ctx, name)
	if err != nil {
		return nil, err
	}
	var msg link.Message
	switch cur.Type {
	case link.ParamTypeInt32:
		v, err := strconv.ParseInt(value, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid int value %q", name, value)
		}
		msg = &link.ParamSetInt{TargetSystem: uint32(s.SysID), ParamID: name, Value: int32(v)}
	case link.ParamTypeFloat:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid float value %q", name, value)
		}
		msg = &link.ParamSetFloat{TargetSystem: uint32(s.SysID), ParamID: name, Value: float32(v)}
	default:
		return nil, fmt.Errorf("%s: unsupported type %d", name, cur.Type)
	}
	if err := s.Send(msg); err != nil {
		return nil, err
	}
	return s.GetParam(ctx, name)
}

func (s *Station) cachedParam(ctx context.Context, name string) (*link.ParamValue, error) {
	s.lock.Lock()
	val := s.params[name]
	s.lock.Unlock()
	if val != nil {
		return val, nil
	}
	return s.GetParam(ctx, name)
}

func (s *Station) heartbeat(ctx context.Context) error {
	ticker := time.NewTicker(s.HeartbeatInterval)
	defer ticker.Stop()
	for {
		if err := s.Send(&link.Heartbeat{FixedWing: s.FixedWing}); err != nil {
			glog.Warningf("send heartbeat error: %v", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *Station) readLoop() error {
	for {
		pkt, err := s.rw.ReadPacket()
		if err != nil {
			return err
		}
		f, err := wire.Unpack(pkt)
		if err != nil {
			glog.V(2).Infof("drop packet: %v", err)
			continue
		}
		msg, err := f.Decode()
		if err != nil {
			glog.V(2).Infof("drop frame %#02x: %v", uint8(f.MsgID), err)
			continue
		}
		s.dispatch(f.SysID, msg)
	}
}

func (s *Station) dispatch(sysid uint8, msg link.Message) {
	s.lock.Lock()
	if val, ok := msg.(*link.ParamValue); ok {
		s.params[val.ParamID] = val
		s.paramCount = val.Count
		close(s.paramsCh)
		s.paramsCh = make(chan struct{})
	}
	for w := range s.waiters {
		if w.match(msg) {
			select {
			case w.ch <- msg:
			default:
			}
		}
	}
	watchers := make([]WatchFunc, 0, len(s.watchers))
	for _, fn := range s.watchers {
		watchers = append(watchers, fn)
	}
	s.lock.Unlock()
	for _, fn := range watchers {
		fn(sysid, msg)
	}
}
