// Package pipe implements link.Link over a packet transport.
package pipe

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"

	fx "github.com/robotalks/fcu.go/pkg/framework"
	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/link/wire"
)

// Opener opens the transport selected by the link parameters.
type Opener func(baudRate, device uint32) (link.PacketReadWriter, error)

// Defaults
const (
	DefaultQueueSize  = 64
	DefaultMaxPending = 128
)

// Pipe is a Link backed by a PacketReadWriter.
//
// Decoding happens in Run, in the background. Decoded events are queued and
// only handed to the Handler from Receive, so handlers always execute on the
// loop goroutine. Sent frames are buffered until Flush.
type Pipe struct {
	Open       Opener
	MaxPending int

	rw      link.PacketReadWriter
	handler link.Handler
	events  chan link.Event
	pending [][]byte
	seq     uint8

	ready     chan struct{}
	readyOnce sync.Once
	dropped   uint64
}

// New creates a Pipe with the given Opener.
func New(open Opener) *Pipe {
	return &Pipe{
		Open:       open,
		MaxPending: DefaultMaxPending,
		events:     make(chan link.Event, DefaultQueueSize),
		ready:      make(chan struct{}),
	}
}

// Init implements link.Link.
func (p *Pipe) Init(baudRate, device uint32) error {
	if p.rw != nil {
		return nil
	}
	rw, err := p.Open(baudRate, device)
	if err != nil {
		return err
	}
	p.rw = rw
	p.readyOnce.Do(func() { close(p.ready) })
	glog.Infof("link opened (baud=%d device=%d)", baudRate, device)
	return nil
}

// Subscribe implements link.Link.
func (p *Pipe) Subscribe(h link.Handler) {
	p.handler = h
}

// Receive implements link.Link.
func (p *Pipe) Receive() {
	for n := len(p.events); n > 0; n-- {
		ev := <-p.events
		if h := p.handler; h != nil {
			h.HandleEvent(ev)
		}
	}
}

// Send implements link.Link.
func (p *Pipe) Send(sysid uint8, msg link.Message) error {
	if p.rw == nil {
		return link.ErrNotInitialized
	}
	pkt, err := wire.Pack(p.seq, sysid, msg)
	if err != nil {
		return err
	}
	p.seq++
	if len(p.pending) >= p.MaxPending {
		p.Flush()
	}
	p.pending = append(p.pending, pkt)
	return nil
}

// Flush writes all queued frames.
func (p *Pipe) Flush() error {
	if p.rw == nil || len(p.pending) == 0 {
		return nil
	}
	var err error
	for _, pkt := range p.pending {
		if err = p.rw.WritePacket(pkt); err != nil {
			break
		}
	}
	for i := range p.pending {
		p.pending[i] = nil
	}
	p.pending = p.pending[:0]
	if err != nil {
		glog.Warningf("link write error: %v", err)
	}
	return err
}

// Dropped reports inbound events dropped because the queue was full.
func (p *Pipe) Dropped() uint64 {
	return atomic.LoadUint64(&p.dropped)
}

// Run implements Runnable.
func (p *Pipe) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ready:
	}
	if runnable, ok := p.rw.(fx.Runnable); ok {
		runner := fx.NewRunnerWith(ctx).Go(runnable)
		defer runner.Wait()
	}
	closer, ok := p.rw.(io.Closer)
	if !ok {
		return p.readLoop(ctx)
	}
	return fx.RunWithContextCloser(ctx, closer, func() error {
		return p.readLoop(ctx)
	})
}

// AddToLoop implements LoopAdder.
func (p *Pipe) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(fx.NamedRun("link", p))
}

func (p *Pipe) readLoop(ctx context.Context) error {
	loopCtl := fx.LoopCtlFrom(ctx)
	for {
		pkt, err := p.rw.ReadPacket()
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
		ev, ok := msg.(link.Event)
		if !ok {
			glog.V(2).Infof("ignore %T from sysid %d", msg, f.SysID)
			continue
		}
		if glog.V(2) {
			glog.Infof("RCV %T %s", ev, ev.String())
		}
		select {
		case p.events <- ev:
		default:
			atomic.AddUint64(&p.dropped, 1)
			glog.Warningf("event queue full, drop %T", ev)
		}
		if loopCtl != nil {
			loopCtl.TriggerNext()
		}
	}
}
