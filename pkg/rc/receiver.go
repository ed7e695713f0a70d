// Package rc provides RC input for the simulated flight controller,
// read from a joystick.
//
// Axes 0-3 map to channels 0-3 (roll, pitch, throttle, yaw) and buttons
// 0-3 to the aux channels 4-7. Channel values are normalized to [0, 1].
package rc

import (
	"context"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/fcu.go/pkg/framework"
	"github.com/robotalks/fcu.go/pkg/rc/joystick"
)

// Channels is the number of RC channels.
const Channels = 8

// Channel indices.
const (
	ChannelRoll = iota
	ChannelPitch
	ChannelThrottle
	ChannelYaw
	ChannelAux1
)

// Neutral is the channel state without input.
var Neutral = [Channels]float32{0.5, 0.5, 0, 0.5}

const retryInterval = time.Second

type update struct {
	event joystick.Event
	lost  bool
}

// Receiver tracks RC channels from a joystick.
type Receiver struct {
	DeviceIndex int
	Verbose     bool

	updates  chan update
	channels [Channels]float32
}

// NewReceiver creates a Receiver.
func NewReceiver() *Receiver {
	return &Receiver{
		DeviceIndex: defaultConfig.DeviceIndex,
		Verbose:     defaultConfig.Verbose,
		updates:     make(chan update, 16),
		channels:    Neutral,
	}
}

// AddToLoop implements LoopAdder.
func (r *Receiver) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(fx.NamedRun("rc", r))
	loop.AddController(fx.PrLvSense, r)
}

// Channel returns a channel value, 0 for channels out of range.
func (r *Receiver) Channel(ch int) float32 {
	if ch < 0 || ch >= Channels {
		return 0
	}
	return r.channels[ch]
}

// Run implements Runnable.
func (r *Receiver) Run(ctx context.Context) error {
	loopCtl := fx.LoopCtlFrom(ctx)
	retry := time.After(0)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-retry:
			dev, err := r.open()
			if err == joystick.ErrUnsupported {
				glog.Info("RC input disabled: no joystick support")
				return nil
			}
			if err != nil || dev == nil {
				if err != nil {
					glog.V(1).Infof("open joystick: %v", err)
				}
				retry = time.After(retryInterval)
				continue
			}
			glog.Infof("joystick %d %q opened", dev.Index, dev.Name)
			r.poll(ctx, dev, loopCtl)
			glog.Warningf("joystick %d lost", dev.Index)
			retry = time.After(retryInterval)
		}
	}
}

// Control implements Controller.
func (r *Receiver) Control(fx.ControlContext) error {
	for {
		select {
		case u := <-r.updates:
			if u.lost {
				r.channels = Neutral
			} else {
				r.Apply(u.event)
			}
		default:
			return nil
		}
	}
}

// Apply updates channels from a joystick event.
func (r *Receiver) Apply(ev joystick.Event) {
	switch ev.Kind {
	case joystick.EventAxis:
		if ev.Index < ChannelAux1 {
			v := float32(ev.Value+32767) / 65534
			if v < 0 {
				v = 0
			}
			r.channels[ev.Index] = v
		}
	case joystick.EventButton:
		if ch := ChannelAux1 + ev.Index; ch < Channels {
			if ev.Pressed() {
				r.channels[ch] = 1
			} else {
				r.channels[ch] = 0
			}
		}
	}
}

func (r *Receiver) open() (*joystick.Device, error) {
	if r.DeviceIndex >= 0 {
		return joystick.Open(r.DeviceIndex)
	}
	return joystick.Detect(0)
}

func (r *Receiver) poll(ctx context.Context, dev *joystick.Device, loopCtl fx.LoopControl) {
	closer := make(chan struct{})
	defer close(closer)
	go func() {
		select {
		case <-ctx.Done():
		case <-closer:
		}
		dev.Close()
	}()
	for {
		ev, err := dev.ReadEvent()
		if err != nil {
			if ctx.Err() == nil {
				glog.Warningf("joystick read error: %v", err)
			}
			r.push(ctx, update{lost: true}, loopCtl)
			return
		}
		if r.Verbose {
			glog.Infof("joystick %+v", ev)
		}
		r.push(ctx, update{event: ev}, loopCtl)
	}
}

func (r *Receiver) push(ctx context.Context, u update, loopCtl fx.LoopControl) {
	select {
	case r.updates <- u:
	case <-ctx.Done():
		return
	}
	if loopCtl != nil {
		loopCtl.TriggerNext()
	}
}
