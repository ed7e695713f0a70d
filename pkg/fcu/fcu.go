// Package fcu assembles a flight controller running on a host: parameters,
// simulated vehicle, link and the link manager.
package fcu

import (
	"github.com/golang/glog"

	"github.com/robotalks/fcu.go/pkg/comm"
	fx "github.com/robotalks/fcu.go/pkg/framework"
	"github.com/robotalks/fcu.go/pkg/link/pipe"
	"github.com/robotalks/fcu.go/pkg/params"
	"github.com/robotalks/fcu.go/pkg/sim"
)

// FlightController wires the components into a loop.
type FlightController struct {
	Params  *params.Store
	Board   *sim.Board
	Vehicle *sim.Vehicle
	Pipe    *pipe.Pipe
	Manager *comm.Manager

	rebootPending bool
}

// New creates a FlightController and adds it to loop.
func New(loop *fx.Loop, store *params.Store, open pipe.Opener, rcSource sim.RCSource) *FlightController {
	fc := &FlightController{
		Params: store,
		Board:  sim.NewBoard(),
		Pipe:   pipe.New(open),
	}
	fc.Board.RC = rcSource
	fc.Board.Flush = func() { fc.Pipe.Flush() }
	fc.Board.OnReset = fc.reset
	fc.Vehicle = sim.NewVehicle(fc.Board, store)
	fc.Manager = comm.NewManager(fc.Pipe, comm.System{
		Params:     store,
		Board:      fc.Board,
		State:      fc.Vehicle,
		Sensors:    fc.Vehicle,
		Estimator:  fc.Vehicle.Estimator(),
		Mux:        fc.Vehicle,
		Mixer:      fc.Vehicle,
		Controller: fc.Vehicle,
		Timer:      loop,
	})
	loop.AddController(fx.PrLvTop, fx.ControlFunc(func(fx.ControlContext) error {
		if fc.rebootPending {
			fc.rebootPending = false
			fc.reboot()
		}
		return nil
	}))
	loop.Add(fc.Pipe, fc.Vehicle, fc.Manager)
	return fc
}

// Boot starts the link manager and applies parameters to every listener.
func (fc *FlightController) Boot() {
	fc.Manager.Init()
	fc.Params.NotifyAll()
}

func (fc *FlightController) reset(bootloader bool) {
	if bootloader {
		glog.Warning("no bootloader on host, rebooting")
	}
	fc.rebootPending = true
}

func (fc *FlightController) reboot() {
	glog.Info("rebooting")
	if fc.Params.Path != "" {
		fc.Params.Read()
	}
	fc.Boot()
}
