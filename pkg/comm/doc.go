// Package comm is the flight controller side of the ground link.
//
// A Manager serves parameter requests, executes maintenance commands,
// forwards offboard setpoints and streams telemetry at per-stream rates.
// All of its methods must be called from the host loop goroutine: inbound
// events are pumped by Receive and outbound telemetry is driven by Stream.
package comm
