// Package joystick reads a Linux joystick device.
package joystick

import "errors"

// ErrUnsupported is returned where joystick devices are not available.
var ErrUnsupported = errors.New("joystick not supported on this platform")

// EventKind distinguishes axis and button events.
type EventKind int

// Event kinds.
const (
	EventOther EventKind = iota
	EventAxis
	EventButton
)

// Event is one state change of the device.
type Event struct {
	Kind EventKind
	// Init marks the synthetic events describing the initial state.
	Init  bool
	Index int
	// Value is the axis position in [-32767, 32767], or 1 for a
	// pressed button.
	Value int
}

// Pressed reports the state of a button.
func (e Event) Pressed() bool {
	return e.Kind == EventButton && e.Value != 0
}

// Info describes an opened device.
type Info struct {
	Index   int
	Name    string
	Axes    int
	Buttons int
}
