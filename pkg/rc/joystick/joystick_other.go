// +build !linux

package joystick

// Device is an opened joystick.
type Device struct {
	Info
}

// Open is not supported.
func Open(index int) (*Device, error) {
	return nil, ErrUnsupported
}

// Detect is not supported.
func Detect(startIndex int) (*Device, error) {
	return nil, ErrUnsupported
}

// Close implements io.Closer.
func (d *Device) Close() error {
	return nil
}

// ReadEvent is not supported.
func (d *Device) ReadEvent() (Event, error) {
	return Event{}, ErrUnsupported
}
