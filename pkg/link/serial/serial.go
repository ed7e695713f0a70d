// Package serial opens framed links over serial ports.
package serial

import (
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"

	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/link/wire"
)

// DefaultReadTimeout bounds a single read so closing the port unblocks readers.
const DefaultReadTimeout = 100 * time.Millisecond

// Port is an open serial port carrying frames.
type Port struct {
	*wire.StreamReadWriter
	Device string
	Baud   int

	port *serial.Port
}

// Open opens device at baud.
func Open(device string, baud int) (*Port, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        device,
		Baud:        baud,
		ReadTimeout: DefaultReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s error: %v", device, err)
	}
	return &Port{
		StreamReadWriter: wire.NewStream(&timeoutReader{port}),
		Device:           device,
		Baud:             baud,
		port:             port,
	}, nil
}

// Close implements io.Closer.
func (p *Port) Close() error {
	return p.port.Close()
}

// Opener selects one of devices using the link device parameter.
func Opener(devices []string) func(baudRate, device uint32) (link.PacketReadWriter, error) {
	return func(baudRate, device uint32) (link.PacketReadWriter, error) {
		if int(device) >= len(devices) {
			return nil, fmt.Errorf("serial device %d not configured (%d available)", device, len(devices))
		}
		return Open(devices[device], int(baudRate))
	}
}

// timeoutReader retries reads which return nothing because of ReadTimeout,
// so the framing layer sees a blocking stream. An expired timeout surfaces
// as io.EOF on posix ports.
type timeoutReader struct {
	port *serial.Port
}

func (r *timeoutReader) Read(b []byte) (int, error) {
	for {
		n, err := r.port.Read(b)
		if n > 0 || (err != nil && err != io.EOF) {
			return n, err
		}
	}
}

func (r *timeoutReader) Write(b []byte) (int, error) {
	return r.port.Write(b)
}

func (r *timeoutReader) Close() error {
	return r.port.Close()
}
