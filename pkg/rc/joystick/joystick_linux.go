// +build linux

package joystick

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

const (
	iocGAXES    uint = 0x80016a11
	iocGBUTTONS uint = 0x80016a12
	iocGNAME    uint = 0x80ff6a13

	evINIT uint8 = 0x80
	evBTN  uint8 = 0x01
	evAXIS uint8 = 0x02
)

// Device is an opened joystick.
type Device struct {
	Info
	file *os.File
}

// Open opens /dev/input/js<index>.
func Open(index int) (*Device, error) {
	f, err := os.OpenFile(fmt.Sprintf("/dev/input/js%d", index), os.O_RDONLY, 0666)
	if err != nil {
		return nil, err
	}
	d := &Device{Info: Info{Index: index}, file: f}
	var axes, buttons uint8
	var name [256]byte
	errno := d.ioctl(iocGAXES, unsafe.Pointer(&axes))
	if errno == 0 {
		errno = d.ioctl(iocGBUTTONS, unsafe.Pointer(&buttons))
	}
	if errno == 0 {
		errno = d.ioctl(iocGNAME, unsafe.Pointer(&name))
	}
	if errno != 0 {
		f.Close()
		return nil, errno
	}
	d.Axes, d.Buttons = int(axes), int(buttons)
	if pos := bytes.IndexByte(name[:], 0); pos >= 0 {
		d.Name = string(name[:pos])
	} else {
		d.Name = string(name[:])
	}
	return d, nil
}

// Detect opens the first device found from startIndex, returns nil if none.
func Detect(startIndex int) (*Device, error) {
	for index := startIndex; index < 256; index++ {
		d, err := Open(index)
		if err == nil {
			return d, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return nil, nil
}

// Close closes the device.
func (d *Device) Close() error {
	return d.file.Close()
}

// ReadEvent blocks for the next event.
func (d *Device) ReadEvent() (Event, error) {
	var raw struct {
		Time   uint32
		Value  int16
		Type   uint8
		Number uint8
	}
	if err := binary.Read(d.file, binary.LittleEndian, &raw); err != nil {
		return Event{}, err
	}
	ev := Event{Init: raw.Type&evINIT != 0, Index: int(raw.Number), Value: int(raw.Value)}
	switch raw.Type &^ evINIT {
	case evAXIS:
		ev.Kind = EventAxis
	case evBTN:
		ev.Kind = EventButton
	}
	return ev, nil
}

func (d *Device) ioctl(req uint, ptr unsafe.Pointer) syscall.Errno {
	_, _, err := syscall.Syscall(syscall.SYS_IOCTL, d.file.Fd(), uintptr(req), uintptr(ptr))
	return err
}
