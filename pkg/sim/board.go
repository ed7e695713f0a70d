// Package sim simulates the hardware and flight stack around the link
// manager so the flight controller can run on a host.
package sim

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/fcu.go/pkg/link"
	"github.com/robotalks/fcu.go/pkg/rc"
)

// RCSource provides RC channel values.
type RCSource interface {
	Channel(ch int) float32
}

// Board is a simulated board.
type Board struct {
	// RC provides the RC input, neutral sticks when nil.
	RC RCSource
	// Flush writes out queued link output.
	Flush func()
	// OnReset is called after Reset, the process is expected to restart
	// the flight controller.
	OnReset func(bootloader bool)

	start        time.Time
	now          func() time.Time
	sleep        func(time.Duration)
	backup       *link.BackupData
	resets       uint32
	sensorErrors uint32
}

// NewBoard creates a Board whose clock starts now.
func NewBoard() *Board {
	return &Board{start: time.Now(), now: time.Now, sleep: time.Sleep}
}

// ClockMicros implements comm.Board.
func (b *Board) ClockMicros() uint64 {
	return uint64(b.now().Sub(b.start) / time.Microsecond)
}

// ClockMillis implements comm.Board.
func (b *Board) ClockMillis() uint32 {
	return uint32(b.now().Sub(b.start) / time.Millisecond)
}

// ClockDelay implements comm.Board.
func (b *Board) ClockDelay(ms uint32) {
	b.sleep(time.Duration(ms) * time.Millisecond)
}

// SerialFlush implements comm.Board.
func (b *Board) SerialFlush() {
	if b.Flush != nil {
		b.Flush()
	}
}

// Reset implements comm.Board. The reset count survives in the backup data
// like it does in battery backed RAM.
func (b *Board) Reset(bootloader bool) {
	b.resets++
	b.backup = &link.BackupData{ResetCount: b.resets}
	glog.Infof("board reset (bootloader=%v)", bootloader)
	if b.OnReset != nil {
		b.OnReset(bootloader)
	}
}

// SetBackupData stores fault data to be reported after the next connect.
func (b *Board) SetBackupData(data link.BackupData) {
	b.backup = &data
}

// BackupData implements comm.Board.
func (b *Board) BackupData() (link.BackupData, bool) {
	if b.backup == nil {
		return link.BackupData{}, false
	}
	return *b.backup, true
}

// SensorError records a failed sensor read.
func (b *Board) SensorError() {
	b.sensorErrors++
}

// NumSensorErrors implements comm.Board.
func (b *Board) NumSensorErrors() uint32 {
	return b.sensorErrors
}

// RCRead implements comm.Board.
func (b *Board) RCRead(ch int) float32 {
	if b.RC != nil {
		return b.RC.Channel(ch)
	}
	if ch >= 0 && ch < rc.Channels {
		return rc.Neutral[ch]
	}
	return 0
}
