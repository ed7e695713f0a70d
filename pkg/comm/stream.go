package comm

// StreamID identifies a telemetry stream.
type StreamID int

// Streams, ticked in this order.
const (
	StreamHeartbeat StreamID = iota
	StreamStatus
	StreamAttitude
	StreamIMU
	StreamDiffPressure
	StreamBaro
	StreamSonar
	StreamMag
	StreamOutputRaw
	StreamRCRaw
	StreamLowPriority

	StreamCount
)

// LowPriorityPeriodUS is the fixed period of the low priority stream.
const LowPriorityPeriodUS = 10000

// Stream is a periodic sender.
type Stream struct {
	periodUS   uint32
	nextTimeUS uint64
	send       func()
}

// NewStream creates a Stream, a zero period disables it.
func NewStream(periodUS uint32, send func()) Stream {
	return Stream{periodUS: periodUS, send: send}
}

// Tick sends at most once when the stream is due. Missed periods are
// skipped rather than sent in a burst.
func (s *Stream) Tick(nowUS uint64) {
	if s.periodUS == 0 || nowUS < s.nextTimeUS {
		return
	}
	for {
		s.nextTimeUS += uint64(s.periodUS)
		if s.nextTimeUS >= nowUS {
			break
		}
	}
	s.send()
}

// SetRate sets the rate in Hz, 0 disables the stream.
func (s *Stream) SetRate(hz uint32) {
	if hz == 0 {
		s.periodUS = 0
	} else {
		s.periodUS = 1000000 / hz
	}
}

// PeriodUS returns the period.
func (s *Stream) PeriodUS() uint32 {
	return s.periodUS
}

// NextTimeUS returns when the stream is next due.
func (s *Stream) NextTimeUS() uint64 {
	return s.nextTimeUS
}
