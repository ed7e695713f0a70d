package link

import "errors"

// ErrNotInitialized indicates the link was used before Init.
var ErrNotInitialized = errors.New("link not initialized")

// Handler receives decoded events from a Link.
type Handler interface {
	HandleEvent(Event)
}

// HandleEventFunc is the func form of Handler.
type HandleEventFunc func(Event)

// HandleEvent implements Handler.
func (f HandleEventFunc) HandleEvent(ev Event) {
	f(ev)
}

// Link is the flight controller's view of the ground link.
//
// Receive delivers the events decoded so far to the subscribed Handler,
// one at a time, from the calling goroutine. Handlers must not call Receive.
type Link interface {
	// Init opens the underlying transport.
	Init(baudRate, device uint32) error
	// Subscribe sets the single Handler for inbound events.
	Subscribe(Handler)
	// Receive pumps available inbound events.
	Receive()
	// Send queues an outbound message from the given system.
	Send(sysid uint8, msg Message) error
}

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}
