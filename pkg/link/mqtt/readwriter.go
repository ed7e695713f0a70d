package mqtt

import (
	"context"
	"io"
	"sync"

	"github.com/robotalks/fcu.go/pkg/link"
)

// Topic suffixes under the node name.
const (
	TopicDown = "down" // ground to flight controller
	TopicUp   = "up"   // flight controller to ground
)

// ReadWriter implements link.PacketReadWriter over a pair of topics.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	packetCh  chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, 16),
		done:     make(chan struct{}),
	}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// ForNode sets topics for the flight controller named node.
func (p *ReadWriter) ForNode(node string) *ReadWriter {
	return p.WithTopics(node+"/"+TopicDown, node+"/"+TopicUp)
}

// ForGround sets topics for a ground station talking to node.
func (p *ReadWriter) ForGround(node string) *ReadWriter {
	return p.WithTopics(node+"/"+TopicUp, node+"/"+TopicDown)
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.done:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter. Delivery is best effort, the
// publish token is not awaited.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	p.Queue.Pub(p.PubTopic, pkt)
	return nil
}

// Run implements Runnable.
func (p *ReadWriter) Run(ctx context.Context) error {
	sub := p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
	defer sub.Close()
	<-ctx.Done()
	return ctx.Err()
}

// Close implements io.Closer and disconnects the Queue.
func (p *ReadWriter) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.Queue.Close()
	})
	return nil
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.done:
	}
}

// Opener connects to brokerURL and returns a flight controller side opener
// for node. The link parameters are ignored.
func Opener(brokerURL, node string) func(baudRate, device uint32) (link.PacketReadWriter, error) {
	return func(uint32, uint32) (link.PacketReadWriter, error) {
		q, err := NewQueueFromURL(brokerURL)
		if err != nil {
			return nil, err
		}
		if err = q.Connect(); err != nil {
			return nil, err
		}
		return NewPacketReadWriter(q).ForNode(node), nil
	}
}
