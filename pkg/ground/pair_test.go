package ground

import (
	"io"
	"sync"
)

type memEndpoint struct {
	in   <-chan []byte
	out  chan<- []byte
	done chan struct{}
	once *sync.Once
}

func memPair() (*memEndpoint, *memEndpoint) {
	a, b := make(chan []byte, 1024), make(chan []byte, 1024)
	done, once := make(chan struct{}), &sync.Once{}
	return &memEndpoint{in: a, out: b, done: done, once: once},
		&memEndpoint{in: b, out: a, done: done, once: once}
}

func (e *memEndpoint) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-e.in:
		return pkt, nil
	case <-e.done:
		return nil, io.EOF
	}
}

func (e *memEndpoint) WritePacket(pkt []byte) error {
	select {
	case e.out <- append([]byte(nil), pkt...):
		return nil
	case <-e.done:
		return io.ErrClosedPipe
	}
}

func (e *memEndpoint) Close() error {
	e.once.Do(func() { close(e.done) })
	return nil
}
