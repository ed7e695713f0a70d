// Package websocket carries link frames as binary websocket messages.
package websocket

import (
	"io"
	"net"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/fcu.go/pkg/link"
)

// ReadWriter implements PacketReadWriter.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// Dial connects to a Server, used by ground stations.
func Dial(url string) (*ReadWriter, error) {
	conn, err := websocket.Dial(url, "", "http://localhost/")
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &pkt)
	return
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), pkt)
}

// Close implements io.Closer.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}

type session struct {
	conn *websocket.Conn
	done chan struct{}
	once sync.Once
}

func (s *session) close() {
	s.once.Do(func() { close(s.done) })
}

// Server accepts ground stations and serves one at a time. Further
// connections wait until the current one goes away. Packets written while
// no ground station is connected are discarded.
type Server struct {
	listener net.Listener
	server   *http.Server
	connCh   chan *session
	closed   chan struct{}

	lock    sync.Mutex
	current *session
}

// Listen starts serving websocket connections on addr at path.
func Listen(addr, path string) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	s := &Server{
		listener: ln,
		connCh:   make(chan *session),
		closed:   make(chan struct{}),
	}
	mux := http.NewServeMux()
	mux.Handle(path, websocket.Handler(s.serveConn))
	s.server = &http.Server{Handler: mux}
	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			glog.Errorf("websocket server error: %v", err)
		}
	}()
	glog.Infof("websocket link listening on %s%s", ln.Addr(), path)
	return s, nil
}

// Opener returns a link opener listening on addr at path.
func Opener(addr, path string) func(baudRate, device uint32) (link.PacketReadWriter, error) {
	return func(uint32, uint32) (link.PacketReadWriter, error) {
		return Listen(addr, path)
	}
}

// Addr returns the listening address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) serveConn(conn *websocket.Conn) {
	conn.PayloadType = websocket.BinaryFrame
	sess := &session{conn: conn, done: make(chan struct{})}
	select {
	case s.connCh <- sess:
	case <-s.closed:
		return
	}
	glog.Infof("ground station connected from %s", conn.Request().RemoteAddr)
	select {
	case <-sess.done:
	case <-s.closed:
	}
}

// ReadPacket implements PacketReader.
func (s *Server) ReadPacket() ([]byte, error) {
	for {
		s.lock.Lock()
		sess := s.current
		s.lock.Unlock()
		if sess == nil {
			select {
			case sess = <-s.connCh:
				s.lock.Lock()
				s.current = sess
				s.lock.Unlock()
			case <-s.closed:
				return nil, io.EOF
			}
		}
		var pkt []byte
		err := websocket.Message.Receive(sess.conn, &pkt)
		if err == nil {
			return pkt, nil
		}
		glog.Warningf("ground station disconnected: %v", err)
		s.lock.Lock()
		if s.current == sess {
			s.current = nil
		}
		s.lock.Unlock()
		sess.close()
	}
}

// WritePacket implements PacketWriter.
func (s *Server) WritePacket(pkt []byte) error {
	s.lock.Lock()
	sess := s.current
	s.lock.Unlock()
	if sess == nil {
		return nil
	}
	return websocket.Message.Send(sess.conn, pkt)
}

// Close implements io.Closer.
func (s *Server) Close() error {
	select {
	case <-s.closed:
		return nil
	default:
	}
	close(s.closed)
	return s.server.Close()
}
