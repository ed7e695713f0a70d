package wire

import (
	"bufio"
	"io"

	"github.com/golang/glog"
)

// StreamReadWriter implements link.PacketReadWriter over a byte stream.
type StreamReadWriter struct {
	rd     *bufio.Reader
	w      io.Writer
	parser Parser
}

// NewStream wraps a byte stream.
func NewStream(s io.ReadWriter) *StreamReadWriter {
	return &StreamReadWriter{rd: bufio.NewReader(s), w: s}
}

// ReadPacket implements PacketReader.
func (s *StreamReadWriter) ReadPacket() ([]byte, error) {
	for {
		var pkt []byte
		var err error
		if s.parser.Pending() {
			pkt, err = s.parser.Next()
		} else {
			var b byte
			if b, err = s.rd.ReadByte(); err != nil {
				return nil, err
			}
			pkt, err = s.parser.Parse(b)
		}
		if err != nil {
			glog.V(2).Infof("drop frame: %v", err)
			continue
		}
		if pkt != nil {
			out := make([]byte, len(pkt))
			copy(out, pkt)
			return out, nil
		}
	}
}

// WritePacket implements PacketWriter.
func (s *StreamReadWriter) WritePacket(pkt []byte) error {
	_, err := s.w.Write(pkt)
	return err
}

// Dropped reports frames dropped on framing or checksum errors.
func (s *StreamReadWriter) Dropped() int {
	return s.parser.Dropped
}

// Close closes the underlying stream if possible.
func (s *StreamReadWriter) Close() error {
	if closer, ok := s.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
