package wire

import (
	"errors"
	"fmt"

	"github.com/golang/protobuf/proto"

	"github.com/robotalks/fcu.go/pkg/link"
)

// Frame layout
const (
	Magic         byte = 0xFE
	HeaderLen          = 5
	TrailerLen         = 2
	MaxPayloadLen      = 255
	MaxFrameLen        = HeaderLen + MaxPayloadLen + TrailerLen
)

var (
	// ErrShortFrame indicates fewer bytes than a frame header and trailer.
	ErrShortFrame = errors.New("short frame")
	// ErrBadMagic indicates the frame does not start with Magic.
	ErrBadMagic = errors.New("bad magic")
	// ErrBadLength indicates the length byte disagrees with the frame size.
	ErrBadLength = errors.New("bad length")
	// ErrBadCRC indicates checksum mismatch.
	ErrBadCRC = errors.New("bad crc")
	// ErrPayloadTooLarge indicates the encoded message exceeds MaxPayloadLen.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// ErrUnknownMsg indicates a frame carrying an unregistered message ID.
type ErrUnknownMsg struct {
	MsgID link.MsgID
}

// Error implements error.
func (e *ErrUnknownMsg) Error() string {
	return fmt.Sprintf("unknown message: %#02x", uint8(e.MsgID))
}

// Frame is a validated frame.
type Frame struct {
	Seq     uint8
	SysID   uint8
	MsgID   link.MsgID
	Payload []byte
}

// Pack encodes msg into a frame.
func Pack(seq, sysid uint8, msg link.Message) ([]byte, error) {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return nil, err
	}
	if len(payload) > MaxPayloadLen {
		return nil, ErrPayloadTooLarge
	}
	f := Frame{Seq: seq, SysID: sysid, MsgID: msg.MsgID(), Payload: payload}
	return f.Bytes(), nil
}

// Bytes returns encoded bytes for sending.
func (f *Frame) Bytes() []byte {
	l := len(f.Payload)
	b := make([]byte, HeaderLen+l+TrailerLen)
	b[0], b[1], b[2], b[3], b[4] = Magic, byte(l), f.Seq, f.SysID, byte(f.MsgID)
	copy(b[HeaderLen:], f.Payload)
	crc := CRC16(b[1 : HeaderLen+l])
	b[HeaderLen+l], b[HeaderLen+l+1] = byte(crc), byte(crc>>8)
	return b
}

// Unpack validates a raw frame. Payload references pkt.
func Unpack(pkt []byte) (f Frame, err error) {
	if len(pkt) < HeaderLen+TrailerLen {
		return f, ErrShortFrame
	}
	if pkt[0] != Magic {
		return f, ErrBadMagic
	}
	l := int(pkt[1])
	if len(pkt) != HeaderLen+l+TrailerLen {
		return f, ErrBadLength
	}
	crc := uint16(pkt[HeaderLen+l]) | uint16(pkt[HeaderLen+l+1])<<8
	if crc != CRC16(pkt[1:HeaderLen+l]) {
		return f, ErrBadCRC
	}
	f.Seq, f.SysID, f.MsgID = pkt[2], pkt[3], link.MsgID(pkt[4])
	f.Payload = pkt[HeaderLen : HeaderLen+l]
	return f, nil
}

// Decode decodes the payload into actual message.
func (f *Frame) Decode() (link.Message, error) {
	newMsg, ok := MessageTypes[f.MsgID]
	if !ok {
		return nil, &ErrUnknownMsg{MsgID: f.MsgID}
	}
	msg := newMsg()
	if err := proto.Unmarshal(f.Payload, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
