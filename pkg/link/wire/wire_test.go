package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/fcu.go/pkg/link"
)

func TestCRC16(t *testing.T) {
	require.Equal(t, uint16(0x6F91), CRC16([]byte("123456789")))
	require.Equal(t, uint16(0xFFFF), CRC16(nil))
}

func TestPackUnpack(t *testing.T) {
	msgs := []link.Message{
		&link.Heartbeat{FixedWing: true},
		&link.ParamValue{ParamID: "SYS_ID", Index: 0, Count: 30, Type: link.ParamTypeInt32, IntValue: 7},
		&link.CommandAck{Command: link.CommandReboot, Success: true},
		&link.Attitude{},
	}
	for n, msg := range msgs {
		pkt, err := Pack(uint8(n), 3, msg)
		require.NoError(t, err)
		f, err := Unpack(pkt)
		require.NoError(t, err)
		require.Equal(t, uint8(n), f.Seq)
		require.Equal(t, uint8(3), f.SysID)
		require.Equal(t, msg.MsgID(), f.MsgID)
		decoded, err := f.Decode()
		require.NoError(t, err)
		require.Equal(t, msg, decoded)
	}
}

func TestUnpackErrors(t *testing.T) {
	pkt, err := Pack(0, 1, &link.Version{Version: "v1"})
	require.NoError(t, err)
	corrupt := func(fn func([]byte) []byte) []byte {
		b := append([]byte(nil), pkt...)
		return fn(b)
	}
	testCases := []struct {
		name string
		pkt  []byte
		err  error
	}{
		{"short", pkt[:4], ErrShortFrame},
		{"magic", corrupt(func(b []byte) []byte { b[0] = 0; return b }), ErrBadMagic},
		{"length", corrupt(func(b []byte) []byte { return b[:len(b)-1] }), ErrBadLength},
		{"crc", corrupt(func(b []byte) []byte { b[HeaderLen] ^= 0xff; return b }), ErrBadCRC},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unpack(tc.pkt)
			require.Equal(t, tc.err, err)
		})
	}

	f := Frame{MsgID: 0x7f}
	_, err = Unpack(f.Bytes())
	require.NoError(t, err)
	_, err = f.Decode()
	require.Equal(t, &ErrUnknownMsg{MsgID: 0x7f}, err)
}

func TestPayloadTooLarge(t *testing.T) {
	_, err := Pack(0, 1, &link.LogMessage{Text: string(make([]byte, MaxPayloadLen))})
	require.Equal(t, ErrPayloadTooLarge, err)
}

func TestStreamResync(t *testing.T) {
	good1, err := Pack(1, 1, &link.Heartbeat{})
	require.NoError(t, err)
	good2, err := Pack(2, 1, &link.Version{Version: "dev"})
	require.NoError(t, err)
	bad := append([]byte(nil), good2...)
	bad[len(bad)-1] ^= 0xff

	var buf bytes.Buffer
	s := NewStream(&buf)
	buf.Write([]byte{0x00, 0x13})
	require.NoError(t, s.WritePacket(good1))
	buf.Write(bad)
	buf.Write([]byte{0x42})
	require.NoError(t, s.WritePacket(good2))

	pkt, err := s.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, good1, pkt)
	pkt, err = s.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, good2, pkt)
	require.Equal(t, 1, s.Dropped())
	_, err = s.ReadPacket()
	require.Error(t, err)
}

func TestParserPartial(t *testing.T) {
	pkt, err := Pack(9, 1, &link.Heartbeat{FixedWing: true})
	require.NoError(t, err)
	var p Parser
	for n, b := range pkt {
		out, err := p.Parse(b)
		require.NoError(t, err)
		if n < len(pkt)-1 {
			require.Nil(t, out)
		} else {
			require.Equal(t, pkt, out)
		}
	}
}

func TestStreamRescansRejectedFrame(t *testing.T) {
	good1, err := Pack(1, 1, &link.Heartbeat{})
	require.NoError(t, err)
	good2, err := Pack(2, 1, &link.Version{Version: "dev"})
	require.NoError(t, err)

	var buf bytes.Buffer
	s := NewStream(&buf)
	// stray magic claiming a full size frame which covers both good ones
	buf.Write([]byte{Magic, 0xff})
	buf.Write(good1)
	buf.Write(good2)
	buf.Write(make([]byte, MaxFrameLen))

	pkt, err := s.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, good1, pkt)
	pkt, err = s.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, good2, pkt)
	require.Equal(t, 1, s.Dropped())
	_, err = s.ReadPacket()
	require.Error(t, err)
}

func TestParserRequeueKeepsQueuedBytes(t *testing.T) {
	good, err := Pack(3, 1, &link.Heartbeat{})
	require.NoError(t, err)
	var p Parser
	// the rescan of the outer frame rejects an inner one while good is
	// still queued behind it
	in := []byte{Magic, 0x10, Magic, 0, 0, 0, 0, 0, 0}
	in = append(in, good...)
	in = append(in, make([]byte, 7)...)
	var out [][]byte
	feed := func(pkt []byte, err error) {
		if err == nil && pkt != nil {
			out = append(out, append([]byte(nil), pkt...))
		}
	}
	for _, b := range in {
		feed(p.Parse(b))
		for p.Pending() {
			feed(p.Next())
		}
	}
	require.Equal(t, [][]byte{good}, out)
	require.Equal(t, 2, p.Dropped)
	require.False(t, p.Pending())
}
