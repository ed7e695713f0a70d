package websocket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServerRoundTrip(t *testing.T) {
	srv, err := Listen("127.0.0.1:0", "/fcu")
	require.NoError(t, err)
	defer srv.Close()

	require.NoError(t, srv.WritePacket([]byte{0}), "no ground station, discarded")

	client, err := Dial("ws://" + srv.Addr().String() + "/fcu")
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.WritePacket([]byte{1, 2, 3}))
	pkt, err := srv.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, pkt)

	require.NoError(t, srv.WritePacket([]byte{4, 5}))
	pkt, err = client.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{4, 5}, pkt)
}

func TestServerClose(t *testing.T) {
	srv, err := Listen("127.0.0.1:0", "/")
	require.NoError(t, err)
	require.NoError(t, srv.Close())
	require.NoError(t, srv.Close())
	_, err = srv.ReadPacket()
	require.Error(t, err)
}
