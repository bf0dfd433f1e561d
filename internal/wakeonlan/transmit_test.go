package wakeonlan

import (
	"bytes"
	"errors"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_Loopback(t *testing.T) {
	dst := netip.MustParseAddrPort("127.0.0.1:9")

	ok, err := Send(bytes.Repeat([]byte{0xff}, PacketSize), dst)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSend_DeliversExactlyOnePacket(t *testing.T) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	packet, err := BuildPacket(HardwareAddr{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	// Trailing bytes beyond the magic packet are not transmitted.
	oversized := append(MagicPacket{}, packet...)
	oversized = append(oversized, 0xaa, 0xbb)

	dst := conn.LocalAddr().(*net.UDPAddr).AddrPort()
	ok, err := Send(oversized, dst)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 512)
	n, _, err := conn.ReadFromUDP(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte(packet), buf[:n])
}

func TestSend_ShortPacket(t *testing.T) {
	ok, err := Send(make([]byte, 10), netip.MustParseAddrPort("127.0.0.1:9"))

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidPacketSize)
}

func TestSend_SendFailure(t *testing.T) {
	// An IPv6 destination cannot be written from a udp4 socket.
	dst := netip.MustParseAddrPort("[::1]:9")

	ok, err := Send(make([]byte, PacketSize), dst)

	assert.False(t, ok)
	var txErr *TransmitError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, "send", txErr.Op)
	assert.Equal(t, dst, txErr.Addr)
	assert.NotNil(t, errors.Unwrap(txErr))
}

func TestTransmitError_Error(t *testing.T) {
	cause := errors.New("network is unreachable")
	err := &TransmitError{Op: "send", Addr: netip.MustParseAddrPort("10.0.0.255:9"), Err: cause}

	assert.Equal(t, "send 10.0.0.255:9: network is unreachable", err.Error())
	assert.ErrorIs(t, err, cause)
}
