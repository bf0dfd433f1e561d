package wakeonlan

import (
	"fmt"
	"net"
	"net/netip"
)

// Send hands packet to the local network stack as one UDP datagram.
// It opens an ephemeral socket for the call and always closes it.
// There is no acknowledgment: true means the datagram left this host.
func Send(packet MagicPacket, dst netip.AddrPort) (bool, error) {
	if len(packet) < PacketSize {
		return false, fmt.Errorf("got %d bytes: %w", len(packet), ErrInvalidPacketSize)
	}

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
	if err != nil {
		return false, &TransmitError{Op: "bind", Addr: dst, Err: err}
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.WriteToUDPAddrPort(packet[:PacketSize], dst); err != nil {
		return false, &TransmitError{Op: "send", Addr: dst, Err: err}
	}

	return true, nil
}
