package wakeonlan

import (
	"bytes"
	"fmt"
)

const (
	// SyncStreamLen is the length of the 0xFF preamble.
	SyncStreamLen = 6
	// Repetitions is how many times the hardware address follows the preamble.
	Repetitions = 16
	// PacketSize is the total magic packet length (6 + 16*6).
	PacketSize = SyncStreamLen + Repetitions*HardwareAddrLen
)

// MagicPacket is the Wake-on-LAN payload.
type MagicPacket []byte

// BuildPacket returns the magic packet for addr.
func BuildPacket(addr HardwareAddr) (MagicPacket, error) {
	return assemble(addr[:], Repetitions)
}

// assemble lays out the preamble followed by count copies of target.
func assemble(target []byte, count int) (MagicPacket, error) {
	if len(target) != HardwareAddrLen {
		return nil, fmt.Errorf("got %d bytes: %w", len(target), ErrInvalidBufferLength)
	}

	packet := make([]byte, 0, PacketSize)
	packet = append(packet, bytes.Repeat([]byte{0xff}, SyncStreamLen)...)
	for i := 0; i < count; i++ {
		packet = append(packet, target...)
	}

	if len(packet) != PacketSize {
		return nil, fmt.Errorf("got %d bytes: %w", len(packet), ErrInvalidPacketSize)
	}
	return packet, nil
}
