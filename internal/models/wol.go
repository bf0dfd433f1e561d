package models

import (
	"net/netip"
	"time"
)

// WOLConfig holds the inputs for a single wake request.
type WOLConfig struct {
	MACAddress  string
	BroadcastIP string // dotted quad or IPv4 CIDR
}

// WOLResult holds the result of a Wake-on-LAN operation.
type WOLResult struct {
	PacketSent   bool
	HardwareAddr string
	Target       netip.AddrPort
	Duration     time.Duration
}

// ListenConfig holds settings for receiving magic packets.
type ListenConfig struct {
	Address string
	Port    int
}

// WakeEvent describes one magic packet received by the listener.
type WakeEvent struct {
	HardwareAddr string
	From         netip.AddrPort
	Size         int
	ReceivedAt   time.Time
}
