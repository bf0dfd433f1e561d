package wakeonlan

import (
	"errors"
	"fmt"
	"net/netip"
)

// Hardware address parse failures.
var (
	ErrInvalidInput     = errors.New("hardware address must be six colon-separated hex pairs")
	ErrInvalidLength    = errors.New("hardware address must have exactly 6 octets")
	ErrFailedConversion = errors.New("hardware address octet is not a valid hex byte")
)

// Magic packet assembly failures.
var (
	ErrInvalidBufferLength = errors.New("hardware address buffer must be 6 bytes")
	ErrInvalidPacketSize   = errors.New("magic packet must be 102 bytes")
)

// ErrInvalidBroadcast is returned for destinations that are not IPv4.
var ErrInvalidBroadcast = errors.New("broadcast address must be IPv4 dotted-quad or CIDR")

// TransmitError records a failure to bind or send the datagram.
type TransmitError struct {
	Op   string // "bind" or "send"
	Addr netip.AddrPort
	Err  error
}

// Error formats the operation, destination and cause.
func (e *TransmitError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransmitError) Unwrap() error {
	return e.Err
}
