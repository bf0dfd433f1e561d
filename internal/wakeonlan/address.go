// Package wakeonlan parses hardware addresses, builds magic packets and
// sends them as UDP datagrams.
package wakeonlan

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
)

// HardwareAddrLen is the number of octets in a hardware address.
const HardwareAddrLen = 6

var hardwareAddrPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)

// HardwareAddr is a 6-octet link-layer address.
type HardwareAddr [HardwareAddrLen]byte

// ParseHardwareAddr parses text of the form "aa:bb:cc:dd:ee:ff".
// Hex digits are case-insensitive.
func ParseHardwareAddr(text string) (HardwareAddr, error) {
	if !hardwareAddrPattern.MatchString(text) {
		return HardwareAddr{}, fmt.Errorf("parsing %q: %w", text, ErrInvalidInput)
	}

	addr, err := parseSegments(strings.Split(text, ":"))
	if err != nil {
		return HardwareAddr{}, fmt.Errorf("parsing %q: %w", text, err)
	}
	return addr, nil
}

// parseSegments converts already shape-checked segments into octets.
func parseSegments(segments []string) (HardwareAddr, error) {
	var addr HardwareAddr
	if len(segments) != HardwareAddrLen {
		return addr, fmt.Errorf("got %d segments: %w", len(segments), ErrInvalidLength)
	}

	for i, seg := range segments {
		v, err := strconv.ParseUint(seg, 16, 8)
		if err != nil {
			return HardwareAddr{}, fmt.Errorf("segment %d %q: %w: %w", i, seg, ErrFailedConversion, err)
		}
		addr[i] = byte(v)
	}
	return addr, nil
}

// Bytes returns the octets as a new slice.
func (a HardwareAddr) Bytes() []byte {
	b := make([]byte, HardwareAddrLen)
	copy(b, a[:])
	return b
}

// String renders a as lowercase colon-separated hex.
func (a HardwareAddr) String() string {
	return net.HardwareAddr(a[:]).String()
}
