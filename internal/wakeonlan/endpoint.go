package wakeonlan

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// DefaultPort is the UDP discard port Wake-on-LAN senders target.
const DefaultPort = 9

// ParseEndpoint resolves a broadcast destination on DefaultPort.
// A CIDR such as "192.168.1.20/24" resolves to the prefix's directed
// broadcast address.
func ParseEndpoint(text string) (netip.AddrPort, error) {
	var addr netip.Addr

	if strings.Contains(text, "/") {
		prefix, err := netip.ParsePrefix(text)
		if err != nil || !prefix.Addr().Is4() {
			return netip.AddrPort{}, fmt.Errorf("parsing %q: %w", text, ErrInvalidBroadcast)
		}
		addr = netipx.PrefixLastIP(prefix.Masked())
	} else {
		a, err := netip.ParseAddr(text)
		if err != nil || !a.Is4() {
			return netip.AddrPort{}, fmt.Errorf("parsing %q: %w", text, ErrInvalidBroadcast)
		}
		addr = a
	}

	return netip.AddrPortFrom(addr, DefaultPort), nil
}
