//go:build e2e

package e2e

import (
	"net/netip"

	"github.com/fgeck/gowol/internal/wakeonlan"
)

// portSender redirects packets to a test listener port instead of 9.
type portSender struct {
	port uint16
}

func (s portSender) Send(packet wakeonlan.MagicPacket, dst netip.AddrPort) (bool, error) {
	return wakeonlan.Send(packet, netip.AddrPortFrom(dst.Addr(), s.port))
}
