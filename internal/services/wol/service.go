// Package wol provides Wake-on-LAN operations.
package wol

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/fgeck/gowol/internal/models"
	"github.com/fgeck/gowol/internal/wakeonlan"
	"github.com/rs/zerolog"
)

// Service defines the interface for Wake-on-LAN operations.
type Service interface {
	Wake(ctx context.Context, cfg models.WOLConfig) (*models.WOLResult, error)
}

// Sender transmits a built magic packet, allowing it to be mocked.
type Sender interface {
	Send(packet wakeonlan.MagicPacket, dst netip.AddrPort) (bool, error)
}

// DefaultSender sends packets with wakeonlan.Send.
type DefaultSender struct{}

// Send transmits packet to dst.
func (DefaultSender) Send(packet wakeonlan.MagicPacket, dst netip.AddrPort) (bool, error) {
	return wakeonlan.Send(packet, dst)
}

// Impl implements the WOL Service interface.
type Impl struct {
	sender Sender
	logger zerolog.Logger
}

// New creates a new WOL service.
func New(logger zerolog.Logger) *Impl {
	return &Impl{
		sender: DefaultSender{},
		logger: logger,
	}
}

// NewWithSender creates a new WOL service with a custom sender (for testing).
func NewWithSender(logger zerolog.Logger, sender Sender) *Impl {
	return &Impl{
		sender: sender,
		logger: logger,
	}
}

// Wake parses cfg, builds the magic packet and sends it.
func (s *Impl) Wake(ctx context.Context, cfg models.WOLConfig) (*models.WOLResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &models.WOLResult{}
	start := time.Now()

	mac, err := wakeonlan.ParseHardwareAddr(cfg.MACAddress)
	if err != nil {
		return result, fmt.Errorf("invalid MAC address: %w", err)
	}
	result.HardwareAddr = mac.String()

	dst, err := wakeonlan.ParseEndpoint(cfg.BroadcastIP)
	if err != nil {
		return result, fmt.Errorf("invalid broadcast address: %w", err)
	}
	result.Target = dst

	packet, err := wakeonlan.BuildPacket(mac)
	if err != nil {
		return result, fmt.Errorf("failed to build magic packet: %w", err)
	}

	s.logger.Info().
		Str("mac", result.HardwareAddr).
		Str("target", dst.String()).
		Msg("sending WOL packet")

	sent, err := s.sender.Send(packet, dst)
	result.Duration = time.Since(start)
	if err != nil {
		return result, fmt.Errorf("failed to send WOL packet: %w", err)
	}

	result.PacketSent = sent
	s.logger.Debug().Dur("duration", result.Duration).Msg("WOL packet sent successfully")

	return result, nil
}
