// Package listener receives Wake-on-LAN magic packets.
package listener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"sync"
	"time"

	"github.com/fgeck/gowol/internal/models"
	"github.com/mdlayher/wol"
	"github.com/rs/zerolog"
)

// maxDatagram comfortably covers a magic packet with a 6-byte password.
const maxDatagram = 1500

// Listener handles incoming Wake-on-LAN packets.
type Listener struct {
	conn   *net.UDPConn
	logger zerolog.Logger
}

// Open binds a UDP socket for cfg. An empty address means 0.0.0.0 and
// port 0 picks an ephemeral port.
func Open(cfg models.ListenConfig, logger zerolog.Logger) (*Listener, error) {
	host := cfg.Address
	if host == "" {
		host = "0.0.0.0"
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid listen port %d", cfg.Port)
	}

	lc := net.ListenConfig{Control: control}
	pc, err := lc.ListenPacket(context.Background(), "udp4", net.JoinHostPort(host, strconv.Itoa(cfg.Port)))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on UDP %s:%d: %w", host, cfg.Port, err)
	}

	l := &Listener{conn: pc.(*net.UDPConn), logger: logger}
	l.logger.Info().Str("address", l.LocalAddr().String()).Msg("WOL listener started")
	return l, nil
}

// LocalAddr returns the bound address.
func (l *Listener) LocalAddr() netip.AddrPort {
	ap := l.conn.LocalAddr().(*net.UDPAddr).AddrPort()
	return netip.AddrPortFrom(ap.Addr().Unmap(), ap.Port())
}

// Serve reads datagrams and calls fn for every valid magic packet until ctx
// is cancelled. It returns nil on cancellation.
func (l *Listener) Serve(ctx context.Context, fn func(models.WakeEvent)) error {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-ctx.Done():
			_ = l.conn.Close()
		case <-done:
		}
	}()
	defer func() {
		close(done)
		wg.Wait()
	}()

	buf := make([]byte, maxDatagram)
	for {
		n, from, err := l.conn.ReadFromUDPAddrPort(buf)
		if err != nil {
			if ctx.Err() != nil {
				l.logger.Info().Msg("WOL listener stopped")
				return nil
			}
			return fmt.Errorf("reading UDP packet: %w", err)
		}

		var mp wol.MagicPacket
		if err := mp.UnmarshalBinary(buf[:n]); err != nil {
			l.logger.Debug().Err(err).Str("from", from.String()).Int("size", n).Msg("ignoring non-magic packet")
			continue
		}

		event := models.WakeEvent{
			HardwareAddr: mp.Target.String(),
			From:         from,
			Size:         n,
			ReceivedAt:   time.Now(),
		}
		l.logger.Info().
			Str("mac", event.HardwareAddr).
			Str("from", from.String()).
			Msg("valid WOL packet received")
		fn(event)
	}
}

// Close releases the socket.
func (l *Listener) Close() error {
	if err := l.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}
