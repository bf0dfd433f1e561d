//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/fgeck/gowol/internal/models"
	"github.com/fgeck/gowol/internal/services/listener"
	"github.com/fgeck/gowol/internal/services/wol"
	"github.com/fgeck/gowol/internal/wakeonlan"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestWOL_LimitedBroadcast_E2E(t *testing.T) {
	mac, err := wakeonlan.ParseHardwareAddr("ff:ff:ff:ff:ff:ff")
	require.NoError(t, err)

	packet, err := wakeonlan.BuildPacket(mac)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xff}, wakeonlan.PacketSize), []byte(packet))

	dst, err := wakeonlan.ParseEndpoint("255.255.255.255")
	require.NoError(t, err)

	ok, err := wakeonlan.Send(packet, dst)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWOL_ServiceToListener_E2E(t *testing.T) {
	l, err := listener.Open(models.ListenConfig{Address: "127.0.0.1", Port: 0}, testLogger())
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan models.WakeEvent, 1)
	go func() {
		_ = l.Serve(ctx, func(ev models.WakeEvent) { events <- ev })
	}()

	svc := wol.NewWithSender(testLogger(), portSender{port: l.LocalAddr().Port()})
	result, err := svc.Wake(ctx, models.WOLConfig{
		MACAddress:  "AA:BB:CC:DD:EE:FF",
		BroadcastIP: "127.0.0.1",
	})
	require.NoError(t, err)
	assert.True(t, result.PacketSent)

	select {
	case ev := <-events:
		assert.Equal(t, "aa:bb:cc:dd:ee:ff", ev.HardwareAddr)
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not receive packet")
	}
}

// RealWOL tests - only run if explicitly configured
func TestRealWOL_E2E(t *testing.T) {
	mac := os.Getenv("TEST_WOL_MAC")
	if mac == "" {
		t.Skip("TEST_WOL_MAC not set")
	}

	bcast := os.Getenv("TEST_WOL_BROADCAST")
	if bcast == "" {
		bcast = "255.255.255.255"
	}

	svc := wol.New(testLogger())

	result, err := svc.Wake(context.Background(), models.WOLConfig{
		MACAddress:  mac,
		BroadcastIP: bcast,
	})

	require.NoError(t, err)
	assert.True(t, result.PacketSent)
}
