package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fgeck/gowol/internal/models"
	"github.com/fgeck/gowol/internal/services/listener"
	"github.com/fgeck/gowol/internal/wakeonlan"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListenCmd() *cobra.Command {
	cfg := models.ListenConfig{}

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Print received magic packets",
		Long: `Listen for Wake-on-LAN magic packets and print the target MAC address
of each one. Useful for checking that packets reach a host. Runs until
interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListen(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Address, "address", "0.0.0.0", "local IPv4 address to bind")
	cmd.Flags().IntVarP(&cfg.Port, "port", "p", wakeonlan.DefaultPort, "UDP port to listen on")

	return cmd
}

func runListen(cmd *cobra.Command, cfg models.ListenConfig) error {
	l, err := listener.Open(cfg, log.Logger)
	if err != nil {
		log.Error().Err(err).Msg("failed to start listener")
		return err
	}
	defer func() { _ = l.Close() }()

	// Set up context with signal handling
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			log.Warn().Str("signal", sig.String()).Msg("received signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	out := cmd.OutOrStdout()
	return l.Serve(ctx, func(ev models.WakeEvent) {
		fmt.Fprintf(out, "%s wake %s from %s\n",
			ev.ReceivedAt.Format("15:04:05"), ev.HardwareAddr, ev.From)
	})
}
