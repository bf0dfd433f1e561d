package main

import (
	"fmt"
	"os"

	"github.com/fgeck/gowol/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long:  `Validate the configuration file without sending any packets.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(cmd, opts.configFile)
		},
	}
}

func validateConfig(cmd *cobra.Command, configFile string) error {
	if configFile == "" {
		log.Error().Msg("config file is required")
		return cmd.Help()
	}

	// Check if file exists
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Error().Str("file", configFile).Msg("config file not found")
		return fmt.Errorf("config file not found: %s", configFile)
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		log.Error().Err(err).Str("file", configFile).Msg("configuration validation failed")
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration is valid!")
	fmt.Fprintln(out)
	if cfg.Defaults.BroadcastIP != "" {
		fmt.Fprintf(out, "Default broadcast: %s\n", cfg.Defaults.BroadcastIP)
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Hosts (%d):\n", len(cfg.Hosts))
	for _, name := range config.HostNames(cfg) {
		wolCfg, err := config.Resolve(cfg, name)
		if err != nil {
			return err
		}
		bcast := wolCfg.BroadcastIP
		if bcast == "" {
			bcast = "(none)"
		}
		fmt.Fprintf(out, "  %s: %s via %s\n", name, wolCfg.MACAddress, bcast)
	}

	return nil
}
