package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fgeck/gowol/internal/config"
	"github.com/fgeck/gowol/internal/models"
	"github.com/fgeck/gowol/internal/services/wol"
	"github.com/fgeck/gowol/internal/wakeonlan"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

type rootOptions struct {
	mac        string
	bcast      string
	host       string
	configFile string
	verbose    bool
	quiet      bool
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gowol",
		Short: "Send a Wake-on-LAN magic packet",
		Long: `gowol wakes a sleeping machine by sending a Wake-on-LAN magic packet
to UDP port 9 on a broadcast address.

The broadcast address may be a dotted quad (192.168.1.255) or an IPv4
CIDR (192.168.1.20/24), which is resolved to the subnet's broadcast
address. Named hosts can be kept in a YAML config file and selected
with --host.`,
		Example: `  gowol -m AA:BB:CC:DD:EE:FF -b 192.168.1.255
  gowol --config gowol.yaml --host nas`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts)
		},
		RunE:         opts.runWake,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      Version,
	}

	cmd.Flags().StringVarP(&opts.mac, "mac", "m", "", "MAC address in the form FF:FF:FF:FF:FF:FF")
	cmd.Flags().StringVarP(&opts.bcast, "bcast", "b", "", "broadcast address (dotted quad or IPv4 CIDR)")
	cmd.Flags().StringVar(&opts.host, "host", "", "named host from the config file")

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose (debug) output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "enable quiet mode (errors only)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output logs in JSON format")

	cmd.AddCommand(newListenCmd())
	cmd.AddCommand(newValidateCmd(opts))

	return cmd
}

func (o *rootOptions) runWake(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	wolCfg, err := o.resolve(flags.Changed("mac"), flags.Changed("bcast"))
	if err != nil {
		log.Error().Err(err).Msg("could not resolve host")
		return err
	}

	// A missing MAC is a request for help, a present one must parse.
	if !flags.Changed("mac") && wolCfg.MACAddress == "" {
		return cmd.Help()
	}
	if _, err := wakeonlan.ParseHardwareAddr(wolCfg.MACAddress); err != nil {
		log.Error().Err(err).Msg("could not parse mac")
		return fmt.Errorf("could not parse mac: %w", err)
	}
	if !flags.Changed("bcast") && wolCfg.BroadcastIP == "" {
		return cmd.Help()
	}

	svc := wol.New(log.Logger)
	result, err := svc.Wake(cmd.Context(), wolCfg)
	if err != nil {
		log.Error().Err(err).Msg("could not send wake request")
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "packet sent to %s\n", result.Target)
	return nil
}

// resolve merges the named config host with explicit flags, flags winning
// even when set to an empty value.
func (o *rootOptions) resolve(macSet, bcastSet bool) (models.WOLConfig, error) {
	var wolCfg models.WOLConfig

	if o.host != "" {
		if o.configFile == "" {
			return wolCfg, fmt.Errorf("--host requires --config")
		}
		cfg, err := loadConfig(o.configFile)
		if err != nil {
			return wolCfg, err
		}
		wolCfg, err = config.Resolve(cfg, o.host)
		if err != nil {
			return wolCfg, err
		}
	}

	if macSet {
		wolCfg.MACAddress = o.mac
	}
	if bcastSet {
		wolCfg.BroadcastIP = o.bcast
	}
	return wolCfg, nil
}

func loadConfig(path string) (*models.Config, error) {
	parser := config.NewParser()
	cfg, err := parser.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setupLogging(out io.Writer, opts *rootOptions) {
	// Set output format
	if opts.jsonOutput {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
		output.FormatLevel = func(i interface{}) string {
			if s, ok := i.(string); ok {
				return strings.ToUpper(s)
			}
			return ""
		}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set log level
	switch {
	case opts.quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case opts.verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
