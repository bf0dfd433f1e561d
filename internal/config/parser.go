// Package config provides configuration file parsing.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fgeck/gowol/internal/models"
	"github.com/fgeck/gowol/internal/wakeonlan"
	"github.com/spf13/viper"
)

// Parser handles configuration file parsing.
type Parser struct {
	v *viper.Viper
}

// NewParser creates a new configuration parser.
func NewParser() *Parser {
	v := viper.New()
	v.SetConfigType("yaml")
	return &Parser{v: v}
}

// LoadFile loads configuration from a file path.
func (p *Parser) LoadFile(path string) (*models.Config, error) {
	p.v.SetConfigFile(path)

	if err := p.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return p.parse()
}

// LoadReader loads configuration from a reader (useful for testing).
func (p *Parser) LoadReader(content string) (*models.Config, error) {
	if err := p.v.ReadConfig(strings.NewReader(content)); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return p.parse()
}

func (p *Parser) parse() (*models.Config, error) {
	cfg := &models.Config{
		Defaults: models.Defaults{
			BroadcastIP: p.expandEnv(p.v.GetString("defaults.broadcast_ip")),
		},
		Hosts: map[string]models.HostConfig{},
	}

	// Viper lower-cases keys, so host names are case-insensitive.
	for name := range p.v.GetStringMap("hosts") {
		key := "hosts." + name
		host := models.HostConfig{
			MACAddress:  p.expandEnv(p.v.GetString(key + ".mac_address")),
			BroadcastIP: p.expandEnv(p.v.GetString(key + ".broadcast_ip")),
		}

		if host.MACAddress == "" {
			return nil, fmt.Errorf("%s.mac_address is required", key)
		}
		cfg.Hosts[name] = host
	}

	return cfg, nil
}

// expandEnv expands environment variables in the format ${VAR} or $VAR.
func (p *Parser) expandEnv(s string) string {
	return os.ExpandEnv(s)
}

// Validate performs validation on the loaded configuration.
func Validate(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if cfg.Defaults.BroadcastIP != "" {
		if _, err := wakeonlan.ParseEndpoint(cfg.Defaults.BroadcastIP); err != nil {
			return fmt.Errorf("defaults.broadcast_ip: %w", err)
		}
	}

	for _, name := range HostNames(cfg) {
		host := cfg.Hosts[name]
		if _, err := wakeonlan.ParseHardwareAddr(host.MACAddress); err != nil {
			return fmt.Errorf("hosts.%s.mac_address: %w", name, err)
		}
		if host.BroadcastIP == "" {
			continue
		}
		if _, err := wakeonlan.ParseEndpoint(host.BroadcastIP); err != nil {
			return fmt.Errorf("hosts.%s.broadcast_ip: %w", name, err)
		}
	}

	return nil
}

// Resolve returns the wake request for the named host, falling back to
// the defaults for an unset broadcast address.
func Resolve(cfg *models.Config, name string) (models.WOLConfig, error) {
	if cfg == nil {
		return models.WOLConfig{}, fmt.Errorf("configuration is nil")
	}

	host, ok := cfg.Hosts[strings.ToLower(name)]
	if !ok {
		return models.WOLConfig{}, fmt.Errorf("host %q not found in config", name)
	}

	wolCfg := models.WOLConfig{
		MACAddress:  host.MACAddress,
		BroadcastIP: host.BroadcastIP,
	}
	if wolCfg.BroadcastIP == "" {
		wolCfg.BroadcastIP = cfg.Defaults.BroadcastIP
	}
	return wolCfg, nil
}

// HostNames returns the configured host names in sorted order.
func HostNames(cfg *models.Config) []string {
	if cfg == nil {
		return nil
	}

	names := make([]string, 0, len(cfg.Hosts))
	for name := range cfg.Hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
