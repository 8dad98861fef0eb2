// Package config loads the houstonswapd process configuration, following
// the teacher's config package: a flat TOML file decoded with
// github.com/BurntSushi/toml, with defaults filled in for anything left
// blank.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the top-level process configuration.
type Config struct {
	DataDir     string `toml:"DataDir"`
	NetworkName string `toml:"NetworkName"`

	AdminAddress string `toml:"AdminAddress"`

	HouDecimals uint8  `toml:"HouDecimals"`
	HouSymbol   string `toml:"HouSymbol"`
	HouName     string `toml:"HouName"`

	MetricsListenAddress string `toml:"MetricsListenAddress"`
	LogEnvironment       string `toml:"LogEnvironment"`
}

// Load reads path as TOML into a Config, writing a default file first if
// none exists.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	for _, undecoded := range meta.Undecoded() {
		return nil, fmt.Errorf("config: unknown key %q in %s", undecoded.String(), path)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = "./data"
	}
	if strings.TrimSpace(cfg.NetworkName) == "" {
		cfg.NetworkName = "houstonswap-local"
	}
	if cfg.HouDecimals == 0 {
		cfg.HouDecimals = 8
	}
	if strings.TrimSpace(cfg.HouSymbol) == "" {
		cfg.HouSymbol = "HOU"
	}
	if strings.TrimSpace(cfg.HouName) == "" {
		cfg.HouName = "Houston Token"
	}
	if strings.TrimSpace(cfg.MetricsListenAddress) == "" {
		cfg.MetricsListenAddress = "127.0.0.1:9464"
	}
	if strings.TrimSpace(cfg.LogEnvironment) == "" {
		cfg.LogEnvironment = "development"
	}
}

func createDefault(path string) (*Config, error) {
	cfg := &Config{}
	applyDefaults(cfg)
	if err := write(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func write(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}
