package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the hirewire client configuration.
type Config struct {
	// APIURL is the HireWire API base URL.
	APIURL string `mapstructure:"api_url" yaml:"api_url"`

	// PollIntervalSec is how often (in seconds) to refetch notifications
	// over REST while the push channel is down.
	PollIntervalSec int `mapstructure:"poll_interval_sec" yaml:"poll_interval_sec"`

	// DropdownCap is the maximum number of rows the notification dropdown
	// overlay shows.
	DropdownCap int `mapstructure:"dropdown_cap" yaml:"dropdown_cap"`
}

// DefaultPath returns the default configuration file path,
// ~/.config/hirewire/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "hirewire", "config.yaml")
}

func defaults() *Config {
	return &Config{
		APIURL:          "https://api.hirewire.dev",
		PollIntervalSec: 30,
		DropdownCap:     8,
	}
}

// Load reads configuration from the given YAML file using Viper. A missing
// file yields the defaults; HIREWIRE_API_URL overrides the base URL either
// way.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("api_url", defaults().APIURL)
	v.SetDefault("poll_interval_sec", defaults().PollIntervalSec)
	v.SetDefault("dropdown_cap", defaults().DropdownCap)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return applyEnv(defaults()), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return applyEnv(defaults()), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.PollIntervalSec <= 0 {
		cfg.PollIntervalSec = defaults().PollIntervalSec
	}
	if cfg.DropdownCap <= 0 {
		cfg.DropdownCap = defaults().DropdownCap
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg *Config) *Config {
	if u := os.Getenv("HIREWIRE_API_URL"); u != "" {
		cfg.APIURL = u
	}
	return cfg
}
