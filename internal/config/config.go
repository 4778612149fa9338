package config

import (
	"errors"
	"os"
	"time"

	"holdemtable-server/internal/util"
	"holdemtable-server/pkg/poker/holdem"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hold'em table server
type Config struct {
	loaded bool

	Addr string `yaml:"addr" envconfig:"addr"`
	Log  struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Table struct {
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
	} `yaml:"table"`

	// ActionTimeout is the number of seconds a player has to act before they are folded
	// Zero disables the timer
	ActionTimeout int `yaml:"actionTimeout" envconfig:"action_timeout"`

	// Seed makes every shuffle reproducible. Zero shuffles with crypto/rand.
	Seed int64 `yaml:"seed" envconfig:"seed"`

	Cors struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	opts := holdem.DefaultOptions()

	var cfg Config
	cfg.Addr = ":5000"
	cfg.Log.Level = "info"
	cfg.Table.SmallBlind = opts.SmallBlind
	cfg.Table.BigBlind = opts.BigBlind
	cfg.Table.StartingChips = opts.StartingChips
	cfg.ActionTimeout = 30
	cfg.Cors.AllowedOrigins = []string{"*"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from the defaults, then the YAML file in HOLDEM_CONFIG_FILE (config.yaml if unset), then
// HOLDEM_* environment variables. A missing file is not an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// TableOptions returns the options new tables are created with
func (c Config) TableOptions() holdem.Options {
	return holdem.Options{
		SmallBlind:    c.Table.SmallBlind,
		BigBlind:      c.Table.BigBlind,
		StartingChips: c.Table.StartingChips,
		Seed:          c.Seed,
	}
}

// ActionTimeoutDuration returns ActionTimeout as a time.Duration
func (c Config) ActionTimeoutDuration() time.Duration {
	return time.Duration(c.ActionTimeout) * time.Second
}
