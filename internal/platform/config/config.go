package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the runtime knobs the game reads from the environment.
// Everything has a default; a bare install works without any configuration.
type Config struct {
	// DataDir is where saves and the guardian ledger live.
	// Empty means $HOME/.vpet.
	DataDir string `env:"VPET_DATA_DIR"`

	// TickInterval is the decline scheduler cadence. The decay engine steps
	// once per 15 ticks, so the interval controls how fast game time runs.
	TickInterval time.Duration `env:"VPET_TICK_INTERVAL" envDefault:"250ms"`

	// MaxSlots caps how many save files may coexist.
	MaxSlots int `env:"VPET_MAX_SLOTS" envDefault:"3"`

	LogLevel  string `env:"VPET_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VPET_LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config and resolves DataDir.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".vpet")
	}

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 250 * time.Millisecond
	}
	if cfg.MaxSlots <= 0 {
		cfg.MaxSlots = 3
	}

	return cfg, nil
}
