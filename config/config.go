// Package config loads runtime settings from BLOCKFALL_* environment
// variables. Board geometry is fixed in the constants package; only the
// knobs a player may reasonably tune live here.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable runtime setting
type Config struct {
	// FeedURL is the ticker-price endpoint polled for the difficulty signal
	FeedURL string `env:"BLOCKFALL_FEED_URL" envDefault:"https://api.binance.com/api/v3/ticker/price"`

	// FeedSymbol selects the instrument whose price trend drives gravity
	FeedSymbol string `env:"BLOCKFALL_FEED_SYMBOL" envDefault:"BTCUSDT"`

	// FeedPoll is the delay between difficulty feed polls
	FeedPoll time.Duration `env:"BLOCKFALL_FEED_POLL" envDefault:"5s"`

	// Gravity is the starting interval between automatic downward ticks
	Gravity time.Duration `env:"BLOCKFALL_GRAVITY" envDefault:"200ms"`

	// Audio toggles sound effects
	Audio bool `env:"BLOCKFALL_AUDIO" envDefault:"true"`

	// LogFile receives session logs; empty discards them (the terminal
	// itself is owned by the renderer)
	LogFile string `env:"BLOCKFALL_LOG"`
}

// Load parses the environment into a Config
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
