// Package config provides engine and orchestrator configuration with
// sensible defaults, optionally overridden from a config file or the
// environment.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Config holds the tunable parameters of the engine and the terminal
// front end. None of them affect rules correctness.
type Config struct {
	// SearchDepth is the AI lookahead in plies.
	SearchDepth int `mapstructure:"SEARCH_DEPTH"`

	// MoveTimeMs optionally caps the AI's thinking time per move in
	// milliseconds. Zero means depth-limited only.
	MoveTimeMs int `mapstructure:"MOVE_TIME_MS"`

	// PerftWorkers is the worker count for parallel perft runs.
	PerftWorkers int `mapstructure:"PERFT_WORKERS"`

	// LogFile receives structured game and search diagnostics.
	LogFile string `mapstructure:"LOG_FILE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SearchDepth:  3,
		MoveTimeMs:   0,
		PerftWorkers: 4,
		LogFile:      "chessmind.log",
	}
}

// Load reads configuration from the given file, falling back to defaults
// for anything unset. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("SEARCH_DEPTH", cfg.SearchDepth)
	v.SetDefault("MOVE_TIME_MS", cfg.MoveTimeMs)
	v.SetDefault("PERFT_WORKERS", cfg.PerftWorkers)
	v.SetDefault("LOG_FILE", cfg.LogFile)

	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
