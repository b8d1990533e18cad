package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/abhisek/mathiks/internal/stats"
)

// Config holds runtime settings for the CLI.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default XDG
	// location; ":memory:" uses a throwaway in-memory store.
	DBPath string `env:"MATHIKS_DB"`

	// StorageKey is the key the statistics document is stored under.
	StorageKey string `env:"MATHIKS_STORAGE_KEY"`

	// Quiet suppresses storage warnings on stderr.
	Quiet bool `env:"MATHIKS_QUIET"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		StorageKey: stats.DefaultKey,
	}
}

// Load reads an optional .env file from the working directory and then
// parses environment variables over the defaults.
func Load() (Config, error) {
	// A missing .env file is the normal case.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses environment variables only.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = stats.DefaultKey
	}
	return cfg, nil
}
