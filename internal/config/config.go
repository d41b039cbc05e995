// Package config loads ytcsv configuration from the environment.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned when no API key could be resolved from the
// command line or the environment.
var ErrMissingAPIKey = errors.New("YouTube API key is required: pass it as an argument, use --api-key, or set YOUTUBE_API_KEY")

// Config holds the application configuration.
type Config struct {
	// APIKey is the YouTube Data API key from YOUTUBE_API_KEY.
	APIKey string

	// BaseURL overrides the API base URL via YTCSV_API_URL (used by tests).
	BaseURL string
}

// Load reads configuration from the environment, loading a .env file first
// if one is present. A missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIKey:  os.Getenv("YOUTUBE_API_KEY"),
		BaseURL: os.Getenv("YTCSV_API_URL"),
	}
}

// ResolveAPIKey returns the first non-empty candidate key, falling back to
// the environment-provided key, or ErrMissingAPIKey if none is set.
func (c *Config) ResolveAPIKey(candidates ...string) (string, error) {
	for _, k := range candidates {
		if k != "" {
			return k, nil
		}
	}
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	return "", ErrMissingAPIKey
}
