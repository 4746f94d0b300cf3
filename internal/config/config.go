// Package config loads client configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the client reads from the environment. The
// --db flag overrides DBPath; flag handling lives in cmd.
type Config struct {
	// APIBaseURL is the scoring service endpoint. Empty means offline.
	APIBaseURL string `env:"UPSKILL_API_URL"`

	// APIToken authenticates submissions to the scoring service.
	APIToken string `env:"UPSKILL_API_TOKEN"`

	// HTTPTimeout bounds a single submission round trip.
	HTTPTimeout time.Duration `env:"UPSKILL_HTTP_TIMEOUT" envDefault:"15s"`

	// Offline forces the local scorer even when an API URL is set.
	Offline bool `env:"UPSKILL_OFFLINE"`

	// DBPath overrides the default local history database location.
	DBPath string `env:"UPSKILL_DB"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// UseLocalScorer reports whether submissions should be graded locally.
func (c Config) UseLocalScorer() bool {
	return c.Offline || c.APIBaseURL == ""
}
