// Package config loads console configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the console's process configuration.
type Config struct {
	APIBaseURL    string `env:"HMR_API_URL" envDefault:"https://api.hmr.example.com"`
	UploadBaseURL string `env:"HMR_UPLOAD_URL"`
	DBPath        string `env:"HMR_DB_PATH"`
	DevMode       bool   `env:"HMR_DEV" envDefault:"false"`
}

// Load parses the configuration from environment variables. The upload
// service defaults to the API host when not set separately.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.UploadBaseURL == "" {
		cfg.UploadBaseURL = cfg.APIBaseURL
	}
	return cfg, nil
}
