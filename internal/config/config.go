// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-based configuration for the medium CLI.
// Environment variables are parsed from the MEDIUM_ prefix.
type Config struct {
	// OAuth application credentials. Required only for the authorization
	// and token-exchange commands; token-authenticated commands work
	// without them.
	ApplicationID     string `envconfig:"APPLICATION_ID"`
	ApplicationSecret string `envconfig:"APPLICATION_SECRET"`

	// Self-issued access token. Takes precedence over the stored token
	// but not over the --token flag.
	AccessToken string `envconfig:"ACCESS_TOKEN"`

	// API base URL override, used by tests and proxies.
	APIURL string `envconfig:"API_URL" default:"https://api.medium.com"`

	// Path of the credentials database. Empty means ~/.medium/credentials.db.
	CredentialsPath string `envconfig:"CREDENTIALS_PATH"`
}

// Load merges an optional .env file into the environment and parses
// MEDIUM_* variables. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("medium", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
