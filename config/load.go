package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// secrets collects the values that should come from the environment rather
// than the config file.
type secrets struct {
	SessionSecret string `env:"SESSION_SECRET"`
	MoviesAPIKey  string `env:"MOVIES_API_KEY"`
}

// Load builds the configuration from defaults, an optional TOML file, and
// environment variable overlays, then validates the result. An empty path
// skips the file and uses defaults plus environment only.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to read environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnv overlays secrets from the environment onto the config. OAuth2
// client credentials follow the OAUTH2_<PROVIDER>_CLIENT_ID /
// OAUTH2_<PROVIDER>_CLIENT_SECRET naming scheme.
func applyEnv(cfg *Config) error {
	var s secrets
	if err := env.Parse(&s); err != nil {
		return err
	}
	if s.SessionSecret != "" {
		cfg.Session.Secret = s.SessionSecret
	}
	if s.MoviesAPIKey != "" {
		cfg.Movies.APIKey = s.MoviesAPIKey
	}

	for name, provider := range cfg.OAuth2Providers {
		prefix := "OAUTH2_" + strings.ToUpper(name) + "_"
		if v := os.Getenv(prefix + "CLIENT_ID"); v != "" {
			provider.ClientID = v
		}
		if v := os.Getenv(prefix + "CLIENT_SECRET"); v != "" {
			provider.ClientSecret = v
		}
		cfg.OAuth2Providers[name] = provider
	}

	return nil
}
