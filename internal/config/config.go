package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// insecure default kept for local development only; Validate rejects it
// outside the development environment.
const devJWTSecret = "supersecretkey"

type Config struct {
	Addr          string        `yaml:"addr" env:"HYDRATE_ADDR"`
	JWTSecret     string        `yaml:"jwt_secret" env:"HYDRATE_JWT_SECRET"`
	APITimeout    time.Duration `yaml:"timeout" env:"HYDRATE_TIMEOUT"`
	DatabasePath  string        `yaml:"database_path" env:"HYDRATE_DATABASE_PATH"`
	TokenDuration time.Duration `yaml:"token_duration" env:"HYDRATE_TOKEN_DURATION"`
}

// LoadConfig builds the configuration from defaults, then an optional YAML
// file, then environment variables (highest precedence).
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          ":8080",
		JWTSecret:     devJWTSecret,
		APITimeout:    15 * time.Second,
		DatabasePath:  "hydrate.db",
		TokenDuration: 24 * time.Hour,
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded configuration for values that must not reach a
// real deployment.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}

	environment := strings.ToLower(os.Getenv("HYDRATE_ENV"))
	if c.JWTSecret == devJWTSecret && environment != "development" {
		return fmt.Errorf("jwt_secret is the insecure default; set HYDRATE_JWT_SECRET")
	}

	return nil
}
