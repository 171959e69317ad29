package config

import (
	"errors"
	"net/url"
	"time"
)

// Config holds application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if _, err := url.Parse(c.API.BaseURL); err != nil {
		return errors.New("api.base_url must be a valid URL")
	}
	if c.API.RequestTimeout <= 0 {
		return errors.New("api.request_timeout must be positive")
	}
	return nil
}

// APIConfig describes the remote CodeCollab server.
type APIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// SessionConfig contains credential persistence options. An empty TokenFile
// keeps the session in memory only.
type SessionConfig struct {
	TokenFile string `mapstructure:"token_file"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}
