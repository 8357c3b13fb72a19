package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-based configuration for the MCP server
type Config struct {
	// Restrict tools to a single subscription instead of enumerating every
	// enabled one
	SubscriptionID string `envconfig:"AZURE_SUBSCRIPTION_ID"`

	CallTimeout time.Duration `envconfig:"CALL_TIMEOUT" default:"60s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("fabricdoctor", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
