package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// environment holds the STOREFRONT_* overrides. Unset values leave the
// config file in charge.
type environment struct {
	APIURL     string        `env:"STOREFRONT_API_URL"`
	APITimeout time.Duration `env:"STOREFRONT_API_TIMEOUT"`
	DataDir    string        `env:"STOREFRONT_DATA_DIR"`
	Verbose    bool          `env:"STOREFRONT_VERBOSE"`

	// Ephemeral keeps the session in memory for this process only.
	Ephemeral bool `env:"STOREFRONT_EPHEMERAL"`
}

func parseEnvironment() (environment, error) {
	var cfg environment
	if err := env.Parse(&cfg); err != nil {
		return environment{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// apply overlays the environment on settings.
func (e environment) apply(settings *domain.AppSettings) {
	if e.APIURL != "" {
		settings.API.BaseURL = strings.TrimRight(e.APIURL, "/")
	}
	if e.APITimeout > 0 {
		settings.API.Timeout = e.APITimeout
	}
}
