package domain

import "time"

// AppSettings holds the client's persisted configuration.
type AppSettings struct {
	API    APISettings
	Routes Targets
}

// APISettings configures the REST adapter.
type APISettings struct {
	// BaseURL is the root of the storefront REST API.
	BaseURL string

	// Timeout bounds every HTTP request.
	Timeout time.Duration

	// RatePerSecond throttles outgoing requests. Zero disables throttling.
	RatePerSecond float64
}

// DefaultAppSettings returns sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		API: APISettings{
			BaseURL:       "http://localhost:8080",
			Timeout:       30 * time.Second,
			RatePerSecond: 10,
		},
		Routes: DefaultTargets(),
	}
}

// Validate checks that the settings can drive the client.
func (s AppSettings) Validate() error {
	if s.API.BaseURL == "" || s.API.Timeout <= 0 || s.API.RatePerSecond < 0 {
		return ErrInvalidInput
	}
	if s.Routes.Login == "" || s.Routes.Home == "" || s.Routes.AdminHome == "" {
		return ErrInvalidInput
	}
	return nil
}
