package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyAPIBaseURL     = "api.base_url"
	keyAPITimeout     = "api.timeout_seconds"
	keyAPIRate        = "api.rate_per_second"
	keyRouteLogin     = "routes.login"
	keyRouteHome      = "routes.home"
	keyRouteAdminHome = "routes.admin_home"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing keys take defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:       s.getString(keyAPIBaseURL, defaults.API.BaseURL),
			Timeout:       s.getSeconds(keyAPITimeout, defaults.API.Timeout),
			RatePerSecond: s.getFloat(keyAPIRate, defaults.API.RatePerSecond),
		},
		Routes: domain.Targets{
			Login:     s.getString(keyRouteLogin, defaults.Routes.Login),
			Home:      s.getString(keyRouteHome, defaults.Routes.Home),
			AdminHome: s.getString(keyRouteAdminHome, defaults.Routes.AdminHome),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyAPIBaseURL, settings.API.BaseURL},
		{keyAPITimeout, int(settings.API.Timeout / time.Second)},
		{keyAPIRate, settings.API.RatePerSecond},
		{keyRouteLogin, settings.Routes.Login},
		{keyRouteHome, settings.Routes.Home},
		{keyRouteAdminHome, settings.Routes.AdminHome},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// SetAPIBaseURL updates the REST API root. Only http and https are accepted.
func (s *SettingsService) SetAPIBaseURL(raw string) error {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: invalid API URL %q", domain.ErrInvalidInput, raw)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.API.BaseURL = raw
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(key)
	if val < 0 {
		return defaultVal
	}
	return val
}
