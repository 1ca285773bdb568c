package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, "http://localhost:8080", s.API.BaseURL)
	assert.Equal(t, 30*time.Second, s.API.Timeout)
	assert.Equal(t, 10.0, s.API.RatePerSecond)
	assert.Equal(t, DefaultTargets(), s.Routes)
	assert.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppSettings)
	}{
		{"empty base url", func(s *AppSettings) { s.API.BaseURL = "" }},
		{"zero timeout", func(s *AppSettings) { s.API.Timeout = 0 }},
		{"negative rate", func(s *AppSettings) { s.API.RatePerSecond = -1 }},
		{"empty login target", func(s *AppSettings) { s.Routes.Login = "" }},
		{"empty home target", func(s *AppSettings) { s.Routes.Home = "" }},
		{"empty admin target", func(s *AppSettings) { s.Routes.AdminHome = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
		})
	}
}

func TestAppSettings_ZeroRateIsValid(t *testing.T) {
	s := DefaultAppSettings()
	s.API.RatePerSecond = 0

	assert.NoError(t, s.Validate())
}
