package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

func TestParseEnvironment(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "https://shop.example.com/")
	t.Setenv("STOREFRONT_API_TIMEOUT", "5s")
	t.Setenv("STOREFRONT_DATA_DIR", "/tmp/storefront")
	t.Setenv("STOREFRONT_VERBOSE", "true")
	t.Setenv("STOREFRONT_EPHEMERAL", "1")

	cfg, err := parseEnvironment()

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, "/tmp/storefront", cfg.DataDir)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Ephemeral)
}

func TestParseEnvironment_Invalid(t *testing.T) {
	t.Setenv("STOREFRONT_API_TIMEOUT", "soon")

	_, err := parseEnvironment()

	assert.Error(t, err)
}

func TestEnvironment_Apply(t *testing.T) {
	settings := domain.DefaultAppSettings()

	environment{}.apply(&settings)
	assert.Equal(t, domain.DefaultAppSettings(), settings)

	environment{APIURL: "https://shop.example.com/", APITimeout: 5 * time.Second}.apply(&settings)
	assert.Equal(t, "https://shop.example.com", settings.API.BaseURL)
	assert.Equal(t, 5*time.Second, settings.API.Timeout)
	assert.Equal(t, domain.DefaultAppSettings().API.RatePerSecond, settings.API.RatePerSecond)
}
