package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change client settings",
	Long: `Show and change the settings stored in config.toml.

Keys:
  api.base_url         storefront API root
  api.timeout_seconds  per-request timeout
  api.rate_per_second  client-side request limit (0 = unlimited)
  routes.login         where signed-out users are sent
  routes.home          storefront landing view
  routes.admin_home    back-office landing view`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("[api]")
	cmd.Printf("  base_url = %s\n", settings.API.BaseURL)
	cmd.Printf("  timeout_seconds = %d\n", int(settings.API.Timeout/time.Second))
	cmd.Printf("  rate_per_second = %g\n", settings.API.RatePerSecond)
	cmd.Println()
	cmd.Println("[routes]")
	cmd.Printf("  login = %s\n", settings.Routes.Login)
	cmd.Printf("  home = %s\n", settings.Routes.Home)
	cmd.Printf("  admin_home = %s\n", settings.Routes.AdminHome)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	key, value := args[0], args[1]

	if key == "api.base_url" {
		if err := settingsService.SetAPIBaseURL(value); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}
		cmd.Printf("%s = %s\n", key, value)
		return nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := applySetting(settings, key, value); err != nil {
		return err
	}
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func applySetting(settings *domain.AppSettings, key, value string) error {
	switch key {
	case "api.timeout_seconds":
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("invalid timeout %q: use a positive number of seconds", value)
		}
		settings.API.Timeout = time.Duration(seconds) * time.Second
	case "api.rate_per_second":
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate < 0 {
			return fmt.Errorf("invalid rate %q: use a non-negative number", value)
		}
		settings.API.RatePerSecond = rate
	case "routes.login":
		settings.Routes.Login = value
	case "routes.home":
		settings.Routes.Home = value
	case "routes.admin_home":
		settings.Routes.AdminHome = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}
