// Package cli implements the storefront command line on top of cobra.
//
// Commands reach the core through the package-level services assigned once
// by SetServices before Execute. A command whose service is missing fails
// with a "not configured" error instead of panicking.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Core services used by the commands.
var (
	sessionService  driving.SessionService
	cartService     driving.CartService
	wishlistService driving.WishlistService
	catalogService  driving.CatalogService
	orderService    driving.OrderService
	checkoutService driving.CheckoutService
	accountService  driving.AccountService
	adminService    driving.AdminService
	routeGate       driving.RouteGate
	settingsService driving.SettingsService
	sessionWatcher  Watcher
)

// Watcher keeps the session in step with changes made by other processes
// while a long-running command (tui, mcp serve) is active.
type Watcher interface {
	Run(ctx context.Context) error
}

// Services bundles everything the commands drive.
type Services struct {
	Session  driving.SessionService
	Cart     driving.CartService
	Wishlist driving.WishlistService
	Catalog  driving.CatalogService
	Orders   driving.OrderService
	Checkout driving.CheckoutService
	Account  driving.AccountService
	Admin    driving.AdminService
	Gate     driving.RouteGate
	Settings driving.SettingsService

	// Watcher is optional.
	Watcher Watcher
}

// SetServices assigns the services used by every command.
func SetServices(s Services) {
	sessionService = s.Session
	cartService = s.Cart
	wishlistService = s.Wishlist
	catalogService = s.Catalog
	orderService = s.Orders
	checkoutService = s.Checkout
	accountService = s.Account
	adminService = s.Admin
	routeGate = s.Gate
	settingsService = s.Settings
	sessionWatcher = s.Watcher
}

// SetVersion overrides the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Shop the storefront from your terminal",
	Long: `storefront is a terminal client for the storefront REST API.

Browse and search the catalog, manage your cart and wishlist, check out,
review your orders, and run the back office when signed in as an admin.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to every command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
