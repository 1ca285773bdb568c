package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for the storefront.

The TUI lets you browse the catalog, fill your cart and wishlist, review
orders and, with an admin session, run the back office. Views you may not
open are redirected the same way the web storefront does.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  a        - Add to cart
  w        - Toggle wishlist
  Esc      - Back
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts builds the TUI ports from the configured services.
func tuiPorts() *tui.Ports {
	return &tui.Ports{
		Session:  sessionService,
		Cart:     cartService,
		Wishlist: wishlistService,
		Catalog:  catalogService,
		Orders:   orderService,
		Admin:    adminService,
		Gate:     routeGate,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	primeStores(ctx)
	startWatcher(ctx)

	app, err := tui.NewApp(tuiPorts())
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	if err := app.WithContext(ctx).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// startWatcher runs the session watcher until ctx ends. Watcher errors are
// logged; the command keeps running with the session it has.
func startWatcher(ctx context.Context) {
	if sessionWatcher == nil {
		return
	}
	go func() {
		if err := sessionWatcher.Run(ctx); err != nil {
			logger.Warn("session watcher stopped: %v", err)
		}
	}()
}

// primeStores loads the cart and wishlist of a session restored from
// storage. Restoring does not notify the stores, and the catalog markers of
// a long-running surface read them before any mutation does.
func primeStores(ctx context.Context) {
	if sessionService == nil || sessionService.Identity() == nil {
		return
	}
	if cartService != nil {
		if err := cartService.Fetch(ctx); err != nil {
			logger.Warn("loading cart failed: %v", err)
		}
	}
	if wishlistService != nil {
		if err := wishlistService.Fetch(ctx); err != nil {
			logger.Warn("loading wishlist failed: %v", err)
		}
	}
}
