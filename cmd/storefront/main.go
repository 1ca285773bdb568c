// Command storefront is a terminal client for the storefront REST API.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/api"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/watch"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/services"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	environ, err := parseEnvironment()
	if err != nil {
		logger.Error("%v", err)
		return err
	}
	if environ.Verbose {
		logger.SetVerbose(true)
	}

	configStore, err := file.NewConfigStore("")
	if err != nil {
		logger.Error("opening config: %v", err)
		return err
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("Reading settings, using defaults: %v", err)
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}
	environ.apply(settings)

	// An ephemeral session has no database to watch.
	var (
		credentials driven.CredentialStore
		dbPath      string
	)
	if environ.Ephemeral {
		credentials = memory.NewCredentialStore()
	} else {
		store, err := sqlite.NewStore(environ.DataDir)
		if err != nil {
			logger.Error("opening credential store: %v", err)
			return err
		}
		defer store.Close()
		credentials = store.CredentialStore()
		dbPath = store.Path()
	}

	// The client is built before the session that supplies its tokens.
	var session *services.SessionService
	tokens := auth.NewSessionTokenSource(ctx, auth.TokenProviderFunc(func(ctx context.Context) (string, error) {
		return session.GetToken(ctx)
	}))
	client, err := api.NewClient(api.Config{
		BaseURL:       settings.API.BaseURL,
		Timeout:       settings.API.Timeout,
		RatePerSecond: settings.API.RatePerSecond,
		Tokens:        tokens,
	})
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	session = services.NewSessionService(credentials, auth.NewJWTDecoder(), client)
	if err := session.Initialize(ctx); err != nil {
		logger.Warn("Restoring session: %v", err)
	}

	cart := services.NewCartService(session, client)
	wishlist := services.NewWishlistService(session, client)
	session.Subscribe(cart.OnIdentityChanged)
	session.Subscribe(wishlist.OnIdentityChanged)

	var watcher cli.Watcher
	if dbPath != "" {
		watcher = watch.NewCredentialWatcher(filepath.Dir(dbPath), filepath.Base(dbPath), session)
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Session:  session,
		Cart:     cart,
		Wishlist: wishlist,
		Catalog:  services.NewCatalogService(client),
		Orders:   services.NewOrderService(session, client),
		Checkout: services.NewCheckoutService(session, cart, client),
		Account:  services.NewAccountService(session, client, client, client),
		Admin:    services.NewAdminService(session, client, client, client),
		Gate:     services.NewRouteGate(session, nil, settings.Routes),
		Settings: settingsService,
		Watcher:  watcher,
	})

	return cli.ExecuteContext(ctx)
}
