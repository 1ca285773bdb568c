package tui

import "errors"

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("tui: session service is required")

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrMissingCartService is returned when the cart service is not provided.
var ErrMissingCartService = errors.New("tui: cart service is required")

// ErrMissingWishlistService is returned when the wishlist service is not provided.
var ErrMissingWishlistService = errors.New("tui: wishlist service is required")

// ErrMissingOrderService is returned when the order service is not provided.
var ErrMissingOrderService = errors.New("tui: order service is required")

// ErrMissingAdminService is returned when the admin service is not provided.
var ErrMissingAdminService = errors.New("tui: admin service is required")

// ErrMissingRouteGate is returned when the route gate is not provided.
var ErrMissingRouteGate = errors.New("tui: route gate is required")
