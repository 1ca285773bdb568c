// Package tui provides an interactive terminal user interface for the
// storefront. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI uses.
type Ports struct {
	// Session holds the credential and identity.
	Session driving.SessionService

	// Cart mirrors the signed-in account's cart.
	Cart driving.CartService

	// Wishlist mirrors the signed-in account's wishlist.
	Wishlist driving.WishlistService

	// Catalog lists and searches products.
	Catalog driving.CatalogService

	// Orders provides the order history.
	Orders driving.OrderService

	// Admin backs the back-office dashboard.
	Admin driving.AdminService

	// Gate decides where a navigation lands.
	Gate driving.RouteGate
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	switch {
	case p.Session == nil:
		return ErrMissingSessionService
	case p.Catalog == nil:
		return ErrMissingCatalogService
	case p.Cart == nil:
		return ErrMissingCartService
	case p.Wishlist == nil:
		return ErrMissingWishlistService
	case p.Orders == nil:
		return ErrMissingOrderService
	case p.Admin == nil:
		return ErrMissingAdminService
	case p.Gate == nil:
		return ErrMissingRouteGate
	}
	return nil
}
