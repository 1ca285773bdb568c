package mcp

import (
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog browses products.
	Catalog driving.CatalogService

	// Cart mirrors the signed-in account's cart.
	Cart driving.CartService

	// Wishlist mirrors the signed-in account's wishlist.
	Wishlist driving.WishlistService

	// Session reports who is signed in. Optional.
	Session driving.IdentitySource
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Cart == nil {
		return ErrMissingCartService
	}
	if p.Wishlist == nil {
		return ErrMissingWishlistService
	}
	return nil
}
