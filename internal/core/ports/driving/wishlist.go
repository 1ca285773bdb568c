package driving

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// WishlistService mirrors the signed-in account's server-side wishlist.
type WishlistService interface {
	// Fetch follows the same rules as CartService.Fetch.
	Fetch(ctx context.Context) error

	// IsMember is a local predicate; it never calls the network.
	IsMember(productID domain.ProductID) bool

	// Toggle adds or removes the product, re-fetches, and returns the
	// resulting membership.
	Toggle(ctx context.Context, productID domain.ProductID) (bool, error)

	// Wishlist returns the current snapshot.
	Wishlist() domain.Wishlist
}
