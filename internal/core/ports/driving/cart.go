package driving

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// CartService mirrors the signed-in account's server-side cart.
type CartService interface {
	// Fetch replaces the local lines with the server's. It clears them without a
	// network call when signed out, and resets them to empty on failure.
	Fetch(ctx context.Context) error

	// Add asks the server for quantity more units, then re-fetches and reports
	// how much the quantity actually grew.
	Add(ctx context.Context, productID domain.ProductID, quantity int) (domain.AddResult, error)

	// Remove deletes the product's line, then re-fetches. No-op when signed out.
	Remove(ctx context.Context, productID domain.ProductID) error

	// Cart returns the current snapshot.
	Cart() domain.Cart

	// ItemCount is the sum of the current line quantities.
	ItemCount() int
}
