package driving

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// OrderService lists placed orders, newest first.
type OrderService interface {
	// History returns the signed-in account's orders.
	History(ctx context.Context) ([]domain.Order, error)

	// All returns every order. Requires the ADMIN role.
	All(ctx context.Context) ([]domain.Order, error)
}
