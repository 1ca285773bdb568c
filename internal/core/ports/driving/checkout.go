package driving

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// CheckoutService drives the payment-intent handshake around the hosted
// payment widget.
type CheckoutService interface {
	// Begin creates a payment intent for the current cart.
	Begin(ctx context.Context) (*domain.Checkout, error)

	// Finalize places the order once the widget captured the payment, then
	// re-fetches the cart.
	Finalize(ctx context.Context, paymentIntentID string, addressID int64) error
}
