package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// Ensure CheckoutService implements the interface.
var _ driving.CheckoutService = (*CheckoutService)(nil)

// CheckoutService wraps the payment-intent handshake. Card capture happens
// in the hosted payment widget, outside this client.
type CheckoutService struct {
	session driving.IdentitySource
	cart    driving.CartService
	api     driven.PaymentAPI
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(
	session driving.IdentitySource,
	cart driving.CartService,
	api driven.PaymentAPI,
) *CheckoutService {
	return &CheckoutService{session: session, cart: cart, api: api}
}

// Begin refreshes the cart and creates a payment intent for it.
func (s *CheckoutService) Begin(ctx context.Context) (*domain.Checkout, error) {
	identity, err := requireIdentity(s.session)
	if err != nil {
		return nil, err
	}
	if err := s.cart.Fetch(ctx); err != nil {
		return nil, err
	}
	cart := s.cart.Cart()
	if len(cart.Lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domain.ErrInvalidInput)
	}

	intent, err := s.api.CreatePaymentIntent(ctx, identity.AccountID)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	logger.Debug("Payment intent %s for %d lines", intent.ID, len(cart.Lines))

	return &domain.Checkout{Intent: *intent, Lines: cart.Lines, Total: cart.Total()}, nil
}

// Finalize places the order for a captured payment and refreshes the cart,
// which the server empties on success.
func (s *CheckoutService) Finalize(ctx context.Context, paymentIntentID string, addressID int64) error {
	identity, err := requireIdentity(s.session)
	if err != nil {
		return err
	}
	if addressID <= 0 {
		return domain.ErrAddressRequired
	}
	if paymentIntentID == "" {
		return fmt.Errorf("%w: payment intent id is required", domain.ErrInvalidInput)
	}

	req := domain.FinalizeRequest{
		UserID:          identity.AccountID,
		PaymentIntentID: paymentIntentID,
		AddressID:       addressID,
	}
	if err := s.api.FinalizeOrder(ctx, req); err != nil {
		return fmt.Errorf("finalize order: %w", err)
	}

	if err := s.cart.Fetch(ctx); err != nil {
		logger.Warn("Cart refetch after checkout failed: %v", err)
	}
	return nil
}
