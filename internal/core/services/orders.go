package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Ensure OrderService implements the interface.
var _ driving.OrderService = (*OrderService)(nil)

// OrderService lists orders newest first.
type OrderService struct {
	session driving.IdentitySource
	api     driven.OrderAPI
}

// NewOrderService creates an order service.
func NewOrderService(session driving.IdentitySource, api driven.OrderAPI) *OrderService {
	return &OrderService{session: session, api: api}
}

// History returns the signed-in account's orders.
func (s *OrderService) History(ctx context.Context) ([]domain.Order, error) {
	identity, err := requireIdentity(s.session)
	if err != nil {
		return nil, err
	}
	orders, err := s.api.OrdersByAccount(ctx, identity.AccountID)
	if err != nil {
		return nil, fmt.Errorf("order history: %w", err)
	}
	domain.SortOrdersNewestFirst(orders)
	return orders, nil
}

// All returns every order in the store. Requires ADMIN.
func (s *OrderService) All(ctx context.Context) ([]domain.Order, error) {
	if _, err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	orders, err := s.api.AllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("all orders: %w", err)
	}
	domain.SortOrdersNewestFirst(orders)
	return orders, nil
}
