package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// OrdersByAccount implements driven.OrderAPI.
func (c *Client) OrdersByAccount(ctx context.Context, accountID int64) ([]domain.Order, error) {
	var orders []domain.Order
	err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "orders", strconv.FormatInt(accountID, 10)), nil, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// AllOrders implements driven.OrderAPI.
func (c *Client) AllOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "orders"), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAddresses implements driven.AddressAPI.
func (c *Client) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	var addresses []domain.Address
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "address"), nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// AddAddress implements driven.AddressAPI.
func (c *Client) AddAddress(ctx context.Context, addr domain.Address) (*domain.Address, error) {
	var saved domain.Address
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint(nil, "address"), addr, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteAddress implements driven.AddressAPI.
func (c *Client) DeleteAddress(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint(nil, "address", strconv.FormatInt(id, 10)), nil, nil)
}

// CreatePaymentIntent implements driven.PaymentAPI.
func (c *Client) CreatePaymentIntent(ctx context.Context, accountID int64) (*domain.PaymentIntent, error) {
	body := struct {
		UserID int64 `json:"userId"`
	}{UserID: accountID}

	var intent domain.PaymentIntent
	target := c.endpoint(nil, "payments", "create-payment-intent")
	if err := c.doJSON(ctx, http.MethodPost, target, body, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// FinalizeOrder implements driven.PaymentAPI.
func (c *Client) FinalizeOrder(ctx context.Context, req domain.FinalizeRequest) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint(nil, "payments", "orders", "finalize"), req, nil)
}

// ListUsers implements driven.UserAPI.
func (c *Client) ListUsers(ctx context.Context) ([]domain.Account, error) {
	var users []domain.Account
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "users"), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser implements driven.UserAPI.
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.Account, error) {
	var user domain.Account
	err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "users", strconv.FormatInt(id, 10)), nil, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser implements driven.UserAPI.
func (c *Client) UpdateUser(ctx context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error) {
	var user domain.Account
	err := c.doJSON(ctx, http.MethodPut, c.endpoint(nil, "users", strconv.FormatInt(id, 10)), update, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser implements driven.UserAPI.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint(nil, "users", strconv.FormatInt(id, 10)), nil, nil)
}
