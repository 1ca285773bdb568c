package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// GetCart implements driven.CartAPI.
func (c *Client) GetCart(ctx context.Context, accountID int64) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "cart", strconv.FormatInt(accountID, 10)), nil, &lines)
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// AddToCart implements driven.CartAPI.
func (c *Client) AddToCart(ctx context.Context, req domain.CartAddRequest) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint(nil, "cart", "add"), req, nil)
}

// RemoveFromCart implements driven.CartAPI.
func (c *Client) RemoveFromCart(ctx context.Context, req domain.CartRemoveRequest) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint(nil, "cart", "remove"), req, nil)
}

// GetWishlist implements driven.WishlistAPI.
func (c *Client) GetWishlist(ctx context.Context, accountID int64) ([]domain.WishlistEntry, error) {
	var entries []domain.WishlistEntry
	err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "wishlist", strconv.FormatInt(accountID, 10)), nil, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AddToWishlist implements driven.WishlistAPI.
func (c *Client) AddToWishlist(ctx context.Context, req domain.WishlistRequest) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint(nil, "wishlist", "add"), req, nil)
}

// RemoveFromWishlist implements driven.WishlistAPI.
func (c *Client) RemoveFromWishlist(ctx context.Context, req domain.WishlistRequest) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint(nil, "wishlist", "remove"), req, nil)
}
