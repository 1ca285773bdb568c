// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// storefront. It lets AI assistants browse the catalog and work the signed-in
// account's cart and wishlist.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")

// ErrMissingCartService is returned when the cart service is not provided.
var ErrMissingCartService = errors.New("mcp: cart service is required")

// ErrMissingWishlistService is returned when the wishlist service is not provided.
var ErrMissingWishlistService = errors.New("mcp: wishlist service is required")
