package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// maxAddQuantity bounds a single add_to_cart call.
const maxAddQuantity = 99

// SearchProductsInput is the input schema for the search_products tool.
type SearchProductsInput struct {
	Query string `json:"query" jsonschema:"words to look for in product names and descriptions"`
}

// ProductOutput is one product in a tool result.
type ProductOutput struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	PriceLabel  string  `json:"price_label"`
	Stock       int     `json:"stock"`
	InWishlist  bool    `json:"in_wishlist"`
}

// SearchProductsOutput is the output schema for the search_products tool.
type SearchProductsOutput struct {
	Products []ProductOutput `json:"products"`
	Count    int             `json:"count"`
}

// GetCartInput is the (empty) input schema for the get_cart tool.
type GetCartInput struct{}

// CartLineOutput is one cart line in a tool result.
type CartLineOutput struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// CartOutput is the output schema for the get_cart tool.
type CartOutput struct {
	Lines      []CartLineOutput `json:"lines"`
	ItemCount  int              `json:"item_count"`
	Total      float64          `json:"total"`
	TotalLabel string           `json:"total_label"`
}

// AddToCartInput is the input schema for the add_to_cart tool.
type AddToCartInput struct {
	ProductID string `json:"product_id" jsonschema:"the product to add"`
	Quantity  int    `json:"quantity,omitempty" jsonschema:"units to add (default 1)"`
}

// AddToCartOutput is the output schema for the add_to_cart tool.
type AddToCartOutput struct {
	ProductID string `json:"product_id"`
	Requested int    `json:"requested"`
	Added     int    `json:"added"`
	Quantity  int    `json:"quantity"`
	Partial   bool   `json:"partial"`
	Message   string `json:"message"`
}

// ToggleWishlistInput is the input schema for the toggle_wishlist tool.
type ToggleWishlistInput struct {
	ProductID string `json:"product_id" jsonschema:"the product to add to or remove from the wishlist"`
}

// ToggleWishlistOutput is the output schema for the toggle_wishlist tool.
type ToggleWishlistOutput struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_products",
		Description: "Search the storefront catalog",
	}, s.handleSearchProducts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_cart",
		Description: "Show the signed-in account's cart",
	}, s.handleGetCart)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_to_cart",
		Description: "Add units of a product to the signed-in account's cart",
	}, s.handleAddToCart)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "toggle_wishlist",
		Description: "Add a product to the wishlist, or remove it if already there",
	}, s.handleToggleWishlist)
}

func (s *Server) handleSearchProducts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchProductsInput,
) (*mcp.CallToolResult, SearchProductsOutput, error) {
	products, err := s.ports.Catalog.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchProductsOutput{}, err
	}

	output := SearchProductsOutput{
		Products: make([]ProductOutput, len(products)),
		Count:    len(products),
	}
	for i := range products {
		output.Products[i] = s.productOutput(&products[i])
	}
	return nil, output, nil
}

func (s *Server) handleGetCart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GetCartInput,
) (*mcp.CallToolResult, CartOutput, error) {
	if err := s.requireSignIn(); err != nil {
		return nil, CartOutput{}, err
	}
	if err := s.ports.Cart.Fetch(ctx); err != nil {
		return nil, CartOutput{}, fmt.Errorf("loading cart: %w", err)
	}
	return nil, cartOutput(s.ports.Cart.Cart()), nil
}

func (s *Server) handleAddToCart(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddToCartInput,
) (*mcp.CallToolResult, AddToCartOutput, error) {
	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return nil, AddToCartOutput{}, fmt.Errorf("%w: product_id is required", domain.ErrInvalidInput)
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	if quantity > maxAddQuantity {
		return nil, AddToCartOutput{}, fmt.Errorf("%w: quantity must be at most %d", domain.ErrInvalidInput, maxAddQuantity)
	}

	result, err := s.ports.Cart.Add(ctx, domain.ProductID(productID), quantity)
	if err != nil {
		return nil, AddToCartOutput{}, err
	}

	output := AddToCartOutput{
		ProductID: result.ProductID.String(),
		Requested: result.Requested,
		Added:     result.Added,
		Quantity:  result.Quantity,
		Partial:   result.Partial(),
		Message:   fmt.Sprintf("Added %d to cart.", result.Added),
	}
	if result.Partial() {
		output.Message = fmt.Sprintf("Only %d of %d added; the per-order limit was reached.",
			result.Added, result.Requested)
	}
	return nil, output, nil
}

func (s *Server) handleToggleWishlist(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ToggleWishlistInput,
) (*mcp.CallToolResult, ToggleWishlistOutput, error) {
	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return nil, ToggleWishlistOutput{}, fmt.Errorf("%w: product_id is required", domain.ErrInvalidInput)
	}

	member, err := s.ports.Wishlist.Toggle(ctx, domain.ProductID(productID))
	if err != nil {
		return nil, ToggleWishlistOutput{}, err
	}
	return nil, ToggleWishlistOutput{ProductID: productID, InWishlist: member}, nil
}

// requireSignIn fails fast when a session port is wired and nobody is
// signed in; the services would otherwise report an empty cart.
func (s *Server) requireSignIn() error {
	if s.ports.Session != nil && s.ports.Session.Identity() == nil {
		return domain.ErrSignInRequired
	}
	return nil
}

func (s *Server) productOutput(p *domain.Product) ProductOutput {
	return ProductOutput{
		ProductID:   p.ProductID.String(),
		Name:        p.ProductName,
		Description: p.ProductDescription,
		Price:       p.ProductPrice,
		PriceLabel:  format.Price(p.ProductPrice),
		Stock:       p.ProductStock,
		InWishlist:  s.ports.Wishlist.IsMember(p.ProductID),
	}
}

func cartOutput(cart domain.Cart) CartOutput {
	output := CartOutput{
		Lines:      make([]CartLineOutput, len(cart.Lines)),
		ItemCount:  cart.ItemCount(),
		Total:      cart.Total(),
		TotalLabel: format.Price(cart.Total()),
	}
	for i, l := range cart.Lines {
		output.Lines[i] = CartLineOutput{
			ProductID: l.ProductID.String(),
			Name:      l.ProductName,
			Quantity:  l.Quantity,
			UnitPrice: l.ProductPrice,
			Subtotal:  l.Subtotal(),
		}
	}
	return output
}
