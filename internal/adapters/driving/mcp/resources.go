package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for storefront resources.
	uriScheme = "storefront://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "products",
		Name:        "products",
		Description: "The full product catalog",
		MIMEType:    "application/json",
	}, s.handleProductsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "cart",
		Name:        "cart",
		Description: "The signed-in account's cart",
		MIMEType:    "application/json",
	}, s.handleCartResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "products/{productId}",
		Name:        "product",
		Description: "A single product",
		MIMEType:    "application/json",
	}, s.handleProductResource)
}

func (s *Server) handleProductsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	products, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	infos := make([]ProductOutput, len(products))
	for i := range products {
		infos[i] = s.productOutput(&products[i])
	}
	return jsonResource(req.Params.URI, infos)
}

func (s *Server) handleCartResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if err := s.requireSignIn(); err != nil {
		return nil, err
	}
	if err := s.ports.Cart.Fetch(ctx); err != nil {
		return nil, fmt.Errorf("loading cart: %w", err)
	}
	return jsonResource(req.Params.URI, cartOutput(s.ports.Cart.Cart()))
}

func (s *Server) handleProductResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	productID := extractProductID(req.Params.URI)
	if productID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	product, err := s.ports.Catalog.Get(ctx, domain.ProductID(productID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return jsonResource(req.Params.URI, s.productOutput(product))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractProductID extracts the product ID from a URI like storefront://products/{productId}.
func extractProductID(uri string) string {
	const prefix = uriScheme + "products/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
