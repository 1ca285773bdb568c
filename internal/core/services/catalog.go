package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService browses products. It needs no identity.
type CatalogService struct {
	api driven.CatalogAPI
}

// NewCatalogService creates a catalog service.
func NewCatalogService(api driven.CatalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

// List returns every product.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Search returns products matching query. An empty query is rejected.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is empty", domain.ErrInvalidInput)
	}
	logger.Debug("Product search: %q", query)

	products, err := s.api.SearchProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	logger.Debug("Product search returned %d results", len(products))
	return products, nil
}

// Get returns a single product.
func (s *CatalogService) Get(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrInvalidInput)
	}
	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return product, nil
}
