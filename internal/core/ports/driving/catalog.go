package driving

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// CatalogService browses products.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Get(ctx context.Context, id domain.ProductID) (*domain.Product, error)
}
