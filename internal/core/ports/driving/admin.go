package driving

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// AdminService is the back office. Every method requires the ADMIN role and
// fails with domain.ErrForbidden before any network call otherwise.
type AdminService interface {
	CreateProduct(ctx context.Context, input domain.ProductInput, image *domain.ImageUpload) (*domain.Product, error)
	UpdateProduct(
		ctx context.Context, id domain.ProductID, input domain.ProductInput, image *domain.ImageUpload,
	) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id domain.ProductID) error

	Users(ctx context.Context) ([]domain.Account, error)
	User(ctx context.Context, id int64) (*domain.Account, error)
	UpdateUser(ctx context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error)
	DeleteUser(ctx context.Context, id int64) error

	Orders(ctx context.Context) ([]domain.Order, error)
}
