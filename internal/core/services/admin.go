package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// Ensure AdminService implements the interface.
var _ driving.AdminService = (*AdminService)(nil)

// AdminService is the back office. Every method checks the ADMIN role locally
// before calling the API; the server enforces it again.
type AdminService struct {
	session driving.IdentitySource
	catalog driven.CatalogAPI
	users   driven.UserAPI
	orders  driven.OrderAPI
}

// NewAdminService creates an admin service.
func NewAdminService(
	session driving.IdentitySource,
	catalog driven.CatalogAPI,
	users driven.UserAPI,
	orders driven.OrderAPI,
) *AdminService {
	return &AdminService{session: session, catalog: catalog, users: users, orders: orders}
}

// CreateProduct adds a product with an optional image.
func (s *AdminService) CreateProduct(
	ctx context.Context,
	input domain.ProductInput,
	image *domain.ImageUpload,
) (*domain.Product, error) {
	if _, err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: name, price and stock are required", err)
	}
	product, err := s.catalog.CreateProduct(ctx, input, image)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	logger.Info("Created product %s", product.ProductID)
	return product, nil
}

// UpdateProduct replaces a product's fields and optionally its image.
func (s *AdminService) UpdateProduct(
	ctx context.Context,
	id domain.ProductID,
	input domain.ProductInput,
	image *domain.ImageUpload,
) (*domain.Product, error) {
	if _, err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrInvalidInput)
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: name, price and stock are required", err)
	}
	product, err := s.catalog.UpdateProduct(ctx, id, input, image)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return product, nil
}

// DeleteProduct removes a product.
func (s *AdminService) DeleteProduct(ctx context.Context, id domain.ProductID) error {
	if _, err := requireAdmin(s.session); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: product id is required", domain.ErrInvalidInput)
	}
	if err := s.catalog.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

// Users lists every account.
func (s *AdminService) Users(ctx context.Context) ([]domain.Account, error) {
	if _, err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// User returns one account.
func (s *AdminService) User(ctx context.Context, id int64) (*domain.Account, error) {
	if _, err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// UpdateUser edits an account, including its role.
func (s *AdminService) UpdateUser(ctx context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error) {
	if _, err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	if update.Role != "" && update.Role != domain.RoleUser && update.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, update.Role)
	}
	user, err := s.users.UpdateUser(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return user, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	identity, err := requireAdmin(s.session)
	if err != nil {
		return err
	}
	if id == identity.AccountID {
		return fmt.Errorf("%w: cannot delete the signed-in account", domain.ErrInvalidInput)
	}
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

// Orders lists every order, newest first.
func (s *AdminService) Orders(ctx context.Context) ([]domain.Order, error) {
	if _, err := requireAdmin(s.session); err != nil {
		return nil, err
	}
	orders, err := s.orders.AllOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("all orders: %w", err)
	}
	domain.SortOrdersNewestFirst(orders)
	return orders, nil
}
