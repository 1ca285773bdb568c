package driving

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// AccountService covers sign-up, the profile page and saved addresses.
type AccountService interface {
	// Register creates a standard account. The role is always USER.
	Register(ctx context.Context, reg domain.Registration) error

	Profile(ctx context.Context) (*domain.Account, error)
	UpdateProfile(ctx context.Context, update domain.AccountUpdate) (*domain.Account, error)

	Addresses(ctx context.Context) ([]domain.Address, error)
	AddAddress(ctx context.Context, addr domain.Address) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id int64) error
}
