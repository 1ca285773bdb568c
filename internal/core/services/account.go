package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Ensure AccountService implements the interface.
var _ driving.AccountService = (*AccountService)(nil)

// AccountService handles sign-up, the profile and saved addresses.
type AccountService struct {
	session   driving.IdentitySource
	auth      driven.AuthAPI
	users     driven.UserAPI
	addresses driven.AddressAPI
}

// NewAccountService creates an account service.
func NewAccountService(
	session driving.IdentitySource,
	auth driven.AuthAPI,
	users driven.UserAPI,
	addresses driven.AddressAPI,
) *AccountService {
	return &AccountService{session: session, auth: auth, users: users, addresses: addresses}
}

// Register creates a standard account. Whatever role was set, USER is sent.
func (s *AccountService) Register(ctx context.Context, reg domain.Registration) error {
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("%w: every field is required", err)
	}
	reg.Role = domain.RoleUser
	if err := s.auth.Register(ctx, reg); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Profile returns the signed-in account.
func (s *AccountService) Profile(ctx context.Context) (*domain.Account, error) {
	identity, err := requireIdentity(s.session)
	if err != nil {
		return nil, err
	}
	account, err := s.users.GetUser(ctx, identity.AccountID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return account, nil
}

// UpdateProfile edits the signed-in account. The role cannot be changed here.
func (s *AccountService) UpdateProfile(ctx context.Context, update domain.AccountUpdate) (*domain.Account, error) {
	identity, err := requireIdentity(s.session)
	if err != nil {
		return nil, err
	}
	update.Role = ""
	account, err := s.users.UpdateUser(ctx, identity.AccountID, update)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return account, nil
}

// Addresses lists the signed-in account's delivery addresses.
func (s *AccountService) Addresses(ctx context.Context) ([]domain.Address, error) {
	if _, err := requireIdentity(s.session); err != nil {
		return nil, err
	}
	addrs, err := s.addresses.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addrs, nil
}

// AddAddress saves a new delivery address.
func (s *AccountService) AddAddress(ctx context.Context, addr domain.Address) (*domain.Address, error) {
	if _, err := requireIdentity(s.session); err != nil {
		return nil, err
	}
	if err := addr.Validate(); err != nil {
		return nil, fmt.Errorf("%w: title, city and details are required", err)
	}
	saved, err := s.addresses.AddAddress(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("add address: %w", err)
	}
	return saved, nil
}

// DeleteAddress removes a delivery address.
func (s *AccountService) DeleteAddress(ctx context.Context, id int64) error {
	if _, err := requireIdentity(s.session); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: address id is required", domain.ErrInvalidInput)
	}
	if err := s.addresses.DeleteAddress(ctx, id); err != nil {
		return fmt.Errorf("delete address %d: %w", id, err)
	}
	return nil
}
