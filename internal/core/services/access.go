package services

import (
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// requireIdentity returns the current identity or ErrSignInRequired.
func requireIdentity(session driving.IdentitySource) (*domain.Identity, error) {
	identity := session.Identity()
	if identity == nil {
		return nil, domain.ErrSignInRequired
	}
	return identity, nil
}

// requireAdmin returns the current identity if it holds the ADMIN role.
func requireAdmin(session driving.IdentitySource) (*domain.Identity, error) {
	identity, err := requireIdentity(session)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return identity, nil
}
