package driving

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// IdentityListener is called after the session's identity changed.
// identity is nil when the session became anonymous.
type IdentityListener func(ctx context.Context, identity *domain.Identity)

// IdentitySource is the read-only view of the session used by dependents.
type IdentitySource interface {
	// Identity returns the current identity, or nil when none is derived.
	Identity() *domain.Identity

	// Snapshot returns credential and identity together.
	Snapshot() domain.Session
}

// SessionService owns the access credential and the identity derived from it.
type SessionService interface {
	IdentitySource

	// Initialize rehydrates the credential from durable storage. No network call.
	Initialize(ctx context.Context) error

	// Login exchanges credentials at the endpoint selected by audience and
	// returns the raw response.
	Login(ctx context.Context, creds domain.LoginCredentials, audience domain.Audience) (*domain.LoginResponse, error)

	// Logout removes the persisted credentials and clears memory. It cannot fail.
	Logout(ctx context.Context)

	// Reload re-reads durable storage, picking up changes made by another process.
	Reload(ctx context.Context) error

	// Subscribe registers a listener for identity changes and returns a
	// function that removes it.
	Subscribe(listener IdentityListener) (unsubscribe func())
}
