package driven

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// CredentialStore is durable client storage for the session's token pair.
// Only the session service writes to it.
type CredentialStore interface {
	// Load returns the stored pair. A zero pair means nothing is stored.
	Load(ctx context.Context) (domain.TokenPair, error)

	// Save replaces both values atomically.
	Save(ctx context.Context, pair domain.TokenPair) error

	// Clear removes both values atomically. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
