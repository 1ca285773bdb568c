package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
)

// Ensure CredentialStore implements the interface.
var _ driven.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is an in-memory implementation of driven.CredentialStore.
// It is used by tests and by STOREFRONT_EPHEMERAL, which keeps the session
// for one process only.
type CredentialStore struct {
	mu   sync.RWMutex
	pair domain.TokenPair
}

// NewCredentialStore creates an empty credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Load returns the stored pair.
func (s *CredentialStore) Load(_ context.Context) (domain.TokenPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pair, nil
}

// Save replaces the stored pair.
func (s *CredentialStore) Save(_ context.Context, pair domain.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	return nil
}

// Clear removes the stored pair.
func (s *CredentialStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = domain.TokenPair{}
	return nil
}
