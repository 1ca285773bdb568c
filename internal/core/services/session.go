package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// Ensure SessionService implements the interfaces.
var (
	_ driving.SessionService = (*SessionService)(nil)
	_ driven.TokenProvider   = (*SessionService)(nil)
)

// SessionService holds the access credential and the identity derived from it.
// It is the only writer of the credential store.
type SessionService struct {
	store   driven.CredentialStore
	decoder driven.TokenDecoder
	auth    driven.AuthAPI

	mu         sync.RWMutex
	credential string
	identity   *domain.Identity

	listenersMu sync.Mutex
	listeners   map[int]driving.IdentityListener
	nextID      int
}

// NewSessionService creates a session service. The session starts anonymous;
// call Initialize to rehydrate it from storage.
func NewSessionService(
	store driven.CredentialStore,
	decoder driven.TokenDecoder,
	auth driven.AuthAPI,
) *SessionService {
	return &SessionService{
		store:     store,
		decoder:   decoder,
		auth:      auth,
		listeners: make(map[int]driving.IdentityListener),
	}
}

// Initialize reads the persisted credential and derives identity from it.
// A credential that fails to decode is dropped from memory but left in
// storage; only Logout clears storage.
func (s *SessionService) Initialize(ctx context.Context) error {
	logger.Section("Session Initialize")
	pair, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	s.apply(ctx, pair.AccessToken)
	return nil
}

// Reload re-reads durable storage, so a login or logout made by another
// process is picked up.
func (s *SessionService) Reload(ctx context.Context) error {
	pair, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload credentials: %w", err)
	}
	s.mu.RLock()
	unchanged := pair.AccessToken == s.credential && (s.identity != nil || pair.AccessToken == "")
	s.mu.RUnlock()
	if unchanged {
		return nil
	}
	logger.Debug("Stored credential changed, re-deriving identity")
	s.apply(ctx, pair.AccessToken)
	return nil
}

// Login exchanges credentials at the endpoint selected by audience. On success
// both tokens are persisted as a pair and identity is re-derived. The raw
// response is returned so the caller can inspect adjacent fields.
func (s *SessionService) Login(
	ctx context.Context,
	creds domain.LoginCredentials,
	audience domain.Audience,
) (*domain.LoginResponse, error) {
	if !audience.IsValid() {
		return nil, fmt.Errorf("%w: unknown audience %q", domain.ErrInvalidInput, audience)
	}
	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	logger.Section("Login")
	logger.Debug("Audience: %s, username: %s", audience, creds.Username)

	resp, err := s.auth.Login(ctx, audience, creds)
	if err != nil {
		return nil, err
	}

	pair := domain.TokenPair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	if err := s.store.Save(ctx, pair); err != nil {
		return nil, fmt.Errorf("save credentials: %w", err)
	}

	s.apply(ctx, resp.AccessToken)
	return resp, nil
}

// Logout removes both persisted credentials and clears memory. Storage
// failures are logged; the in-memory session is cleared regardless.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		logger.Error("clear stored credentials: %v", err)
	}
	s.apply(ctx, "")
}

// Identity returns the current identity, or nil.
func (s *SessionService) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Snapshot returns credential and identity together.
func (s *SessionService) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Session{Credential: s.credential, Identity: s.identity}
}

// GetToken implements driven.TokenProvider.
func (s *SessionService) GetToken(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, nil
}

// Subscribe registers listener for identity changes.
func (s *SessionService) Subscribe(listener driving.IdentityListener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

// apply makes token the current credential and notifies listeners if the
// derived identity changed. Listeners run on the caller's goroutine, after
// the state is updated and outside the lock.
func (s *SessionService) apply(ctx context.Context, token string) {
	var identity *domain.Identity
	if token != "" {
		decoded, err := s.decoder.Decode(token)
		if err != nil {
			logger.Warn("Discarding undecodable credential: %v", err)
			token = ""
		} else {
			identity = decoded
		}
	}

	s.mu.Lock()
	previous := s.identity
	s.credential = token
	s.identity = identity
	s.mu.Unlock()

	if previous.Equal(identity) {
		return
	}
	if identity != nil {
		logger.Info("Signed in as %s (%v)", identity.AccountName, identity.Roles)
	} else {
		logger.Info("Session is anonymous")
	}
	s.notify(ctx, identity)
}

func (s *SessionService) notify(ctx context.Context, identity *domain.Identity) {
	s.listenersMu.Lock()
	listeners := make([]driving.IdentityListener, 0, len(s.listeners))
	for i := 0; i < s.nextID; i++ {
		if l, ok := s.listeners[i]; ok {
			listeners = append(listeners, l)
		}
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(ctx, identity)
	}
}
