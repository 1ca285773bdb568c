package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// Ensure WishlistService implements the interface.
var _ driving.WishlistService = (*WishlistService)(nil)

// WishlistService mirrors the server-side wishlist of the signed-in account.
type WishlistService struct {
	session driving.IdentitySource
	api     driven.WishlistAPI

	mu      sync.RWMutex
	entries []domain.WishlistEntry
	status  domain.FetchStatus
	err     error
	issued  uint64
}

// NewWishlistService creates a wishlist service reading identity from session.
func NewWishlistService(session driving.IdentitySource, api driven.WishlistAPI) *WishlistService {
	return &WishlistService{session: session, api: api}
}

// Fetch replaces the local entries with the server's. A failure resets them
// to empty with status FetchFailed.
func (s *WishlistService) Fetch(ctx context.Context) error {
	_, err := s.fetch(ctx, true)
	return err
}

// OnIdentityChanged re-fetches or clears the wishlist.
func (s *WishlistService) OnIdentityChanged(ctx context.Context, _ *domain.Identity) {
	if err := s.Fetch(ctx); err != nil {
		logger.Warn("Wishlist fetch after identity change failed: %v", err)
	}
}

// IsMember reports whether productID is in the current entries.
func (s *WishlistService) IsMember(productID domain.ProductID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ContainsProduct(s.entries, productID)
}

// Toggle removes productID if it is a member and adds it otherwise, then
// re-fetches. It returns membership as reported by the refetch.
func (s *WishlistService) Toggle(ctx context.Context, productID domain.ProductID) (bool, error) {
	identity, err := requireIdentity(s.session)
	if err != nil {
		return false, err
	}
	if productID == "" {
		return false, fmt.Errorf("%w: product id is required", domain.ErrInvalidInput)
	}

	if err := s.ensureLoaded(ctx); err != nil {
		return false, fmt.Errorf("load wishlist: %w", err)
	}

	req := domain.WishlistRequest{UserID: identity.AccountID, ProductID: productID}
	if s.IsMember(productID) {
		logger.Debug("Removing %s from wishlist", productID)
		err = s.api.RemoveFromWishlist(ctx, req)
	} else {
		logger.Debug("Adding %s to wishlist", productID)
		err = s.api.AddToWishlist(ctx, req)
	}
	if err != nil {
		return s.IsMember(productID), fmt.Errorf("toggle wishlist: %w: %w", domain.ErrMutationFailed, err)
	}

	entries, err := s.fetch(ctx, false)
	if err != nil {
		return s.IsMember(productID), fmt.Errorf("refresh wishlist: %w", err)
	}
	return domain.ContainsProduct(entries, productID), nil
}

// Wishlist returns a snapshot of the current entries.
func (s *WishlistService) Wishlist() domain.Wishlist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Wishlist{Entries: slices.Clone(s.entries), Status: s.status, Err: s.err}
}

// ensureLoaded fetches once when no fetch has been applied yet, so Toggle
// decides between add and remove against the server's entries.
func (s *WishlistService) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.status == domain.FetchLoaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	_, err := s.fetch(ctx, true)
	return err
}

// fetch follows the same sequencing rules as the cart: only the response to
// the latest issued request is applied.
func (s *WishlistService) fetch(ctx context.Context, resetOnError bool) ([]domain.WishlistEntry, error) {
	identity := s.session.Identity()

	s.mu.Lock()
	s.issued++
	seq := s.issued
	if identity == nil {
		s.entries, s.status, s.err = nil, domain.FetchSignedOut, nil
		s.mu.Unlock()
		return nil, nil
	}
	s.mu.Unlock()

	entries, err := s.api.GetWishlist(ctx, identity.AccountID)

	s.mu.Lock()
	defer s.mu.Unlock()
	stale := seq != s.issued
	if stale {
		logger.Debug("Discarding stale wishlist response #%d (latest #%d)", seq, s.issued)
	}
	if err != nil {
		if resetOnError && !stale {
			s.entries, s.status, s.err = nil, domain.FetchFailed, err
		}
		return nil, fmt.Errorf("fetch wishlist: %w", err)
	}
	if !stale {
		s.entries, s.status, s.err = entries, domain.FetchLoaded, nil
	}
	return entries, nil
}
