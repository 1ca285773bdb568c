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

// Ensure CartService implements the interface.
var _ driving.CartService = (*CartService)(nil)

// CartService mirrors the server-side cart of the signed-in account.
// Local lines are only ever replaced by a fetch response, never patched.
type CartService struct {
	session driving.IdentitySource
	api     driven.CartAPI

	mu     sync.RWMutex
	lines  []domain.CartLine
	status domain.FetchStatus
	err    error
	issued uint64
}

// NewCartService creates a cart service reading identity from session.
func NewCartService(session driving.IdentitySource, api driven.CartAPI) *CartService {
	return &CartService{session: session, api: api}
}

// Fetch replaces the local lines with the server's. A failure resets the
// lines to empty with status FetchFailed and returns the error.
func (s *CartService) Fetch(ctx context.Context) error {
	_, err := s.fetch(ctx, true)
	return err
}

// OnIdentityChanged re-fetches or clears the cart. It is registered as a
// session listener.
func (s *CartService) OnIdentityChanged(ctx context.Context, _ *domain.Identity) {
	if err := s.Fetch(ctx); err != nil {
		logger.Warn("Cart fetch after identity change failed: %v", err)
	}
}

// Add asks the server for quantity more units of productID and re-fetches.
// The server may cap the quantity; the result reports how much was added.
// ErrCartNotUpdated is returned when the quantity did not grow at all.
func (s *CartService) Add(ctx context.Context, productID domain.ProductID, quantity int) (domain.AddResult, error) {
	result := domain.AddResult{ProductID: productID, Requested: quantity}

	identity, err := requireIdentity(s.session)
	if err != nil {
		return result, err
	}
	if productID == "" || quantity < 1 {
		return result, fmt.Errorf("%w: product id and a positive quantity are required", domain.ErrInvalidInput)
	}

	if err := s.ensureLoaded(ctx); err != nil {
		return result, fmt.Errorf("load cart: %w", err)
	}
	before := s.Cart().QuantityOf(productID)
	logger.Debug("Add %d x %s (currently %d)", quantity, productID, before)

	req := domain.CartAddRequest{ProductID: productID, UserID: identity.AccountID, Quantity: quantity}
	if err := s.api.AddToCart(ctx, req); err != nil {
		return result, fmt.Errorf("add to cart: %w: %w", domain.ErrMutationFailed, err)
	}

	lines, err := s.fetch(ctx, false)
	if err != nil {
		return result, fmt.Errorf("refresh cart: %w", err)
	}

	after := domain.QuantityOf(lines, productID)
	result.Quantity = after
	result.Added = after - before
	if result.Added <= 0 {
		result.Added = 0
		return result, domain.ErrCartNotUpdated
	}
	if result.Partial() {
		logger.Info("Server capped %s: added %d of %d", productID, result.Added, quantity)
	}
	return result, nil
}

// Remove deletes productID's line and re-fetches. Without identity it does
// nothing. A refetch failure is handled like any other fetch failure.
func (s *CartService) Remove(ctx context.Context, productID domain.ProductID) error {
	identity := s.session.Identity()
	if identity == nil {
		return nil
	}

	req := domain.CartRemoveRequest{UserID: identity.AccountID, ProductID: productID}
	if err := s.api.RemoveFromCart(ctx, req); err != nil {
		return fmt.Errorf("remove from cart: %w: %w", domain.ErrMutationFailed, err)
	}

	if _, err := s.fetch(ctx, true); err != nil {
		logger.Warn("Cart refetch after remove failed: %v", err)
	}
	return nil
}

// Cart returns a snapshot of the current lines.
func (s *CartService) Cart() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Cart{Lines: slices.Clone(s.lines), Status: s.status, Err: s.err}
}

// ItemCount is the sum of the current line quantities.
func (s *CartService) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CountItems(s.lines)
}

// ensureLoaded fetches once when no fetch has been applied yet. A session
// restored from storage does not notify listeners, so the first mutation
// may find the cart still idle.
func (s *CartService) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.status == domain.FetchLoaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	_, err := s.fetch(ctx, true)
	return err
}

// fetch requests the cart and applies the response if no newer fetch was
// issued meanwhile. It returns the response lines either way, so mutations
// can inspect the post-mutation state they caused. With resetOnError unset a
// failure leaves the local lines untouched.
func (s *CartService) fetch(ctx context.Context, resetOnError bool) ([]domain.CartLine, error) {
	identity := s.session.Identity()

	s.mu.Lock()
	s.issued++
	seq := s.issued
	if identity == nil {
		s.lines, s.status, s.err = nil, domain.FetchSignedOut, nil
		s.mu.Unlock()
		return nil, nil
	}
	s.mu.Unlock()

	lines, err := s.api.GetCart(ctx, identity.AccountID)

	s.mu.Lock()
	defer s.mu.Unlock()
	stale := seq != s.issued
	if stale {
		logger.Debug("Discarding stale cart response #%d (latest #%d)", seq, s.issued)
	}
	if err != nil {
		if resetOnError && !stale {
			s.lines, s.status, s.err = nil, domain.FetchFailed, err
		}
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	if !stale {
		s.lines, s.status, s.err = lines, domain.FetchLoaded, nil
	}
	return lines, nil
}
