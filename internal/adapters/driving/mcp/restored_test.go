package mcp

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
	"github.com/custodia-labs/storefront-cli/internal/core/services"
)

// remoteShop holds the server-side cart and wishlist for the real stores.
type remoteShop struct {
	mu         sync.Mutex
	cart       []domain.CartLine
	wishlist   []domain.WishlistEntry
	maxPerCart int
	adds       int
	removes    int
}

var (
	_ driven.CartAPI     = (*remoteShop)(nil)
	_ driven.WishlistAPI = (*remoteShop)(nil)
)

func (r *remoteShop) GetCart(context.Context, int64) ([]domain.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.cart), nil
}

func (r *remoteShop) AddToCart(_ context.Context, req domain.CartAddRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.cart {
		if l.ProductID == req.ProductID {
			r.cart[i].Quantity = min(l.Quantity+req.Quantity, r.maxPerCart)
			return nil
		}
	}
	r.cart = append(r.cart, domain.CartLine{ProductID: req.ProductID, Quantity: min(req.Quantity, r.maxPerCart)})
	return nil
}

func (r *remoteShop) RemoveFromCart(_ context.Context, req domain.CartRemoveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart = slices.DeleteFunc(r.cart, func(l domain.CartLine) bool { return l.ProductID == req.ProductID })
	return nil
}

func (r *remoteShop) GetWishlist(context.Context, int64) ([]domain.WishlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.wishlist), nil
}

func (r *remoteShop) AddToWishlist(_ context.Context, req domain.WishlistRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adds++
	if !domain.ContainsProduct(r.wishlist, req.ProductID) {
		r.wishlist = append(r.wishlist, domain.WishlistEntry{ProductID: req.ProductID})
	}
	return nil
}

func (r *remoteShop) RemoveFromWishlist(_ context.Context, req domain.WishlistRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removes++
	r.wishlist = slices.DeleteFunc(r.wishlist, func(e domain.WishlistEntry) bool { return e.ProductID == req.ProductID })
	return nil
}

// newRestoredServer wires real stores to a signed-in session that has not
// fetched anything yet, as after a restart with stored credentials.
func newRestoredServer(t *testing.T, shop *remoteShop) *Server {
	t.Helper()
	session := &mockIdentity{identity: &domain.Identity{
		AccountName: "alice", AccountID: 7, Roles: []domain.Role{domain.RoleUser},
	}}
	ports, _, _, _ := newTestPorts()
	ports.Session = session
	ports.Cart = services.NewCartService(session, shop)
	ports.Wishlist = services.NewWishlistService(session, shop)

	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_RestoredSession_AddToCartAtLimit(t *testing.T) {
	shop := &remoteShop{maxPerCart: 2, cart: []domain.CartLine{{ProductID: "1", Quantity: 2}}}
	server := newRestoredServer(t, shop)

	_, _, err := server.handleAddToCart(context.Background(), nil, AddToCartInput{ProductID: "1"})

	require.ErrorIs(t, err, domain.ErrCartNotUpdated)
}

func TestServer_RestoredSession_AddToCartReportsAddedUnits(t *testing.T) {
	shop := &remoteShop{maxPerCart: 5, cart: []domain.CartLine{{ProductID: "1", Quantity: 2}}}
	server := newRestoredServer(t, shop)

	_, output, err := server.handleAddToCart(context.Background(), nil, AddToCartInput{ProductID: "1", Quantity: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Added)
	assert.Equal(t, 3, output.Quantity)
	assert.False(t, output.Partial)
}

func TestServer_RestoredSession_ToggleWishlistRemovesExistingEntry(t *testing.T) {
	shop := &remoteShop{maxPerCart: 5, wishlist: []domain.WishlistEntry{{ProductID: "1"}}}
	server := newRestoredServer(t, shop)

	_, output, err := server.handleToggleWishlist(context.Background(), nil, ToggleWishlistInput{ProductID: "1"})

	require.NoError(t, err)
	assert.False(t, output.InWishlist)
	assert.Equal(t, 1, shop.removes)
	assert.Zero(t, shop.adds)
	assert.Empty(t, shop.wishlist)
}
