package mcp

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	products  []domain.Product
	err       error
	lastQuery string
}

var _ driving.CatalogService = (*mockCatalogService)(nil)

func (m *mockCatalogService) List(_ context.Context) ([]domain.Product, error) {
	return m.products, m.err
}

func (m *mockCatalogService) Search(_ context.Context, query string) ([]domain.Product, error) {
	m.lastQuery = query
	return m.products, m.err
}

func (m *mockCatalogService) Get(_ context.Context, id domain.ProductID) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.products {
		if m.products[i].ProductID == id {
			return &m.products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// mockCartService is a mock implementation of driving.CartService.
type mockCartService struct {
	cart      domain.Cart
	fetchErr  error
	addResult domain.AddResult
	addErr    error
	fetches   int
	added     []int
}

var _ driving.CartService = (*mockCartService)(nil)

func (m *mockCartService) Fetch(_ context.Context) error {
	m.fetches++
	return m.fetchErr
}

func (m *mockCartService) Add(_ context.Context, id domain.ProductID, quantity int) (domain.AddResult, error) {
	m.added = append(m.added, quantity)
	if m.addErr != nil {
		return domain.AddResult{}, m.addErr
	}
	result := m.addResult
	result.ProductID = id
	result.Requested = quantity
	return result, nil
}

func (m *mockCartService) Remove(_ context.Context, _ domain.ProductID) error {
	return nil
}

func (m *mockCartService) Cart() domain.Cart {
	return m.cart
}

func (m *mockCartService) ItemCount() int {
	return m.cart.ItemCount()
}

// mockWishlistService is a mock implementation of driving.WishlistService.
type mockWishlistService struct {
	members map[domain.ProductID]bool
	err     error
}

var _ driving.WishlistService = (*mockWishlistService)(nil)

func (m *mockWishlistService) Fetch(_ context.Context) error {
	return nil
}

func (m *mockWishlistService) IsMember(id domain.ProductID) bool {
	return m.members[id]
}

func (m *mockWishlistService) Toggle(_ context.Context, id domain.ProductID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.members == nil {
		m.members = make(map[domain.ProductID]bool)
	}
	m.members[id] = !m.members[id]
	return m.members[id], nil
}

func (m *mockWishlistService) Wishlist() domain.Wishlist {
	return domain.Wishlist{}
}

// mockIdentity is a mock implementation of driving.IdentitySource.
type mockIdentity struct {
	identity *domain.Identity
}

func (m *mockIdentity) Identity() *domain.Identity {
	return m.identity
}

func (m *mockIdentity) Snapshot() domain.Session {
	if m.identity == nil {
		return domain.Session{}
	}
	return domain.Session{Credential: "token", Identity: m.identity}
}

func newTestPorts() (*Ports, *mockCatalogService, *mockCartService, *mockWishlistService) {
	catalog := &mockCatalogService{
		products: []domain.Product{
			{ProductID: "1", ProductName: "Mug", ProductPrice: 9.5, ProductStock: 4},
			{ProductID: "2", ProductName: "Teapot", ProductPrice: 24, ProductStock: 0},
		},
	}
	cart := &mockCartService{}
	wishlist := &mockWishlistService{members: map[domain.ProductID]bool{"2": true}}
	ports := &Ports{Catalog: catalog, Cart: cart, Wishlist: wishlist}
	return ports, catalog, cart, wishlist
}
