package wishlist

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

type mockWishlist struct {
	current domain.Wishlist
	toggled []domain.ProductID
}

func (m *mockWishlist) Fetch(_ context.Context) error { return nil }

func (m *mockWishlist) IsMember(id domain.ProductID) bool { return m.current.Contains(id) }

func (m *mockWishlist) Toggle(_ context.Context, id domain.ProductID) (bool, error) {
	m.toggled = append(m.toggled, id)
	return false, nil
}

func (m *mockWishlist) Wishlist() domain.Wishlist { return m.current }

type mockCart struct {
	added []domain.ProductID
}

func (m *mockCart) Fetch(_ context.Context) error { return nil }

func (m *mockCart) Add(_ context.Context, id domain.ProductID, quantity int) (domain.AddResult, error) {
	m.added = append(m.added, id)
	return domain.AddResult{ProductID: id, Requested: quantity, Added: quantity, Quantity: quantity}, nil
}

func (m *mockCart) Remove(_ context.Context, _ domain.ProductID) error { return nil }

func (m *mockCart) Cart() domain.Cart { return domain.Cart{} }

func (m *mockCart) ItemCount() int { return 0 }

func newTestView() (*View, *mockWishlist, *mockCart) {
	wishlist := &mockWishlist{current: domain.Wishlist{
		Status: domain.FetchLoaded,
		Entries: []domain.WishlistEntry{
			{ProductID: "1", ProductName: "Coffee Mug", ProductPrice: 9.5},
			{ProductID: "2", ProductName: "Tea Pot", ProductPrice: 24},
		},
	}}
	cart := &mockCart{}
	v := NewView(nil, nil, wishlist, cart)
	v.SetDimensions(120, 30)
	return v, wishlist, cart
}

func TestView_Renders(t *testing.T) {
	v, _, _ := newTestView()

	output := v.View()

	assert.Contains(t, output, "Wishlist (2)")
	assert.Contains(t, output, "> ♥ Coffee Mug")
	assert.Contains(t, output, "$24.00")
}

func TestView_EmptyAndSignedOut(t *testing.T) {
	v := NewView(nil, nil, &mockWishlist{current: domain.Wishlist{Status: domain.FetchSignedOut}}, nil)
	v.SetDimensions(80, 24)
	assert.Contains(t, v.View(), "Sign in to see your wishlist.")

	v = NewView(nil, nil, &mockWishlist{current: domain.Wishlist{Status: domain.FetchLoaded}}, nil)
	v.SetDimensions(80, 24)
	assert.Contains(t, v.View(), "Your wishlist is empty.")
}

func TestView_Init(t *testing.T) {
	v, _, _ := newTestView()

	cmd := v.Init()

	require.NotNil(t, cmd)
	assert.Equal(t, messages.WishlistLoaded{}, cmd())
}

func TestView_ToggleSelected(t *testing.T) {
	v, wishlist, _ := newTestView()
	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, messages.WishlistToggled{ProductID: "2"}, msg)
	assert.Equal(t, []domain.ProductID{"2"}, wishlist.toggled)

	v.Update(msg)
	assert.Equal(t, "Removed from wishlist", v.Status().Message())
}

func TestView_RemoveKeyToggles(t *testing.T) {
	v, wishlist, _ := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []domain.ProductID{"1"}, wishlist.toggled)
}

func TestView_AddToCart(t *testing.T) {
	v, _, cart := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.NotNil(t, cmd)
	msg := cmd().(messages.CartAdded)

	assert.Equal(t, []domain.ProductID{"1"}, cart.added)
	assert.Equal(t, "Coffee Mug", msg.Product.ProductName)

	v.Update(msg)
	assert.Equal(t, "Added Coffee Mug to cart (1 item)", v.Status().Message())
}

func TestView_AddToCart_Failure(t *testing.T) {
	v, _, _ := newTestView()

	v.Update(messages.CartAdded{Err: domain.ErrSignInRequired})

	assert.Equal(t, domain.ErrSignInRequired.Error(), v.Status().Message())
}

func TestView_SelectionBounds(t *testing.T) {
	v, _, _ := newTestView()

	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Selected())

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Selected())
}

func TestView_Escape(t *testing.T) {
	v, _, _ := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}
