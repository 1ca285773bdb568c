// Package wishlist provides the wishlist view for the TUI.
package wishlist

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// View renders the wishlist store's entries.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar
	wishlist  driving.WishlistService
	cart      driving.CartService
	ctx       context.Context

	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new wishlist view.
func NewView(s *styles.Styles, km *keymap.KeyMap, wishlist driving.WishlistService, cart driving.CartService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	bar := status.NewBar(s, km)
	bar.SetHints([]key.Binding{km.AddToCart, km.ToggleWishlist, km.Refresh, km.Back})

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: bar,
		wishlist:  wishlist,
		cart:      cart,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init refreshes the wishlist.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	return v.fetch()
}

func (v *View) fetch() tea.Cmd {
	return func() tea.Msg {
		return messages.WishlistLoaded{Err: v.wishlist.Fetch(v.ctx)}
	}
}

// Update handles messages for the wishlist view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.WishlistLoaded:
		if msg.Err != nil {
			v.statusbar.Fail(msg.Err)
		} else {
			v.statusbar.Clear()
		}
		v.clampSelection()
		return v, nil

	case messages.WishlistToggled:
		switch {
		case msg.Err != nil:
			v.statusbar.Fail(msg.Err)
		case msg.Added:
			v.statusbar.Notice("Added to wishlist")
		default:
			v.statusbar.Notice("Removed from wishlist")
		}
		v.clampSelection()
		return v, nil

	case messages.CartAdded:
		if msg.Err != nil {
			v.statusbar.Fail(msg.Err)
		} else {
			v.statusbar.Notice(catalog.AddNotice(msg.Product.ProductName, msg.Result))
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	}

	entries := v.wishlist.Wishlist().Entries
	pressed := msg.String()
	switch {
	case keymap.Matches(pressed, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(pressed, v.keymap.Down):
		if v.selected < len(entries)-1 {
			v.selected++
		}
	case keymap.Matches(pressed, v.keymap.Refresh):
		v.statusbar.SetState(status.StateLoading)
		return v, v.fetch()
	case keymap.Matches(pressed, v.keymap.ToggleWishlist), keymap.Matches(pressed, v.keymap.Remove):
		if v.selected >= len(entries) {
			return v, nil
		}
		id := entries[v.selected].ProductID
		return v, func() tea.Msg {
			added, err := v.wishlist.Toggle(v.ctx, id)
			return messages.WishlistToggled{ProductID: id, Added: added, Err: err}
		}
	case keymap.Matches(pressed, v.keymap.AddToCart):
		if v.selected >= len(entries) || v.cart == nil {
			return v, nil
		}
		e := entries[v.selected]
		product := domain.Product{ProductID: e.ProductID, ProductName: e.ProductName, ProductPrice: e.ProductPrice}
		return v, func() tea.Msg {
			res, err := v.cart.Add(v.ctx, e.ProductID, 1)
			return messages.CartAdded{Product: product, Result: res, Err: err}
		}
	}
	return v, nil
}

func (v *View) clampSelection() {
	n := len(v.wishlist.Wishlist().Entries)
	if v.selected >= n {
		v.selected = max(n-1, 0)
	}
}

// View renders the wishlist.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	w := v.wishlist.Wishlist()
	sections := []string{v.styles.Title.Render(fmt.Sprintf("Wishlist (%d)", len(w.Entries))), ""}

	switch {
	case w.Status == domain.FetchSignedOut:
		sections = append(sections, v.styles.Muted.Render("Sign in to see your wishlist."))
	case len(w.Entries) == 0:
		sections = append(sections, v.styles.Muted.Render("Your wishlist is empty."))
	default:
		rows := make([]string, 0, len(w.Entries))
		for i, e := range w.Entries {
			price := v.styles.Price.Render(format.Price(e.ProductPrice))
			if i == v.selected {
				rows = append(rows, v.styles.Selected.Render("> ♥ "+e.ProductName)+"  "+price)
			} else {
				rows = append(rows, v.styles.Normal.Render("  ♥ "+e.ProductName)+"  "+price)
			}
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// SetSession updates the account shown in the status bar.
func (v *View) SetSession(account string, cartItems int) {
	v.statusbar.SetSession(account, cartItems)
}

// Selected returns the highlighted entry index.
func (v *View) Selected() int {
	return v.selected
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}
