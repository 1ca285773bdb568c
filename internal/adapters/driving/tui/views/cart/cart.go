// Package cart provides the cart view for the TUI.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// View renders the cart store's lines and lets the user remove them.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar
	cart      driving.CartService
	ctx       context.Context

	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new cart view.
func NewView(s *styles.Styles, km *keymap.KeyMap, cart driving.CartService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	bar := status.NewBar(s, km)
	bar.SetHints(km.CartHelp())

	return &View{
		styles:    s,
		keymap:    km,
		statusbar: bar,
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

// Init refreshes the cart.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	return v.fetch()
}

func (v *View) fetch() tea.Cmd {
	return func() tea.Msg {
		return messages.CartLoaded{Err: v.cart.Fetch(v.ctx)}
	}
}

// Update handles messages for the cart view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CartLoaded:
		if msg.Err != nil {
			v.statusbar.Fail(msg.Err)
		} else {
			v.statusbar.Clear()
		}
		v.clampSelection()
		return v, nil

	case messages.CartRemoved:
		if msg.Err != nil {
			v.statusbar.Fail(msg.Err)
		} else {
			v.statusbar.Notice("Removed from cart")
		}
		v.clampSelection()
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

	lines := v.cart.Cart().Lines
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(lines)-1 {
			v.selected++
		}
	case keymap.Matches(key, v.keymap.Refresh):
		v.statusbar.SetState(status.StateLoading)
		return v, v.fetch()
	case keymap.Matches(key, v.keymap.Remove):
		if v.selected >= len(lines) {
			return v, nil
		}
		id := lines[v.selected].ProductID
		return v, func() tea.Msg {
			return messages.CartRemoved{ProductID: id, Err: v.cart.Remove(v.ctx, id)}
		}
	}
	return v, nil
}

func (v *View) clampSelection() {
	n := len(v.cart.Cart().Lines)
	if v.selected >= n {
		v.selected = max(n-1, 0)
	}
}

// View renders the cart.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	c := v.cart.Cart()
	sections := []string{v.styles.Title.Render(fmt.Sprintf("Cart (%s)", format.Items(c.ItemCount()))), ""}

	switch {
	case c.Status == domain.FetchSignedOut:
		sections = append(sections, v.styles.Muted.Render("Sign in to see your cart."))
	case c.Status == domain.FetchFailed && c.Err != nil && !errors.Is(c.Err, domain.ErrSignInRequired):
		sections = append(sections, v.styles.Error.Render("Could not load the cart: "+c.Err.Error()))
	case len(c.Lines) == 0:
		sections = append(sections, v.styles.Muted.Render("Your cart is empty."))
	default:
		sections = append(sections, v.renderLines(c.Lines), "",
			v.styles.Subtitle.Render("Total: ")+v.styles.Price.Render(format.Price(c.Total())),
			v.styles.Muted.Render(`Pay with "storefront checkout begin".`))
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderLines(lines []domain.CartLine) string {
	rows := make([]string, 0, len(lines))
	for i, l := range lines {
		row := fmt.Sprintf("%d x %s", l.Quantity, l.ProductName)
		amount := fmt.Sprintf("%s each  %s", format.Price(l.ProductPrice), format.Price(l.Subtotal()))
		if i == v.selected {
			rows = append(rows, v.styles.Selected.Render("> "+row)+"  "+v.styles.Price.Render(amount))
		} else {
			rows = append(rows, v.styles.Normal.Render("  "+row)+"  "+v.styles.Muted.Render(amount))
		}
	}
	return strings.Join(rows, "\n")
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

// Selected returns the highlighted line index.
func (v *View) Selected() int {
	return v.selected
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}
