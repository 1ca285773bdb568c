// Package catalog provides the product browsing and search view for the TUI.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// View lists the catalog with a search input, a product list and a status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Field
	list      *list.ProductList
	statusbar *status.Bar

	catalog  driving.CatalogService
	cart     driving.CartService
	wishlist driving.WishlistService
	ctx      context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = typing a query, false = navigating products
}

// NewView creates a new catalog view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	cart driving.CartService,
	wishlist driving.WishlistService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		list:      list.NewProductList(s),
		statusbar: status.NewBar(s, km),
		catalog:   catalog,
		cart:      cart,
		wishlist:  wishlist,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
	if wishlist != nil {
		v.list.SetMembership(wishlist.IsMember)
	}
	v.Reset()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the full catalog.
func (v *View) Init() tea.Cmd {
	v.statusbar.SetState(status.StateLoading)
	return tea.Batch(v.input.Init(), v.load(""))
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ProductsLoaded:
		v.handleProductsLoaded(msg)
		return v, nil

	case messages.CartAdded:
		v.handleCartAdded(msg)
		return v, nil

	case messages.WishlistToggled:
		switch {
		case msg.Err != nil:
			v.fail(msg.Err)
		case msg.Added:
			v.statusbar.Notice("Added to wishlist")
		default:
			v.statusbar.Notice("Removed from wishlist")
		}
		return v, nil

	case messages.ErrorOccurred:
		v.fail(msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if !v.focusInput || v.input.Value() == "" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.input.SetValue("")
		return v, nil
	}

	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			v.statusbar.SetState(status.StateLoading)
			return v, v.load(strings.TrimSpace(v.input.Value()))
		}
		if msg.Type == tea.KeyDown && !v.list.IsEmpty() {
			v.setFocusInput(false)
			return v, nil
		}
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Up):
		if v.list.Selected() == 0 {
			v.setFocusInput(true)
			return v, nil
		}
		v.list.MoveUp()
	case keymap.Matches(key, v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(key, v.keymap.NewSearch):
		v.setFocusInput(true)
		v.input.SetValue("")
	case keymap.Matches(key, v.keymap.AddToCart):
		return v, v.addSelected()
	case keymap.Matches(key, v.keymap.ToggleWishlist):
		return v, v.toggleSelected()
	}
	return v, nil
}

func (v *View) setFocusInput(focus bool) {
	v.focusInput = focus
	if focus {
		v.input.Focus()
		v.statusbar.SetHints(nil)
		return
	}
	v.input.Blur()
	v.statusbar.SetHints(v.keymap.ProductsHelp())
}

// load lists the catalog, or searches it when query is not empty.
func (v *View) load(query string) tea.Cmd {
	return func() tea.Msg {
		if v.catalog == nil {
			return messages.ErrorOccurred{Err: ErrNoCatalogService}
		}
		var (
			products []domain.Product
			err      error
		)
		if query == "" {
			products, err = v.catalog.List(v.ctx)
		} else {
			products, err = v.catalog.Search(v.ctx, query)
		}
		return messages.ProductsLoaded{Query: query, Products: products, Err: err}
	}
}

func (v *View) addSelected() tea.Cmd {
	p := v.list.SelectedProduct()
	if p == nil || v.cart == nil {
		return nil
	}
	product := *p
	return func() tea.Msg {
		res, err := v.cart.Add(v.ctx, product.ProductID, 1)
		return messages.CartAdded{Product: product, Result: res, Err: err}
	}
}

func (v *View) toggleSelected() tea.Cmd {
	p := v.list.SelectedProduct()
	if p == nil || v.wishlist == nil {
		return nil
	}
	id := p.ProductID
	return func() tea.Msg {
		added, err := v.wishlist.Toggle(v.ctx, id)
		return messages.WishlistToggled{ProductID: id, Added: added, Err: err}
	}
}

func (v *View) handleProductsLoaded(msg messages.ProductsLoaded) {
	if msg.Err != nil {
		v.fail(msg.Err)
		return
	}

	v.err = nil
	v.list.SetProducts(msg.Products)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Products))
	if len(msg.Products) > 0 {
		v.setFocusInput(false)
	}
}

func (v *View) handleCartAdded(msg messages.CartAdded) {
	if msg.Err != nil {
		v.fail(msg.Err)
		return
	}
	v.statusbar.Notice(AddNotice(msg.Product.ProductName, msg.Result))
}

// AddNotice describes an add-to-cart outcome, flagging adds the per-cart
// limit capped.
func AddNotice(name string, res domain.AddResult) string {
	if res.Partial() {
		return fmt.Sprintf("Only %d of %d added: cart limit reached (%d in cart)", res.Added, res.Requested, res.Quantity)
	}
	return fmt.Sprintf("Added %s to cart (%s)", name, format.Items(res.Quantity))
}

func (v *View) fail(err error) {
	v.err = err
	switch {
	case errors.Is(err, domain.ErrSignInRequired):
		v.statusbar.Fail(errors.New("sign in to use your cart and wishlist"))
	case errors.Is(err, domain.ErrCartNotUpdated):
		v.statusbar.Fail(errors.New("the cart limit for this product is reached"))
	default:
		v.statusbar.Fail(err)
	}
}

// View renders the catalog view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.styles.Title.Render("Catalog"), "", v.input.View(), "")
	if v.err != nil && !errors.Is(v.err, domain.ErrSignInRequired) {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}
	sections = append(sections, v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// SetSession updates the account shown in the status bar.
func (v *View) SetSession(account string, cartItems int) {
	v.statusbar.SetSession(account, cartItems)
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// Products returns the listed products.
func (v *View) Products() []domain.Product {
	return v.list.Products()
}

// SelectedProduct returns the highlighted product.
func (v *View) SelectedProduct() *domain.Product {
	return v.list.SelectedProduct()
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset returns the view to input mode with an empty list.
func (v *View) Reset() {
	v.setFocusInput(true)
	v.input.SetValue("")
	v.list.SetProducts(nil)
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
