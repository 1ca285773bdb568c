// Package orders provides the order history view for the TUI.
package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// View shows the signed-in account's orders, newest first.
type View struct {
	styles  *styles.Styles
	service driving.OrderService
	ctx     context.Context
	now     func() time.Time

	orders  []domain.Order
	loading bool
	err     error
	offset  int
	width   int
	height  int
	ready   bool
}

// NewView creates a new order history view.
func NewView(s *styles.Styles, service driving.OrderService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		service: service,
		ctx:     context.Background(),
		now:     time.Now,
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the order history.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.offset = 0
	return func() tea.Msg {
		orders, err := v.service.History(v.ctx)
		return messages.OrdersLoaded{Orders: orders, Err: err}
	}
}

// Update handles messages for the orders view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.OrdersLoaded:
		v.loading = false
		v.err = msg.Err
		v.orders = msg.Orders

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		case "r":
			return v, v.Init()
		case "down", "j":
			if v.offset < len(v.orders)-1 {
				v.offset++
			}
		case "up", "k":
			if v.offset > 0 {
				v.offset--
			}
		}
	}
	return v, nil
}

// View renders the order history.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{v.styles.Title.Render("Orders"), ""}
	switch {
	case v.loading:
		sections = append(sections, v.styles.Muted.Render("Loading orders..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case len(v.orders) == 0:
		sections = append(sections, v.styles.Muted.Render("No orders yet."))
	default:
		sections = append(sections, RenderOrders(v.styles, v.orders[v.offset:], v.now(), false))
	}

	sections = append(sections, "", v.styles.Help.Render("[j/k] Scroll  [r] Refresh  [esc] Back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// RenderOrders renders orders as blocks of a header line and item lines.
func RenderOrders(s *styles.Styles, orders []domain.Order, now time.Time, withCustomer bool) string {
	blocks := make([]string, 0, len(orders))
	for _, o := range orders {
		var b strings.Builder
		b.WriteString(s.Subtitle.Render(fmt.Sprintf("Order #%d", o.ID)))
		b.WriteString("  " + s.Muted.Render(format.OrderDate(o.OrderDate, now)))
		b.WriteString("  " + s.Badge.Render(o.Status.Label()))
		b.WriteString("  " + s.Price.Render(format.Price(o.TotalAmount)))
		if withCustomer && o.Username != "" {
			b.WriteString("\n    " + s.Normal.Render("Customer: "+o.Username))
		}
		for _, item := range o.Items {
			b.WriteString("\n    " + s.Normal.Render(fmt.Sprintf("%d x %s", item.Quantity, item.ProductName)))
			b.WriteString("  " + s.Muted.Render(format.Price(item.Subtotal())))
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Orders returns the loaded orders.
func (v *View) Orders() []domain.Order {
	return v.orders
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
