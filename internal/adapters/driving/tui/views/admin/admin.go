// Package admin provides the back-office dashboard for the TUI.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/orders"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// Tab is a dashboard section.
type Tab int

const (
	// TabOrders lists every customer's orders.
	TabOrders Tab = iota
	// TabUsers lists every account.
	TabUsers
)

// String returns the tab title.
func (t Tab) String() string {
	if t == TabUsers {
		return "Users"
	}
	return "Orders"
}

// View is the back-office dashboard with an orders tab and a users tab.
type View struct {
	styles  *styles.Styles
	service driving.AdminService
	ctx     context.Context
	now     func() time.Time

	tab     Tab
	orders  []domain.Order
	users   []domain.Account
	loading bool
	err     error
	width   int
	height  int
	ready   bool
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles, service driving.AdminService) *View {
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

// Init loads the current tab.
func (v *View) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	if v.tab == TabUsers {
		return func() tea.Msg {
			users, err := v.service.Users(v.ctx)
			return messages.UsersLoaded{Users: users, Err: err}
		}
	}
	return func() tea.Msg {
		all, err := v.service.Orders(v.ctx)
		return messages.OrdersLoaded{Orders: all, Err: err}
	}
}

// Update handles messages for the dashboard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.OrdersLoaded:
		v.loading = false
		v.err = msg.Err
		v.orders = msg.Orders

	case messages.UsersLoaded:
		v.loading = false
		v.err = msg.Err
		v.users = msg.Users

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		case "tab", "shift+tab":
			v.tab = 1 - v.tab
			return v, v.Init()
		case "r":
			return v, v.Init()
		}
	}
	return v, nil
}

// View renders the dashboard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	tabs := make([]string, 0, 2)
	for _, t := range []Tab{TabOrders, TabUsers} {
		if t == v.tab {
			tabs = append(tabs, v.styles.Selected.Render(" "+t.String()+" "))
		} else {
			tabs = append(tabs, v.styles.Muted.Render(" "+t.String()+" "))
		}
	}

	sections := []string{v.styles.Title.Render("Back office"), "", strings.Join(tabs, " "), ""}
	switch {
	case v.loading:
		sections = append(sections, v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	case v.tab == TabUsers:
		sections = append(sections, v.renderUsers())
	case len(v.orders) == 0:
		sections = append(sections, v.styles.Muted.Render("No orders yet."))
	default:
		sections = append(sections, orders.RenderOrders(v.styles, v.orders, v.now(), true))
	}

	sections = append(sections, "", v.styles.Help.Render("[tab] Switch tab  [r] Refresh  [esc] Back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderUsers() string {
	if len(v.users) == 0 {
		return v.styles.Muted.Render("No users.")
	}
	rows := make([]string, 0, len(v.users))
	for _, u := range v.users {
		rows = append(rows, v.styles.Normal.Render(fmt.Sprintf("[%d] %s  %s  %s", u.ID, u.Username, u.FullName(), u.Email))+
			"  "+v.styles.Badge.Render(string(u.Role)))
	}
	return strings.Join(rows, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Tab returns the active tab.
func (v *View) Tab() Tab {
	return v.tab
}
