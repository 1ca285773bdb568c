// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label   string
	View    messages.ViewType
	Quit    bool // If true, selecting this item quits the app
	SignOut bool // If true, selecting this item ends the session
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	identity *domain.Identity
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view for a signed-out visitor.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles: s,
		width:  80,
		height: 24,
	}
	v.items = itemsFor(nil)
	return v
}

// itemsFor lists what the menu offers to identity. Every entry is still
// gated on selection.
func itemsFor(identity *domain.Identity) []Item {
	switch {
	case identity == nil:
		return []Item{
			{Label: "Browse catalog", View: messages.ViewCatalog},
			{Label: "Cart", View: messages.ViewCart},
			{Label: "Wishlist", View: messages.ViewWishlist},
			{Label: "Sign in", View: messages.ViewLogin},
			{Label: "Back office sign in", View: messages.ViewAdminLogin},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		}
	case identity.IsAdmin():
		return []Item{
			{Label: "Back office", View: messages.ViewAdmin},
			{Label: "Sign out", SignOut: true},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		}
	default:
		return []Item{
			{Label: "Browse catalog", View: messages.ViewCatalog},
			{Label: "Cart", View: messages.ViewCart},
			{Label: "Wishlist", View: messages.ViewWishlist},
			{Label: "Orders", View: messages.ViewOrders},
			{Label: "Sign out", SignOut: true},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		}
	}
}

// SetIdentity rebuilds the items for identity and resets the selection.
// Setting the identity already shown keeps the selection.
func (v *View) SetIdentity(identity *domain.Identity) {
	if v.identity.Equal(identity) {
		v.identity = identity
		return
	}
	v.identity = identity
	v.items = itemsFor(identity)
	v.selected = 0
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			switch {
			case item.Quit:
				return v, tea.Quit
			case item.SignOut:
				return v, func() tea.Msg { return messages.SignOutRequested{} }
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Storefront"))
	b.WriteString("\n\n")

	greeting := "Browsing as a guest"
	if v.identity != nil {
		greeting = "Signed in as " + v.identity.AccountName
		if v.identity.IsAdmin() {
			greeting += " (admin)"
		}
	}
	b.WriteString(v.styles.Muted.Render(greeting))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

		if i == v.selected {
			cursor = "> "
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)
		}

		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the current menu items.
func (v *View) Items() []Item {
	return v.items
}
