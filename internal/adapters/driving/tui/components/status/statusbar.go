// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
)

// State represents the current view state for display.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
	StateNotice  State = "notice"
	StateResults State = "results"
)

// Bar displays the session, view state and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	hints       []key.Binding
	state       State
	message     string
	account     string
	resultCount int
	cartItems   int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	var state string
	switch s.state {
	case StateLoading:
		state = s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message != "" {
			state = s.styles.Error.Render("Error: " + s.message)
		} else {
			state = s.styles.Error.Render("Error")
		}
	case StateNotice:
		state = s.styles.Success.Render(s.message)
	case StateResults:
		state = s.styles.Normal.Render(fmt.Sprintf("%d results", s.resultCount))
	default:
		state = s.styles.Muted.Render("Ready")
	}
	return s.renderSession() + "  " + state
}

func (s *Bar) renderSession() string {
	if s.account == "" {
		return s.styles.Muted.Render("signed out")
	}
	return s.styles.Subtitle.Render(s.account) +
		s.styles.Muted.Render(" · cart: "+format.Items(s.cartItems))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.hints
	if len(bindings) == 0 {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Notice shows a one-off confirmation such as "Added to cart".
func (s *Bar) Notice(message string) {
	s.state = StateNotice
	s.message = message
}

// Fail shows err in the bar.
func (s *Bar) Fail(err error) {
	s.state = StateError
	s.message = err.Error()
}

// SetSession sets the signed-in account name and cart item count. An empty
// account renders as signed out.
func (s *Bar) SetSession(account string, cartItems int) {
	s.account = account
	s.cartItems = cartItems
}

// Account returns the account shown in the bar.
func (s *Bar) Account() string {
	return s.account
}

// SetHints replaces the keybinding hints. Nil restores the short help.
func (s *Bar) SetHints(bindings []key.Binding) {
	s.hints = bindings
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// ResultCount returns the current result count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state. The session is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.resultCount = 0
}
