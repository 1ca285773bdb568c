// Package login provides the sign-in form for the TUI.
package login

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

// View is a username/password form bound to one login audience.
type View struct {
	styles   *styles.Styles
	session  driving.SessionService
	ctx      context.Context
	audience domain.Audience

	username *input.Field
	password *input.Field
	focus    int

	submitting bool
	err        error
	width      int
	height     int
	ready      bool
}

// NewView creates a sign-in form for audience.
func NewView(s *styles.Styles, session driving.SessionService, audience domain.Audience) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	v := &View{
		styles:   s,
		session:  session,
		ctx:      context.Background(),
		audience: audience,
		username: input.NewField(s, "Username", ""),
		password: input.NewPasswordInput(s, "Password"),
		width:    80,
		height:   24,
	}
	v.password.Blur()
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.username.Init()
}

// Reset clears the form and focuses the username.
func (v *View) Reset() {
	v.username.Reset()
	v.password.Reset()
	v.err = nil
	v.submitting = false
	v.setFocus(0)
}

func (v *View) setFocus(i int) {
	v.focus = i
	if i == 0 {
		v.username.Focus()
		v.password.Blur()
	} else {
		v.password.Focus()
		v.username.Blur()
	}
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.LoginCompleted:
		v.submitting = false
		if msg.Err != nil {
			v.err = msg.Err
			v.password.Reset()
			v.setFocus(1)
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.submitting {
		return v, nil
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	case tea.KeyTab, tea.KeyShiftTab:
		v.setFocus(1 - v.focus)
		return v, nil
	case tea.KeyEnter:
		if v.focus == 0 {
			v.setFocus(1)
			return v, nil
		}
		return v, v.submit()
	}

	if v.focus == 0 {
		v.username, _ = v.username.Update(msg)
	} else {
		v.password, _ = v.password.Update(msg)
	}
	return v, nil
}

func (v *View) submit() tea.Cmd {
	creds := domain.LoginCredentials{
		Username: strings.TrimSpace(v.username.Value()),
		Password: v.password.Value(),
	}
	if creds.Username == "" || creds.Password == "" {
		v.err = errors.New("enter a username and a password")
		return nil
	}

	v.err = nil
	v.submitting = true
	audience := v.audience
	return func() tea.Msg {
		_, err := v.session.Login(v.ctx, creds, audience)
		return messages.LoginCompleted{Audience: audience, Err: err}
	}
}

// View renders the form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	title := "Sign in"
	if v.audience == domain.AudienceAdmin {
		title = "Back office sign in"
	}

	sections := []string{
		v.styles.Title.Render(title), "",
		v.username.View(),
		v.password.View(), "",
	}

	switch {
	case v.submitting:
		sections = append(sections, v.styles.Muted.Render("Signing in..."))
	case errors.Is(v.err, domain.ErrAuthInvalid):
		sections = append(sections, v.styles.Error.Render("Wrong username or password."))
	case v.err != nil:
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()))
	}

	sections = append(sections, "", v.styles.Help.Render("[tab] Switch field  [enter] Sign in  [esc] Back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.username.SetWidth(width / 2)
	v.password.SetWidth(width / 2)
}

// Audience returns the login endpoint the form submits to.
func (v *View) Audience() domain.Audience {
	return v.audience
}

// Focus returns 0 when the username is focused and 1 for the password.
func (v *View) Focus() int {
	return v.focus
}

// Submitting reports whether a login request is in flight.
func (v *View) Submitting() bool {
	return v.submitting
}

// Err returns the last sign-in error.
func (v *View) Err() error {
	return v.err
}
