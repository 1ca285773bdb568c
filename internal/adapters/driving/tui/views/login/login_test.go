package login

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
)

type mockSession struct {
	creds    domain.LoginCredentials
	audience domain.Audience
	err      error
}

func (m *mockSession) Identity() *domain.Identity { return nil }

func (m *mockSession) Snapshot() domain.Session { return domain.Session{} }

func (m *mockSession) Initialize(_ context.Context) error { return nil }

func (m *mockSession) Login(
	_ context.Context, creds domain.LoginCredentials, audience domain.Audience,
) (*domain.LoginResponse, error) {
	m.creds = creds
	m.audience = audience
	if m.err != nil {
		return nil, m.err
	}
	return &domain.LoginResponse{AccessToken: "token"}, nil
}

func (m *mockSession) Logout(_ context.Context) {}

func (m *mockSession) Reload(_ context.Context) error { return nil }

func (m *mockSession) Subscribe(_ driving.IdentityListener) func() { return func() {} }

func typeText(v *View, s string) {
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func newTestView(session *mockSession, audience domain.Audience) *View {
	v := NewView(nil, session, audience)
	v.SetDimensions(100, 30)
	return v
}

func TestNewView(t *testing.T) {
	v := newTestView(&mockSession{}, domain.AudienceStandard)

	assert.Equal(t, domain.AudienceStandard, v.Audience())
	assert.Equal(t, 0, v.Focus())
	assert.False(t, v.Submitting())
	assert.Contains(t, v.View(), "Sign in")
}

func TestView_AdminTitle(t *testing.T) {
	v := newTestView(&mockSession{}, domain.AudienceAdmin)

	assert.Contains(t, v.View(), "Back office sign in")
}

func TestView_TabSwitchesField(t *testing.T) {
	v := newTestView(&mockSession{}, domain.AudienceStandard)

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, v.Focus())

	v.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, v.Focus())
}

func TestView_Submit(t *testing.T) {
	session := &mockSession{}
	v := newTestView(session, domain.AudienceAdmin)
	typeText(v, " root ")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, v.Focus())

	typeText(v, "secret")
	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, v.Submitting())
	assert.Contains(t, v.View(), "Signing in...")

	msg := cmd()

	assert.Equal(t, messages.LoginCompleted{Audience: domain.AudienceAdmin}, msg)
	assert.Equal(t, domain.LoginCredentials{Username: "root", Password: "secret"}, session.creds)
	assert.Equal(t, domain.AudienceAdmin, session.audience)

	v.Update(msg)
	assert.False(t, v.Submitting())
	assert.NoError(t, v.Err())
}

func TestView_SubmitRequiresBothFields(t *testing.T) {
	v := newTestView(&mockSession{}, domain.AudienceStandard)
	v.Update(tea.KeyMsg{Type: tea.KeyTab})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	require.Error(t, v.Err())
	assert.Contains(t, v.View(), "enter a username and a password")
}

func TestView_WrongPassword(t *testing.T) {
	v := newTestView(&mockSession{err: domain.ErrAuthInvalid}, domain.AudienceStandard)
	typeText(v, "alice")
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(v, "nope")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	v.Update(cmd())

	assert.ErrorIs(t, v.Err(), domain.ErrAuthInvalid)
	assert.Equal(t, 1, v.Focus())
	assert.Contains(t, v.View(), "Wrong username or password.")
	assert.NotContains(t, v.View(), "nope")
}

func TestView_KeysIgnoredWhileSubmitting(t *testing.T) {
	v := newTestView(&mockSession{}, domain.AudienceStandard)
	typeText(v, "alice")
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(v, "pw")
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
}

func TestView_Escape(t *testing.T) {
	v := newTestView(&mockSession{}, domain.AudienceStandard)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_Reset(t *testing.T) {
	v := newTestView(&mockSession{err: domain.ErrAuthInvalid}, domain.AudienceStandard)
	typeText(v, "alice")
	v.Update(messages.LoginCompleted{Err: domain.ErrAuthInvalid})

	v.Reset()

	assert.Equal(t, 0, v.Focus())
	assert.NoError(t, v.Err())
	assert.NotContains(t, v.View(), "alice")
}
