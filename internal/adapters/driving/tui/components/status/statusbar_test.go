package status

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_InitAndUpdate(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Nil(t, bar.Init())
	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View_SignedOut(t *testing.T) {
	bar := NewBar(nil, nil)

	view := bar.View()

	assert.Contains(t, view, "signed out")
	assert.Contains(t, view, "Ready")
	assert.Contains(t, view, "esc: back")
}

func TestStatusBar_View_Session(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)
	bar.SetSession("alice", 3)

	view := bar.View()

	assert.Equal(t, "alice", bar.Account())
	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "cart: 3 items")
}

func TestStatusBar_States(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	bar.SetState(StateLoading)
	assert.Contains(t, bar.View(), "Loading...")

	bar.Fail(errors.New("boom"))
	assert.Equal(t, StateError, bar.State())
	assert.Contains(t, bar.View(), "Error: boom")

	bar.Notice("Added to cart")
	assert.Equal(t, StateNotice, bar.State())
	assert.Contains(t, bar.View(), "Added to cart")

	bar.SetState(StateResults)
	bar.SetResultCount(4)
	assert.Contains(t, bar.View(), "4 results")

	bar.Clear()
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Zero(t, bar.ResultCount())
}

func TestStatusBar_Hints(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(160)

	bar.SetHints(km.ProductsHelp())
	assert.Contains(t, bar.View(), "a: add to cart")

	bar.SetHints(nil)
	assert.NotContains(t, bar.View(), "add to cart")
}
