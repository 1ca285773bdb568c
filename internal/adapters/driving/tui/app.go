package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/admin"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/cart"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/login"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/orders"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/views/wishlist"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Every navigation goes through the route gate: a view the session may not
// open is replaced by the gate's redirect target, and while the identity is
// not resolved a loading placeholder is shown instead.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	menuView       *menu.View
	loginView      *login.View
	adminLoginView *login.View
	catalogView    *catalog.View
	cartView       *cart.View
	wishlistView   *wishlist.View
	ordersView     *orders.View
	adminView      *admin.View

	currentView messages.ViewType

	// pending is the view requested while the identity was loading.
	pending    messages.ViewType
	hasPending bool

	// redirected records the view the last navigation asked for when the
	// gate sent it elsewhere.
	redirected *messages.ViewType

	identityCh  chan struct{}
	unsubscribe func()

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menu.NewView(s),
		loginView:      login.NewView(s, ports.Session, domain.AudienceStandard),
		adminLoginView: login.NewView(s, ports.Session, domain.AudienceAdmin),
		catalogView:    catalog.NewView(s, km, ports.Catalog, ports.Cart, ports.Wishlist),
		cartView:       cart.NewView(s, km, ports.Cart),
		wishlistView:   wishlist.NewView(s, km, ports.Wishlist, ports.Cart),
		ordersView:     orders.NewView(s, ports.Orders),
		adminView:      admin.NewView(s, ports.Admin),
		currentView:    messages.ViewMenu,
		identityCh:     make(chan struct{}, 1),
	}

	a.unsubscribe = ports.Session.Subscribe(func(context.Context, *domain.Identity) {
		// Coalesce: the app re-reads the identity when it handles the signal.
		select {
		case a.identityCh <- struct{}{}:
		default:
		}
	})
	a.syncSession()

	return a, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.loginView.WithContext(ctx)
	a.adminLoginView.WithContext(ctx)
	a.catalogView.WithContext(ctx)
	a.cartView.WithContext(ctx)
	a.wishlistView.WithContext(ctx)
	a.ordersView.WithContext(ctx)
	a.adminView.WithContext(ctx)
	return a
}

// Close stops listening for identity changes.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("storefront"),
		a.waitForIdentity(),
	)
}

// waitForIdentity delivers the next identity change as a message.
func (a *App) waitForIdentity() tea.Cmd {
	ch, ctx := a.identityCh, a.ctx
	return func() tea.Msg {
		select {
		case <-ch:
			return messages.IdentityChanged{}
		case <-ctx.Done():
			return nil
		}
	}
}

// syncSession pushes the current identity and cart size into the views.
func (a *App) syncSession() {
	identity := a.ports.Session.Identity()
	a.menuView.SetIdentity(identity)

	account := ""
	if identity != nil {
		account = identity.AccountName
	}
	items := a.ports.Cart.ItemCount()
	a.catalogView.SetSession(account, items)
	a.cartView.SetSession(account, items)
	a.wishlistView.SetSession(account, items)
}

// navigate asks the gate whether view may open and enters wherever the
// navigation lands. The menu is the launcher and is always reachable.
func (a *App) navigate(view messages.ViewType) tea.Cmd {
	path := view.Path()
	if path == "" || view == messages.ViewMenu {
		a.hasPending = false
		a.redirected = nil
		a.currentView = view
		return nil
	}

	final, decision := a.ports.Gate.Resolve(path)
	if decision.Outcome == domain.OutcomeLoading {
		a.pending = view
		a.hasPending = true
		a.currentView = messages.ViewLoading
		return nil
	}
	a.hasPending = false

	target := messages.ViewForPath(final)
	a.redirected = nil
	if target != view {
		logger.Debug("Navigation to %s redirected to %s", path, final)
		requested := view
		a.redirected = &requested
	}
	return a.enter(target)
}

// enter makes view current and starts its loading.
func (a *App) enter(view messages.ViewType) tea.Cmd {
	a.currentView = view
	switch view {
	case messages.ViewLogin:
		a.loginView.Reset()
		return a.loginView.Init()
	case messages.ViewAdminLogin:
		a.adminLoginView.Reset()
		return a.adminLoginView.Init()
	case messages.ViewCatalog:
		a.catalogView.Reset()
		return a.catalogView.Init()
	case messages.ViewCart:
		return a.cartView.Init()
	case messages.ViewWishlist:
		return a.wishlistView.Init()
	case messages.ViewOrders:
		return a.ordersView.Init()
	case messages.ViewAdmin:
		return a.adminView.Init()
	case messages.ViewMenu, messages.ViewHelp, messages.ViewLoading:
		// Nothing to load
	}
	return nil
}

// onIdentityChanged re-runs the gate: a pending navigation is retried and
// the current view is left if the new identity may not see it.
func (a *App) onIdentityChanged() tea.Cmd {
	a.syncSession()

	if a.hasPending {
		return a.navigate(a.pending)
	}
	path := a.currentView.Path()
	if path == "" || a.currentView == messages.ViewMenu {
		return nil
	}
	if a.ports.Gate.Evaluate(path).Allowed() {
		return nil
	}
	return a.navigate(a.currentView)
}

// onLogin sends a successful sign-in to the audience's start view.
func (a *App) onLogin(msg messages.LoginCompleted) tea.Cmd {
	var cmd tea.Cmd
	if msg.Audience == domain.AudienceAdmin {
		a.adminLoginView, cmd = a.adminLoginView.Update(msg)
	} else {
		a.loginView, cmd = a.loginView.Update(msg)
	}
	if msg.Err != nil {
		a.err = msg.Err
		return cmd
	}

	a.err = nil
	a.syncSession()
	targets := a.ports.Gate.Targets()
	start := targets.Home
	if msg.Audience == domain.AudienceAdmin {
		start = targets.AdminHome
	}
	return a.navigate(messages.ViewForPath(start))
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.handleKey(msg)

	case messages.ViewChanged:
		return a, a.navigate(msg.View)

	case messages.IdentityChanged:
		return a, tea.Batch(a.onIdentityChanged(), a.waitForIdentity())

	case messages.LoginCompleted:
		return a, a.onLogin(msg)

	case messages.SignOutRequested:
		a.ports.Session.Logout(a.ctx)
		a.syncSession()
		return a, a.navigate(messages.ViewMenu)

	case messages.ProductsLoaded:
		a.catalogView, cmd = a.catalogView.Update(msg)
		return a, cmd

	case messages.CartAdded:
		a.syncSession()
		if a.currentView == messages.ViewWishlist {
			a.wishlistView, cmd = a.wishlistView.Update(msg)
		} else {
			a.catalogView, cmd = a.catalogView.Update(msg)
		}
		return a, cmd

	case messages.CartLoaded, messages.CartRemoved:
		a.syncSession()
		a.cartView, cmd = a.cartView.Update(msg)
		return a, cmd

	case messages.WishlistLoaded:
		a.wishlistView, cmd = a.wishlistView.Update(msg)
		return a, cmd

	case messages.WishlistToggled:
		if a.currentView == messages.ViewWishlist {
			a.wishlistView, cmd = a.wishlistView.Update(msg)
		} else {
			a.catalogView, cmd = a.catalogView.Update(msg)
		}
		return a, cmd

	case messages.OrdersLoaded:
		if a.currentView == messages.ViewAdmin {
			a.adminView, cmd = a.adminView.Update(msg)
		} else {
			a.ordersView, cmd = a.ordersView.Update(msg)
		}
		return a, cmd

	case messages.UsersLoaded:
		a.adminView, cmd = a.adminView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewCatalog {
			a.catalogView, cmd = a.catalogView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKey forwards a key press to the active view.
func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		if msg.String() == "?" {
			a.currentView = messages.ViewHelp
			return nil
		}
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
	case messages.ViewAdminLogin:
		a.adminLoginView, cmd = a.adminLoginView.Update(msg)
	case messages.ViewCatalog:
		a.catalogView, cmd = a.catalogView.Update(msg)
	case messages.ViewCart:
		a.cartView, cmd = a.cartView.Update(msg)
	case messages.ViewWishlist:
		a.wishlistView, cmd = a.wishlistView.Update(msg)
	case messages.ViewOrders:
		a.ordersView, cmd = a.ordersView.Update(msg)
	case messages.ViewAdmin:
		a.adminView, cmd = a.adminView.Update(msg)
	case messages.ViewHelp, messages.ViewLoading:
		if msg.Type == tea.KeyEsc {
			a.hasPending = false
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewLogin:
		return a.withRedirect(a.loginView.View())
	case messages.ViewAdminLogin:
		return a.withRedirect(a.adminLoginView.View())
	case messages.ViewCatalog:
		return a.catalogView.View()
	case messages.ViewCart:
		return a.cartView.View()
	case messages.ViewWishlist:
		return a.wishlistView.View()
	case messages.ViewOrders:
		return a.ordersView.View()
	case messages.ViewAdmin:
		return a.adminView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewLoading:
		return a.viewLoading()
	default:
		return a.withRedirect(a.menuView.View())
	}
}

// withRedirect prefixes a view reached through a redirect with a note.
func (a *App) withRedirect(view string) string {
	if a.redirected == nil {
		return view
	}
	note := a.styles.Warning.Render(fmt.Sprintf("You can't open %s with this session.", a.redirected.String()))
	return note + "\n\n" + view
}

func (a *App) viewLoading() string {
	return a.styles.Title.Render("Storefront") + "\n\n" +
		a.styles.Muted.Render("Checking your session...") + "\n\n" +
		a.styles.Help.Render("[esc] Back to menu")
}

func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  ?           This help
  q           Quit

Catalog:
  (type)      Enter a search query, empty lists everything
  enter       Submit search
  a           Add the selected product to the cart
  w           Add or remove the selected product from the wishlist
  n           New search

Cart:
  x           Remove the selected line
  r           Refresh

Back office:
  tab         Switch between orders and users

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.Close()
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Redirected returns the view the last navigation asked for when the gate
// sent it elsewhere.
func (a *App) Redirected() (messages.ViewType, bool) {
	if a.redirected == nil {
		return 0, false
	}
	return *a.redirected, true
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.loginView.SetDimensions(width, height)
	a.adminLoginView.SetDimensions(width, height)
	a.catalogView.SetDimensions(width, height)
	a.cartView.SetDimensions(width, height)
	a.wishlistView.SetDimensions(width, height)
	a.ordersView.SetDimensions(width, height)
	a.adminView.SetDimensions(width, height)
}
