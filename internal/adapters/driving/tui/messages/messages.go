// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// ViewChanged asks the app to navigate. The route gate decides where the
// navigation actually lands.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewLogin is the storefront sign-in form.
	ViewLogin
	// ViewAdminLogin is the back-office sign-in form.
	ViewAdminLogin
	// ViewCatalog lists and searches products.
	ViewCatalog
	// ViewCart shows the signed-in account's cart.
	ViewCart
	// ViewWishlist shows the signed-in account's wishlist.
	ViewWishlist
	// ViewOrders shows the order history.
	ViewOrders
	// ViewAdmin is the back-office dashboard.
	ViewAdmin
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewLoading is shown while the session identity is not resolved.
	ViewLoading
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewLogin:
		return "login"
	case ViewAdminLogin:
		return "admin_login"
	case ViewCatalog:
		return "catalog"
	case ViewCart:
		return "cart"
	case ViewWishlist:
		return "wishlist"
	case ViewOrders:
		return "orders"
	case ViewAdmin:
		return "admin"
	case ViewHelp:
		return "help"
	case ViewLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Path returns the route the view is guarded by. Views without a route
// return "".
func (v ViewType) Path() string {
	switch v {
	case ViewMenu:
		return "/"
	case ViewLogin:
		return "/login"
	case ViewAdminLogin:
		return "/admin/login"
	case ViewCatalog:
		return "/search"
	case ViewCart:
		return "/cart"
	case ViewWishlist:
		return "/wishlist"
	case ViewOrders:
		return "/orders"
	case ViewAdmin:
		return "/admin/dashboard"
	default:
		return ""
	}
}

// ViewForPath maps a route back to the view that renders it. Back-office
// routes without a dedicated view land on the dashboard; anything else
// unknown lands on the menu.
func ViewForPath(path string) ViewType {
	for _, v := range []ViewType{
		ViewMenu, ViewLogin, ViewAdminLogin, ViewCatalog,
		ViewCart, ViewWishlist, ViewOrders, ViewAdmin,
	} {
		if v.Path() == path {
			return v
		}
	}
	if len(path) > len("/admin/") && path[:len("/admin/")] == "/admin/" {
		return ViewAdmin
	}
	return ViewMenu
}

// IdentityChanged signals that the session identity changed, either from
// a sign-in in this process or from the credential watcher.
type IdentityChanged struct{}

// LoginCompleted carries the outcome of a sign-in attempt.
type LoginCompleted struct {
	Audience domain.Audience
	Err      error
}

// SignOutRequested asks the app to end the session.
type SignOutRequested struct{}

// ProductsLoaded carries a catalog listing or search result.
type ProductsLoaded struct {
	Query    string
	Products []domain.Product
	Err      error
}

// CartLoaded signals that the cart store finished a fetch.
type CartLoaded struct {
	Err error
}

// CartAdded carries the outcome of an add-to-cart.
type CartAdded struct {
	Product domain.Product
	Result  domain.AddResult
	Err     error
}

// CartRemoved carries the outcome of a cart line removal.
type CartRemoved struct {
	ProductID domain.ProductID
	Err       error
}

// WishlistLoaded signals that the wishlist store finished a fetch.
type WishlistLoaded struct {
	Err error
}

// WishlistToggled carries the outcome of a wishlist toggle.
type WishlistToggled struct {
	ProductID domain.ProductID
	Added     bool
	Err       error
}

// OrdersLoaded carries an order listing.
type OrdersLoaded struct {
	Orders []domain.Order
	Err    error
}

// UsersLoaded carries the back-office account listing.
type UsersLoaded struct {
	Users []domain.Account
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
