// Package domain defines the core entities of the storefront client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Identity: account name, id and roles derived from the access credential
//   - Session: the credential/identity snapshot the route gate evaluates
//   - Cart, CartLine: the mirrored server-side cart and its derived item count
//   - Wishlist, WishlistEntry: the mirrored server-side wishlist
//   - Route, Guard, Decision: navigation targets and their access policies
//   - Product, Order, Address, Account: catalog and back-office records
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
