package driven

import (
	"context"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// AuthAPI exchanges credentials for tokens.
type AuthAPI interface {
	// Login posts credentials to the endpoint selected by audience.
	Login(ctx context.Context, audience domain.Audience, creds domain.LoginCredentials) (*domain.LoginResponse, error)

	// Register creates a standard account.
	Register(ctx context.Context, reg domain.Registration) error
}

// CartAPI is the remote cart.
type CartAPI interface {
	// GetCart returns every line of the account's cart.
	GetCart(ctx context.Context, accountID int64) ([]domain.CartLine, error)

	// AddToCart asks the server to add quantity units. The server may cap it.
	AddToCart(ctx context.Context, req domain.CartAddRequest) error

	// RemoveFromCart removes the product's line.
	RemoveFromCart(ctx context.Context, req domain.CartRemoveRequest) error
}

// WishlistAPI is the remote wishlist.
type WishlistAPI interface {
	GetWishlist(ctx context.Context, accountID int64) ([]domain.WishlistEntry, error)
	AddToWishlist(ctx context.Context, req domain.WishlistRequest) error
	RemoveFromWishlist(ctx context.Context, req domain.WishlistRequest) error
}

// CatalogAPI serves and manages products.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error)

	// CreateProduct and UpdateProduct send the product as JSON plus an optional image.
	CreateProduct(ctx context.Context, input domain.ProductInput, image *domain.ImageUpload) (*domain.Product, error)
	UpdateProduct(
		ctx context.Context, id domain.ProductID, input domain.ProductInput, image *domain.ImageUpload,
	) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id domain.ProductID) error
}

// OrderAPI lists placed orders.
type OrderAPI interface {
	OrdersByAccount(ctx context.Context, accountID int64) ([]domain.Order, error)
	AllOrders(ctx context.Context) ([]domain.Order, error)
}

// AddressAPI manages the signed-in account's delivery addresses.
// The account is implied by the bearer credential.
type AddressAPI interface {
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	AddAddress(ctx context.Context, addr domain.Address) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id int64) error
}

// PaymentAPI performs the payment-intent handshake around the hosted widget.
type PaymentAPI interface {
	CreatePaymentIntent(ctx context.Context, accountID int64) (*domain.PaymentIntent, error)
	FinalizeOrder(ctx context.Context, req domain.FinalizeRequest) error
}

// UserAPI manages accounts.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]domain.Account, error)
	GetUser(ctx context.Context, id int64) (*domain.Account, error)
	UpdateUser(ctx context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error)
	DeleteUser(ctx context.Context, id int64) error
}
