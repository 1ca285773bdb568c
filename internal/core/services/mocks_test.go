package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
)

var errBackend = errors.New("backend unavailable")

// Tokens understood by fakeDecoder.
const (
	tokenAlice = "token-alice"
	tokenAdmin = "token-admin"
	tokenBad   = "token-garbled"
)

func aliceIdentity() *domain.Identity {
	return &domain.Identity{AccountName: "alice", AccountID: 7, Roles: []domain.Role{domain.RoleUser}}
}

func adminIdentity() *domain.Identity {
	return &domain.Identity{AccountName: "root", AccountID: 1, Roles: []domain.Role{domain.RoleAdmin}}
}

// fakeDecoder maps known token strings to identities.
type fakeDecoder struct {
	mu    sync.Mutex
	calls int
}

func (d *fakeDecoder) Decode(token string) (*domain.Identity, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()
	switch token {
	case tokenAlice:
		return aliceIdentity(), nil
	case tokenAdmin:
		return adminIdentity(), nil
	default:
		return nil, fmt.Errorf("%w: malformed payload", domain.ErrCredentialDecode)
	}
}

// fakeAuth returns a login response whose access token is the audience's
// well-known token, unless overridden.
type fakeAuth struct {
	resp        *domain.LoginResponse
	err         error
	audiences   []domain.Audience
	registered  []domain.Registration
	registerErr error
}

func (a *fakeAuth) Login(
	_ context.Context,
	audience domain.Audience,
	_ domain.LoginCredentials,
) (*domain.LoginResponse, error) {
	a.audiences = append(a.audiences, audience)
	if a.err != nil {
		return nil, a.err
	}
	if a.resp != nil {
		return a.resp, nil
	}
	token := tokenAlice
	if audience == domain.AudienceAdmin {
		token = tokenAdmin
	}
	return &domain.LoginResponse{
		AccessToken:  token,
		RefreshToken: "refresh-" + token,
		Extra:        map[string]any{"access_token": token, "expires_in": float64(3600)},
	}, nil
}

func (a *fakeAuth) Register(_ context.Context, reg domain.Registration) error {
	if a.registerErr != nil {
		return a.registerErr
	}
	a.registered = append(a.registered, reg)
	return nil
}

// failingCredentialStore fails every operation.
type failingCredentialStore struct{}

func (failingCredentialStore) Load(context.Context) (domain.TokenPair, error) {
	return domain.TokenPair{}, errBackend
}

func (failingCredentialStore) Save(context.Context, domain.TokenPair) error { return errBackend }

func (failingCredentialStore) Clear(context.Context) error { return errBackend }

// staticIdentity is an IdentitySource with a fixed identity.
type staticIdentity struct {
	identity *domain.Identity
}

func (s staticIdentity) Identity() *domain.Identity { return s.identity }

func (s staticIdentity) Snapshot() domain.Session {
	if s.identity == nil {
		return domain.Session{}
	}
	return domain.Session{Credential: "token", Identity: s.identity}
}

// fakeShop is an in-process storefront backend. It mirrors the server's
// behaviour closely enough for the stores: carts are capped at maxPerCart
// units per product and every call is counted.
type fakeShop struct {
	mu sync.Mutex

	products   map[domain.ProductID]domain.Product
	cart       []domain.CartLine
	wishlist   []domain.WishlistEntry
	orders     []domain.Order
	addresses  []domain.Address
	users      map[int64]domain.Account
	maxPerCart int

	calls     int
	finalized []domain.FinalizeRequest

	getCartErr     error
	addErr         error
	removeErr      error
	getWishlistErr error
	wishlistErr    error
	apiErr         error

	// getCartHook runs before GetCart answers, outside the lock.
	getCartHook func(call int)
	getCarts    int
}

var (
	_ driven.CartAPI     = (*fakeShop)(nil)
	_ driven.WishlistAPI = (*fakeShop)(nil)
	_ driven.CatalogAPI  = (*fakeShop)(nil)
	_ driven.OrderAPI    = (*fakeShop)(nil)
	_ driven.AddressAPI  = (*fakeShop)(nil)
	_ driven.PaymentAPI  = (*fakeShop)(nil)
	_ driven.UserAPI     = (*fakeShop)(nil)
)

func newFakeShop() *fakeShop {
	return &fakeShop{
		products: map[domain.ProductID]domain.Product{
			"prod-1": {ProductID: "prod-1", ProductName: "Kettle", ProductPrice: 25, ProductStock: 10},
			"prod-2": {ProductID: "prod-2", ProductName: "Teapot", ProductPrice: 12.5, ProductStock: 3},
		},
		users: map[int64]domain.Account{
			1: {ID: 1, Username: "root", Role: domain.RoleAdmin},
			7: {ID: 7, Username: "alice", FirstName: "Alice", LastName: "Liddell", Role: domain.RoleUser},
		},
	}
}

func (f *fakeShop) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeShop) hit() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeShop) GetCart(_ context.Context, _ int64) ([]domain.CartLine, error) {
	f.mu.Lock()
	f.calls++
	f.getCarts++
	call := f.getCarts
	hook := f.getCartHook
	lines, err := slices.Clone(f.cart), f.getCartErr
	f.mu.Unlock()

	// The response reflects the cart at request time, however late it arrives.
	if hook != nil {
		hook(call)
	}
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (f *fakeShop) AddToCart(_ context.Context, req domain.CartAddRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.addErr != nil {
		return f.addErr
	}
	for i, l := range f.cart {
		if l.ProductID == req.ProductID {
			f.cart[i].Quantity = f.capped(l.Quantity + req.Quantity)
			return nil
		}
	}
	p := f.products[req.ProductID]
	f.cart = append(f.cart, domain.CartLine{
		ID:           int64(len(f.cart) + 1),
		ProductID:    req.ProductID,
		Quantity:     f.capped(req.Quantity),
		ProductName:  p.ProductName,
		ProductPrice: p.ProductPrice,
	})
	return nil
}

func (f *fakeShop) capped(q int) int {
	if f.maxPerCart > 0 && q > f.maxPerCart {
		return f.maxPerCart
	}
	return q
}

func (f *fakeShop) RemoveFromCart(_ context.Context, req domain.CartRemoveRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.removeErr != nil {
		return f.removeErr
	}
	f.cart = slices.DeleteFunc(f.cart, func(l domain.CartLine) bool { return l.ProductID == req.ProductID })
	return nil
}

func (f *fakeShop) GetWishlist(_ context.Context, _ int64) ([]domain.WishlistEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.getWishlistErr != nil {
		return nil, f.getWishlistErr
	}
	return slices.Clone(f.wishlist), nil
}

func (f *fakeShop) AddToWishlist(_ context.Context, req domain.WishlistRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.wishlistErr != nil {
		return f.wishlistErr
	}
	if !domain.ContainsProduct(f.wishlist, req.ProductID) {
		f.wishlist = append(f.wishlist, domain.WishlistEntry{
			ProductID:   req.ProductID,
			ProductName: f.products[req.ProductID].ProductName,
		})
	}
	return nil
}

func (f *fakeShop) RemoveFromWishlist(_ context.Context, req domain.WishlistRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.wishlistErr != nil {
		return f.wishlistErr
	}
	f.wishlist = slices.DeleteFunc(f.wishlist, func(e domain.WishlistEntry) bool {
		return e.ProductID == req.ProductID
	})
	return nil
}

func (f *fakeShop) ListProducts(context.Context) ([]domain.Product, error) {
	f.hit()
	if f.apiErr != nil {
		return nil, f.apiErr
	}
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.Product) int {
		return strings.Compare(string(a.ProductID), string(b.ProductID))
	})
	return out, nil
}

func (f *fakeShop) SearchProducts(_ context.Context, query string) ([]domain.Product, error) {
	all, err := f.ListProducts(context.Background())
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(p domain.Product) bool { return p.ProductName != query }), nil
}

func (f *fakeShop) GetProduct(_ context.Context, id domain.ProductID) (*domain.Product, error) {
	f.hit()
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeShop) CreateProduct(
	_ context.Context,
	input domain.ProductInput,
	_ *domain.ImageUpload,
) (*domain.Product, error) {
	f.hit()
	if f.apiErr != nil {
		return nil, f.apiErr
	}
	id := domain.ProductID(fmt.Sprintf("prod-%d", len(f.products)+1))
	p := domain.Product{ProductID: id, ProductName: input.ProductName, ProductPrice: input.ProductPrice}
	f.products[id] = p
	return &p, nil
}

func (f *fakeShop) UpdateProduct(
	_ context.Context,
	id domain.ProductID,
	input domain.ProductInput,
	_ *domain.ImageUpload,
) (*domain.Product, error) {
	f.hit()
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.ProductName = input.ProductName
	p.ProductPrice = input.ProductPrice
	f.products[id] = p
	return &p, nil
}

func (f *fakeShop) DeleteProduct(_ context.Context, id domain.ProductID) error {
	f.hit()
	delete(f.products, id)
	return nil
}

func (f *fakeShop) OrdersByAccount(_ context.Context, accountID int64) ([]domain.Order, error) {
	f.hit()
	if f.apiErr != nil {
		return nil, f.apiErr
	}
	var out []domain.Order
	for _, o := range f.orders {
		if o.UserID == accountID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeShop) AllOrders(context.Context) ([]domain.Order, error) {
	f.hit()
	return slices.Clone(f.orders), nil
}

func (f *fakeShop) ListAddresses(context.Context) ([]domain.Address, error) {
	f.hit()
	return slices.Clone(f.addresses), nil
}

func (f *fakeShop) AddAddress(_ context.Context, addr domain.Address) (*domain.Address, error) {
	f.hit()
	addr.ID = int64(len(f.addresses) + 1)
	f.addresses = append(f.addresses, addr)
	return &addr, nil
}

func (f *fakeShop) DeleteAddress(_ context.Context, id int64) error {
	f.hit()
	f.addresses = slices.DeleteFunc(f.addresses, func(a domain.Address) bool { return a.ID == id })
	return nil
}

func (f *fakeShop) CreatePaymentIntent(_ context.Context, accountID int64) (*domain.PaymentIntent, error) {
	f.hit()
	if f.apiErr != nil {
		return nil, f.apiErr
	}
	return &domain.PaymentIntent{ID: fmt.Sprintf("pi_%d", accountID), ClientSecret: "secret"}, nil
}

func (f *fakeShop) FinalizeOrder(_ context.Context, req domain.FinalizeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.apiErr != nil {
		return f.apiErr
	}
	f.finalized = append(f.finalized, req)
	f.cart = nil
	return nil
}

func (f *fakeShop) ListUsers(context.Context) ([]domain.Account, error) {
	f.hit()
	out := make([]domain.Account, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b domain.Account) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (f *fakeShop) GetUser(_ context.Context, id int64) (*domain.Account, error) {
	f.hit()
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (f *fakeShop) UpdateUser(_ context.Context, id int64, update domain.AccountUpdate) (*domain.Account, error) {
	f.hit()
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.Email != "" {
		u.Email = update.Email
	}
	if update.FirstName != "" {
		u.FirstName = update.FirstName
	}
	if update.Role != "" {
		u.Role = update.Role
	}
	f.users[id] = u
	return &u, nil
}

func (f *fakeShop) DeleteUser(_ context.Context, id int64) error {
	f.hit()
	delete(f.users, id)
	return nil
}
