package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// Session Errors.

	// ErrSignInRequired indicates an operation needs a signed-in account.
	// No network call is made when this is returned.
	ErrSignInRequired = errors.New("please sign in first")

	// ErrForbidden indicates the signed-in account lacks the required role.
	ErrForbidden = errors.New("insufficient role")

	// ErrAuthInvalid indicates the remote API rejected the credentials.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrCredentialDecode indicates the access credential payload could not be decoded.
	// It is treated exactly like an absent credential.
	ErrCredentialDecode = errors.New("credential decode failed")

	// Store Errors.

	// ErrMutationFailed indicates a cart or wishlist mutation was rejected remotely.
	ErrMutationFailed = errors.New("mutation failed")

	// ErrCartNotUpdated indicates an add-to-cart round trip left the quantity unchanged,
	// usually because the per-product cart maximum was already reached.
	ErrCartNotUpdated = errors.New("cart quantity did not increase")

	// ErrAddressRequired indicates checkout was finalised without a delivery address.
	ErrAddressRequired = errors.New("delivery address required")
)
