package driven

import "github.com/custodia-labs/storefront-cli/internal/core/domain"

// TokenDecoder extracts identity from an access credential without verifying
// its signature; verification is the server's job.
//
// Decode must be deterministic and free of side effects. Any failure wraps
// domain.ErrCredentialDecode.
type TokenDecoder interface {
	Decode(token string) (*domain.Identity, error)
}
