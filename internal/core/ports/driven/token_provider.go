package driven

import "context"

// TokenProvider supplies the bearer credential for authenticated API calls.
// The session service implements it; the REST adapter adapts it to an
// oauth2.TokenSource.
type TokenProvider interface {
	// GetToken returns the current access credential, or "" when signed out.
	// An empty token means the request is sent without Authorization.
	GetToken(ctx context.Context) (string, error)
}
