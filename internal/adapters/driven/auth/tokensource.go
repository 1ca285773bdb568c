package auth

import (
	"context"
	"errors"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
)

// ErrNoToken is returned by SessionTokenSource when the session is anonymous.
var ErrNoToken = errors.New("no access token")

// Ensure the adapters implement the interfaces.
var (
	_ oauth2.TokenSource   = (*SessionTokenSource)(nil)
	_ driven.TokenProvider = TokenProviderFunc(nil)
)

// TokenProviderFunc adapts a function to driven.TokenProvider. It lets the
// REST client be built before the session that will supply its tokens.
type TokenProviderFunc func(ctx context.Context) (string, error)

// GetToken calls f(ctx).
func (f TokenProviderFunc) GetToken(ctx context.Context) (string, error) {
	return f(ctx)
}

// SessionTokenSource exposes the session's current credential as an oauth2
// bearer token. It reads the provider on every call, so login and logout take
// effect on the next request.
type SessionTokenSource struct {
	ctx      context.Context
	provider driven.TokenProvider
}

// NewSessionTokenSource creates a token source reading from provider.
func NewSessionTokenSource(ctx context.Context, provider driven.TokenProvider) *SessionTokenSource {
	return &SessionTokenSource{ctx: ctx, provider: provider}
}

// Token implements oauth2.TokenSource. It returns ErrNoToken when no
// credential is held.
func (s *SessionTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.provider.GetToken(s.ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoToken
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}
