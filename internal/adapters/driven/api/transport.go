package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driven/auth"
)

// Header names set on every request.
const (
	HeaderRequestID = "X-Request-ID"
)

type anonymousKey struct{}

// withoutCredentials marks requests made with ctx as anonymous. The auth
// endpoints use it so a held session token is never sent with a login.
func withoutCredentials(ctx context.Context) context.Context {
	return context.WithValue(ctx, anonymousKey{}, true)
}

func isAnonymous(ctx context.Context) bool {
	anonymous, _ := ctx.Value(anonymousKey{}).(bool)
	return anonymous
}

// transport decorates requests with a request id and, when the token source
// yields one, a bearer Authorization header.
type transport struct {
	base   http.RoundTripper
	tokens oauth2.TokenSource
}

// RoundTrip implements http.RoundTripper.
func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	if out.Header.Get(HeaderRequestID) == "" {
		out.Header.Set(HeaderRequestID, uuid.NewString())
	}

	if t.tokens != nil && out.Header.Get("Authorization") == "" && !isAnonymous(req.Context()) {
		tok, err := t.tokens.Token()
		switch {
		case errors.Is(err, auth.ErrNoToken):
			// Anonymous request.
		case err != nil:
			if req.Body != nil {
				_ = req.Body.Close()
			}
			return nil, err
		default:
			tok.SetAuthHeader(out)
		}
	}

	return t.base.RoundTrip(out)
}
