// Package api is the REST adapter for the storefront API. A single Client
// implements every remote port in internal/core/ports/driven.
//
// Every request carries an X-Request-ID header and, while the session holds a
// credential, an Authorization bearer header supplied through an
// oauth2.TokenSource. Outgoing requests are throttled by a token bucket that
// also backs off after 429 responses.
//
// Non-2xx responses become *Error values, which unwrap to the matching domain
// sentinel (ErrAuthInvalid, ErrNotFound, ErrRateLimited).
package api
