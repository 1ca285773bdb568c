// Package auth holds the client-side credential adapters: the unverified
// decoder that derives identity from an access token, and the bridge that
// exposes the session's credential to HTTP clients as an oauth2.TokenSource.
package auth
