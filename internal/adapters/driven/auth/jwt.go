package auth

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driven"
)

// Ensure JWTDecoder implements the interface.
var _ driven.TokenDecoder = (*JWTDecoder)(nil)

// Claim names of the access token payload.
const (
	claimSubject     = "sub"
	claimAccountID   = "user_id"
	claimAuthorities = "authorities"
)

// JWTDecoder reads identity claims from an access token without checking its
// signature or expiry. The server verifies every request.
type JWTDecoder struct {
	parser *jwt.Parser
}

// NewJWTDecoder creates a decoder.
func NewJWTDecoder() *JWTDecoder {
	return &JWTDecoder{parser: jwt.NewParser(jwt.WithJSONNumber())}
}

// Decode implements driven.TokenDecoder.
func (d *JWTDecoder) Decode(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCredentialDecode, err)
	}

	subject, ok := claims[claimSubject].(string)
	if !ok || subject == "" {
		return nil, fmt.Errorf("%w: missing %q claim", domain.ErrCredentialDecode, claimSubject)
	}

	accountID, err := int64Claim(claims, claimAccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCredentialDecode, err)
	}

	roles, err := rolesClaim(claims, claimAuthorities)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCredentialDecode, err)
	}

	return &domain.Identity{AccountName: subject, AccountID: accountID, Roles: roles}, nil
}

func int64Claim(claims jwt.MapClaims, key string) (int64, error) {
	val, ok := claims[key]
	if !ok {
		return 0, fmt.Errorf("missing %q claim", key)
	}
	switch v := val.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
	case float64:
		return int64(v), nil
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("claim %q is not an integer: %v", key, val)
}

// rolesClaim reads a string array claim. A missing claim yields no roles.
func rolesClaim(claims jwt.MapClaims, key string) ([]domain.Role, error) {
	roles := []domain.Role{}
	val, ok := claims[key]
	if !ok || val == nil {
		return roles, nil
	}
	items, ok := val.([]any)
	if !ok {
		return nil, fmt.Errorf("claim %q is not an array", key)
	}
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("claim %q holds a non-string value", key)
		}
		roles = append(roles, domain.Role(s))
	}
	return roles, nil
}
