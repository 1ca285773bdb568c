package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// loginPaths maps each audience to its login endpoint.
var loginPaths = map[domain.Audience]string{
	domain.AudienceStandard: "login",
	domain.AudienceAdmin:    "admin",
}

// Login implements driven.AuthAPI.
func (c *Client) Login(
	ctx context.Context,
	audience domain.Audience,
	creds domain.LoginCredentials,
) (*domain.LoginResponse, error) {
	path, ok := loginPaths[audience]
	if !ok {
		return nil, fmt.Errorf("%w: unknown audience %q", domain.ErrInvalidInput, audience)
	}

	var raw map[string]any
	if err := c.doJSON(withoutCredentials(ctx), http.MethodPost, c.endpoint(nil, path), creds, &raw); err != nil {
		return nil, err
	}
	return parseLoginResponse(raw)
}

func parseLoginResponse(raw map[string]any) (*domain.LoginResponse, error) {
	access, _ := raw["access_token"].(string)
	if access == "" {
		return nil, fmt.Errorf("login response has no access_token")
	}
	refresh, _ := raw["refresh_token"].(string)
	return &domain.LoginResponse{AccessToken: access, RefreshToken: refresh, Extra: raw}, nil
}

// Register implements driven.AuthAPI.
func (c *Client) Register(ctx context.Context, reg domain.Registration) error {
	return c.doJSON(withoutCredentials(ctx), http.MethodPost, c.endpoint(nil, "register"), reg, nil)
}
