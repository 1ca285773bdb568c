package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return token
}

func TestJWTDecoder_Decode(t *testing.T) {
	token := sign(t, jwt.MapClaims{
		"sub":         "alice",
		"user_id":     42,
		"authorities": []string{"USER"},
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	identity, err := NewJWTDecoder().Decode(token)

	require.NoError(t, err)
	assert.Equal(t, &domain.Identity{AccountName: "alice", AccountID: 42, Roles: []domain.Role{domain.RoleUser}}, identity)
}

func TestJWTDecoder_Decode_IgnoresSignatureAndExpiry(t *testing.T) {
	token := sign(t, jwt.MapClaims{
		"sub":         "root",
		"user_id":     1,
		"authorities": []string{"ADMIN"},
		"exp":         time.Now().Add(-time.Hour).Unix(),
	})

	identity, err := NewJWTDecoder().Decode(token)

	require.NoError(t, err)
	assert.True(t, identity.IsAdmin())
}

func TestJWTDecoder_Decode_IsDeterministic(t *testing.T) {
	token := sign(t, jwt.MapClaims{"sub": "alice", "user_id": 42, "authorities": []string{"USER", "ADMIN"}})
	decoder := NewJWTDecoder()

	first, err := decoder.Decode(token)
	require.NoError(t, err)
	second, err := decoder.Decode(token)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestJWTDecoder_Decode_AccountIDForms(t *testing.T) {
	tests := []struct {
		name string
		id   any
	}{
		{"integer", 9},
		{"float", 9.0},
		{"string", "9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := sign(t, jwt.MapClaims{"sub": "bob", "user_id": tt.id})

			identity, err := NewJWTDecoder().Decode(token)

			require.NoError(t, err)
			assert.Equal(t, int64(9), identity.AccountID)
			assert.NotNil(t, identity.Roles)
			assert.Empty(t, identity.Roles)
		})
	}
}

func TestJWTDecoder_Decode_Failures(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "not-a-token"},
		{"bad base64", "a.b@@.c"},
		{"missing subject", sign(t, jwt.MapClaims{"user_id": 1})},
		{"missing account id", sign(t, jwt.MapClaims{"sub": "alice"})},
		{"non numeric account id", sign(t, jwt.MapClaims{"sub": "alice", "user_id": "abc"})},
		{"authorities not array", sign(t, jwt.MapClaims{"sub": "a", "user_id": 1, "authorities": "USER"})},
		{"authorities non string", sign(t, jwt.MapClaims{"sub": "a", "user_id": 1, "authorities": []any{1}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := NewJWTDecoder().Decode(tt.token)

			require.ErrorIs(t, err, domain.ErrCredentialDecode)
			assert.Nil(t, identity)
		})
	}
}
