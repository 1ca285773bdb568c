package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Phase(t *testing.T) {
	tests := []struct {
		name     string
		session  Session
		expected SessionPhase
	}{
		{"no credential", Session{}, SessionAnonymous},
		{"credential without identity", Session{Credential: "tok"}, SessionPending},
		{"credential with identity", Session{Credential: "tok", Identity: &Identity{AccountID: 1}}, SessionAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.session.Phase())
		})
	}
}

func TestSessionPhase_String(t *testing.T) {
	assert.Equal(t, "anonymous", SessionAnonymous.String())
	assert.Equal(t, "pending", SessionPending.String())
	assert.Equal(t, "authenticated", SessionAuthenticated.String())
	assert.Equal(t, "unknown", SessionPhase(99).String())
}

func TestAudience_IsValid(t *testing.T) {
	assert.True(t, AudienceStandard.IsValid())
	assert.True(t, AudienceAdmin.IsValid())
	assert.False(t, Audience("").IsValid())
	assert.False(t, Audience("root").IsValid())
}

func TestTokenPair_IsZero(t *testing.T) {
	assert.True(t, TokenPair{}.IsZero())
	assert.True(t, TokenPair{RefreshToken: "r"}.IsZero())
	assert.False(t, TokenPair{AccessToken: "a"}.IsZero())
}
