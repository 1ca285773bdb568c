package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrSignInRequired", ErrSignInRequired},
		{"ErrForbidden", ErrForbidden},
		{"ErrAuthInvalid", ErrAuthInvalid},
		{"ErrCredentialDecode", ErrCredentialDecode},
		{"ErrMutationFailed", ErrMutationFailed},
		{"ErrCartNotUpdated", ErrCartNotUpdated},
		{"ErrAddressRequired", ErrAddressRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrSignInRequired(t *testing.T) {
	assert.Equal(t, "please sign in first", ErrSignInRequired.Error())
	assert.False(t, errors.Is(ErrSignInRequired, ErrForbidden))
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("add to cart: %w", ErrMutationFailed)

	assert.True(t, errors.Is(wrapped, ErrMutationFailed))
	assert.False(t, errors.Is(wrapped, ErrCartNotUpdated))
	assert.Contains(t, wrapped.Error(), "mutation failed")
}
