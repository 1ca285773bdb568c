package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_HasRole(t *testing.T) {
	id := &Identity{AccountName: "jane", AccountID: 7, Roles: []Role{RoleUser}}

	assert.True(t, id.HasRole(RoleUser))
	assert.False(t, id.HasRole(RoleAdmin))
	assert.False(t, id.IsAdmin())
}

func TestIdentity_NilIsSafe(t *testing.T) {
	var id *Identity

	assert.False(t, id.HasRole(RoleUser))
	assert.False(t, id.HasAnyRole([]Role{RoleUser, RoleAdmin}))
	assert.False(t, id.IsAdmin())
}

func TestIdentity_HasAnyRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []Role
		required []Role
		expected bool
	}{
		{"intersecting", []Role{RoleUser, RoleAdmin}, []Role{RoleAdmin}, true},
		{"disjoint", []Role{RoleUser}, []Role{RoleAdmin}, false},
		{"no roles", nil, []Role{RoleUser}, false},
		{"nothing required", []Role{RoleUser}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := &Identity{Roles: tt.roles}
			assert.Equal(t, tt.expected, id.HasAnyRole(tt.required))
		})
	}
}

func TestIdentity_Equal(t *testing.T) {
	a := &Identity{AccountName: "jane", AccountID: 7, Roles: []Role{RoleUser}}
	b := &Identity{AccountName: "jane", AccountID: 7, Roles: []Role{RoleUser}}
	c := &Identity{AccountName: "jane", AccountID: 7, Roles: []Role{RoleAdmin}}
	var none *Identity

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(none))
	assert.False(t, none.Equal(a))
	assert.True(t, none.Equal(nil))
}
