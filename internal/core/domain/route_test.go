package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func adminRoute() Route {
	return Route{Pattern: "/admin/dashboard", Guards: []Guard{RequireRoles{Roles: []Role{RoleAdmin}}}}
}

func TestRequireRoles_Check(t *testing.T) {
	targets := DefaultTargets()

	tests := []struct {
		name     string
		session  Session
		expected Decision
	}{
		{
			name:     "no credential redirects to login",
			session:  Session{},
			expected: RedirectTo("/login"),
		},
		{
			name:     "credential without identity shows loading",
			session:  Session{Credential: "tok"},
			expected: Loading(),
		},
		{
			name:     "wrong role redirects home",
			session:  Session{Credential: "tok", Identity: &Identity{Roles: []Role{RoleUser}}},
			expected: RedirectTo("/"),
		},
		{
			name:     "matching role is allowed",
			session:  Session{Credential: "tok", Identity: &Identity{Roles: []Role{RoleAdmin}}},
			expected: Allow(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adminRoute().Evaluate(tt.session, targets))
		})
	}
}

func TestPreventAdmin_Check(t *testing.T) {
	targets := DefaultTargets()
	g := PreventAdmin{}

	assert.Equal(t, Allow(), g.Check(Session{}, targets))
	assert.Equal(t, Allow(), g.Check(Session{Credential: "tok"}, targets))
	assert.Equal(t, Allow(), g.Check(Session{Credential: "tok", Identity: &Identity{Roles: []Role{RoleUser}}}, targets))
	assert.Equal(t, RedirectTo("/admin/dashboard"),
		g.Check(Session{Credential: "tok", Identity: &Identity{Roles: []Role{RoleAdmin}}}, targets))
}

func TestRoute_Evaluate_ComposesGuards(t *testing.T) {
	targets := DefaultTargets()
	both := Route{Pattern: "/x", Guards: []Guard{
		PreventAdmin{},
		RequireRoles{Roles: []Role{RoleUser, RoleAdmin}},
	}}
	unguarded := Route{Pattern: "/y"}

	admin := Session{Credential: "tok", Identity: &Identity{Roles: []Role{RoleAdmin}}}
	user := Session{Credential: "tok", Identity: &Identity{Roles: []Role{RoleUser}}}

	assert.Equal(t, RedirectTo("/admin/dashboard"), both.Evaluate(admin, targets))
	assert.Equal(t, Allow(), both.Evaluate(user, targets))
	assert.Equal(t, RedirectTo("/login"), both.Evaluate(Session{}, targets))
	assert.Equal(t, Allow(), unguarded.Evaluate(Session{}, targets))
	assert.Equal(t, Allow(), unguarded.Evaluate(admin, targets))
}

func TestRoute_Match(t *testing.T) {
	tests := []struct {
		pattern  string
		path     string
		expected bool
	}{
		{"/", "/", true},
		{"/", "", true},
		{"/cart", "/cart", true},
		{"/cart", "/cart/", true},
		{"/cart", "/wishlist", false},
		{"/product/:id", "/product/42", true},
		{"/product/:id", "/product", false},
		{"/product/:id", "/product/42/extra", false},
		{"/search", "/search?q=lamp", true},
		{"/admin/users/edit/:id", "/admin/users/edit/3", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, Route{Pattern: tt.pattern}.Match(tt.path))
		})
	}
}

func TestDefaultRoutes_Guards(t *testing.T) {
	routes := DefaultRoutes()
	byPattern := make(map[string]Route, len(routes))
	for _, r := range routes {
		byPattern[r.Pattern] = r
	}

	assert.Empty(t, byPattern["/admin/login"].Guards)
	assert.Equal(t, []Guard{PreventAdmin{}}, byPattern["/checkout"].Guards)
	assert.Equal(t, []Guard{RequireRoles{Roles: []Role{RoleAdmin}}}, byPattern["/admin/orders"].Guards)
}
