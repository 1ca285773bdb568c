package domain

import "strings"

// Outcome is what the route gate decided for a navigation target.
type Outcome int

const (
	// OutcomeAllow lets the navigation proceed.
	OutcomeAllow Outcome = iota

	// OutcomeRedirect sends the navigation to Decision.Target instead.
	OutcomeRedirect

	// OutcomeLoading renders a transient "loading identity" placeholder.
	OutcomeLoading
)

// String returns the string representation.
func (o Outcome) String() string {
	switch o {
	case OutcomeAllow:
		return "allow"
	case OutcomeRedirect:
		return "redirect"
	case OutcomeLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Decision is the result of evaluating guards against a session.
type Decision struct {
	Outcome Outcome
	Target  string
}

// Allowed reports whether the navigation may proceed.
func (d Decision) Allowed() bool {
	return d.Outcome == OutcomeAllow
}

// Allow is the decision that lets a navigation proceed.
func Allow() Decision {
	return Decision{Outcome: OutcomeAllow}
}

// RedirectTo is the decision that sends a navigation to target.
func RedirectTo(target string) Decision {
	return Decision{Outcome: OutcomeRedirect, Target: target}
}

// Loading is the decision that shows the identity placeholder.
func Loading() Decision {
	return Decision{Outcome: OutcomeLoading}
}

// Targets are the well-known redirect destinations.
type Targets struct {
	// Login is the standard login target.
	Login string

	// Home is the anonymous-accessible default target.
	Home string

	// AdminHome is the administrative default target.
	AdminHome string
}

// DefaultTargets returns the storefront's redirect destinations.
func DefaultTargets() Targets {
	return Targets{
		Login:     "/login",
		Home:      "/",
		AdminHome: "/admin/dashboard",
	}
}

// Guard is an access policy attached to a route.
type Guard interface {
	Check(s Session, t Targets) Decision
}

// RequireRoles admits only identities holding at least one of Roles.
type RequireRoles struct {
	Roles []Role
}

// Check implements Guard.
func (g RequireRoles) Check(s Session, t Targets) Decision {
	if !s.HasCredential() {
		return RedirectTo(t.Login)
	}
	// A credential whose identity is not derived yet must not be treated as absent.
	if s.Identity == nil {
		return Loading()
	}
	if !s.Identity.HasAnyRole(g.Roles) {
		return RedirectTo(t.Home)
	}
	return Allow()
}

// PreventAdmin keeps administrative identities out of the storefront flows
// meant for standard accounts. Anonymous visitors pass.
type PreventAdmin struct{}

// Check implements Guard.
func (PreventAdmin) Check(s Session, t Targets) Decision {
	if s.Identity.IsAdmin() {
		return RedirectTo(t.AdminHome)
	}
	return Allow()
}

// Route is a navigation target with the guards wrapping it.
type Route struct {
	// Pattern is a slash-separated path; segments starting with ':' match any value.
	Pattern string

	// Name is a short human-readable label.
	Name string

	// Guards are evaluated in order; the first non-allow decision wins.
	Guards []Guard
}

// Evaluate applies the route's guards to s.
func (r Route) Evaluate(s Session, t Targets) Decision {
	for _, g := range r.Guards {
		if d := g.Check(s, t); !d.Allowed() {
			return d
		}
	}
	return Allow()
}

// Match reports whether path addresses this route.
func (r Route) Match(path string) bool {
	want := splitPath(r.Pattern)
	got := splitPath(path)
	if len(want) != len(got) {
		return false
	}
	for i, seg := range want {
		if strings.HasPrefix(seg, ":") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// DefaultRoutes returns the storefront's navigation table. The storefront
// subtree is closed to administrative identities and the back office is
// closed to everything but them.
func DefaultRoutes() []Route {
	storefront := []Guard{PreventAdmin{}}
	backOffice := []Guard{RequireRoles{Roles: []Role{RoleAdmin}}}

	return []Route{
		{Pattern: "/", Name: "Home", Guards: storefront},
		{Pattern: "/product/:id", Name: "Product", Guards: storefront},
		{Pattern: "/login", Name: "Login", Guards: storefront},
		{Pattern: "/register", Name: "Register", Guards: storefront},
		{Pattern: "/cart", Name: "Cart", Guards: storefront},
		{Pattern: "/checkout", Name: "Checkout", Guards: storefront},
		{Pattern: "/profile", Name: "Profile", Guards: storefront},
		{Pattern: "/orders", Name: "Orders", Guards: storefront},
		{Pattern: "/search", Name: "Search", Guards: storefront},
		{Pattern: "/wishlist", Name: "Wishlist", Guards: storefront},

		{Pattern: "/admin/login", Name: "Admin Login"},

		{Pattern: "/admin/dashboard", Name: "Dashboard", Guards: backOffice},
		{Pattern: "/admin/products", Name: "Products", Guards: backOffice},
		{Pattern: "/admin/products/new", Name: "New Product", Guards: backOffice},
		{Pattern: "/admin/products/edit/:id", Name: "Edit Product", Guards: backOffice},
		{Pattern: "/admin/users", Name: "Users", Guards: backOffice},
		{Pattern: "/admin/users/edit/:id", Name: "Edit User", Guards: backOffice},
		{Pattern: "/admin/orders", Name: "All Orders", Guards: backOffice},
	}
}
