package services

import (
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
	"github.com/custodia-labs/storefront-cli/internal/core/ports/driving"
	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// Ensure RouteGate implements the interface.
var _ driving.RouteGate = (*RouteGate)(nil)

// maxRedirects bounds Resolve so a misconfigured route table cannot loop.
const maxRedirects = 8

// RouteGate evaluates route guards against the live session.
type RouteGate struct {
	session driving.IdentitySource
	routes  []domain.Route
	targets domain.Targets
}

// NewRouteGate creates a gate over routes. A nil routes slice uses the
// default storefront table.
func NewRouteGate(session driving.IdentitySource, routes []domain.Route, targets domain.Targets) *RouteGate {
	if routes == nil {
		routes = domain.DefaultRoutes()
	}
	return &RouteGate{session: session, routes: routes, targets: targets}
}

// Evaluate decides whether path is reachable. The first matching route
// decides; paths matching no route are allowed.
func (g *RouteGate) Evaluate(path string) domain.Decision {
	snapshot := g.session.Snapshot()
	for _, r := range g.routes {
		if r.Match(path) {
			d := r.Evaluate(snapshot, g.targets)
			logger.Debug("Route %s (%s): %s %s", path, r.Name, d.Outcome, d.Target)
			return d
		}
	}
	return domain.Allow()
}

// Resolve follows redirects from path until a target is allowed or shows
// the loading placeholder.
func (g *RouteGate) Resolve(path string) (string, domain.Decision) {
	current := path
	for i := 0; i < maxRedirects; i++ {
		d := g.Evaluate(current)
		if d.Outcome != domain.OutcomeRedirect || d.Target == current {
			return current, d
		}
		current = d.Target
	}
	logger.Warn("Redirect chain from %s exceeded %d hops", path, maxRedirects)
	return current, g.Evaluate(current)
}

// Targets returns the configured redirect destinations.
func (g *RouteGate) Targets() domain.Targets {
	return g.targets
}
