package driving

import "github.com/custodia-labs/storefront-cli/internal/core/domain"

// RouteGate decides whether the current identity may reach a navigation target.
type RouteGate interface {
	// Evaluate decides for path. Paths matching no route are allowed.
	Evaluate(path string) domain.Decision

	// Resolve follows redirects until a target is allowed or a placeholder is
	// required, returning the final path and decision.
	Resolve(path string) (string, domain.Decision)

	// Targets returns the configured redirect destinations.
	Targets() domain.Targets
}
