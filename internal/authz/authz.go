// Package authz decides whether a user's role may reach a route.
//
// The gate is pure and stateless: it is evaluated per request and never
// cached. Failures are expressed as redirects, mirroring how the dashboard
// UI reacts, not as bare errors.
package authz

import (
	"slices"

	"github.com/sanadhub/sanad/internal/model"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Allow renders the route.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated caller to the login page.
	RedirectLogin
	// RedirectDashboard sends an authenticated but unauthorized caller to
	// the dashboard, the safe default.
	RedirectDashboard
)

// Redirect targets surfaced to the client.
const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Decide evaluates the gate for a user against a route's allowed roles.
// A nil user is unauthenticated. An empty allowed set admits every
// authenticated role.
func Decide(user *model.User, allowed []model.Role) Decision {
	if user == nil {
		return RedirectLogin
	}
	if len(allowed) == 0 {
		return Allow
	}
	if slices.Contains(allowed, user.Role) {
		return Allow
	}
	return RedirectDashboard
}

// Target returns the redirect path for a non-Allow decision, or "".
func (d Decision) Target() string {
	switch d {
	case RedirectLogin:
		return LoginPath
	case RedirectDashboard:
		return DashboardPath
	}
	return ""
}
