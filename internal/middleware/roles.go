package middleware

import (
	"net/http"

	"github.com/sanadhub/sanad/internal/auth"
	"github.com/sanadhub/sanad/internal/authz"
	"github.com/sanadhub/sanad/internal/model"
)

// RequireRoles returns middleware that enforces the authorization gate for
// a route. Must be applied after Auth middleware. An empty role set admits
// every authenticated user.
func RequireRoles(allowed ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := auth.UserFromContext(r.Context())

			switch decision := authz.Decide(user, allowed); decision {
			case authz.Allow:
				next.ServeHTTP(w, r)
			case authz.RedirectLogin:
				writeGateError(w, http.StatusUnauthorized, "UNAUTHORIZED",
					"Authentication required", decision.Target())
			default:
				writeGateError(w, http.StatusForbidden, "FORBIDDEN",
					"Insufficient permissions for this page", decision.Target())
			}
		})
	}
}

// RequireRoute enforces the gate using the declared route table entry for
// the given dashboard path.
func RequireRoute(path string) func(http.Handler) http.Handler {
	return RequireRoles(authz.RolesForRoute(path)...)
}
