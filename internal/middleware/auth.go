package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sanadhub/sanad/internal/auth"
	"github.com/sanadhub/sanad/internal/authz"
)

// Auth returns a middleware that resolves the bearer session token and
// injects the authenticated user into the request context. Requests without
// a valid session get the login redirect envelope.
func Auth(authenticator *auth.Authenticator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				logger.Warn("authentication failed",
					slog.String("reason", "missing_token"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeGateError(w, http.StatusUnauthorized, "UNAUTHORIZED",
					"Authentication required", authz.LoginPath)
				return
			}

			user := authenticator.UserForToken(token)
			if user == nil {
				logger.Warn("authentication failed",
					slog.String("reason", "invalid_token"),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeGateError(w, http.StatusUnauthorized, "UNAUTHORIZED",
					"Authentication required", authz.LoginPath)
				return
			}

			ctx := auth.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken pulls the session token from the Authorization header.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// gateErrorResponse is the envelope for authn/authz failures. The redirect
// field tells the dashboard where to send the user.
type gateErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

// writeGateError writes an authn/authz error with its redirect target.
func writeGateError(w http.ResponseWriter, status int, code, message, redirect string) {
	var resp gateErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Redirect = redirect

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
