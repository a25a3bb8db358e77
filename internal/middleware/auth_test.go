package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sanadhub/sanad/internal/auth"
	"github.com/sanadhub/sanad/internal/kvstore"
	"github.com/sanadhub/sanad/internal/model"
)

// staticUsers is a fixed UserSource for middleware tests.
type staticUsers []model.User

func (l staticUsers) Users() []model.User { return l }

func (l staticUsers) UserByID(id int64) *model.User {
	for _, u := range l {
		if u.ID == id {
			out := u
			return &out
		}
	}
	return nil
}

func testAuthenticator(t *testing.T) (*auth.Authenticator, string) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := staticUsers{
		{ID: 1, Username: "sara", Password: "pass1", Role: model.RoleStaff, Status: model.UserStatusActive},
	}
	a := auth.New(users, kvstore.NewMemory(), logger, nil)

	session, ok := a.Login(context.Background(), "sara", "pass1")
	if !ok {
		t.Fatal("login failed in test setup")
	}
	return a, session.Token
}

// okHandler echoes the authenticated username.
func okHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := auth.UserFromContext(r.Context())
		if user == nil {
			t.Error("expected user in context")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(user.Username))
	})
}

func decodeGateError(t *testing.T, rec *httptest.ResponseRecorder) gateErrorResponse {
	t.Helper()
	var resp gateErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}

func TestAuth_ValidToken(t *testing.T) {
	authenticator, token := testAuthenticator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := Auth(authenticator, logger)(okHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/beneficiaries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "sara" {
		t.Errorf("body = %q, want sara", rec.Body.String())
	}
}

func TestAuth_MissingOrInvalidToken(t *testing.T) {
	authenticator, _ := testAuthenticator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := Auth(authenticator, logger)(okHandler(t))

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"unknown token", "Bearer st_bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/beneficiaries", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			resp := decodeGateError(t, rec)
			if resp.Redirect != "/login" {
				t.Errorf("redirect = %q, want /login", resp.Redirect)
			}
		})
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	staff := &model.User{ID: 1, Username: "sara", Role: model.RoleStaff}

	handler := RequireRoles(model.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req = req.WithContext(auth.ContextWithUser(req.Context(), staff))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	resp := decodeGateError(t, rec)
	if resp.Redirect != "/dashboard" {
		t.Errorf("redirect = %q, want /dashboard", resp.Redirect)
	}
}

func TestRequireRoles_Allowed(t *testing.T) {
	staff := &model.User{ID: 1, Username: "sara", Role: model.RoleStaff}

	handler := RequireRoles(model.RoleAdmin, model.RoleStaff)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/beneficiaries", nil)
	req = req.WithContext(auth.ContextWithUser(req.Context(), staff))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRoles_Unauthenticated(t *testing.T) {
	handler := RequireRoles(model.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	resp := decodeGateError(t, rec)
	if resp.Redirect != "/login" {
		t.Errorf("redirect = %q, want /login", resp.Redirect)
	}
}
