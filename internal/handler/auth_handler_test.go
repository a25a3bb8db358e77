package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sanadhub/sanad/internal/handler/dto"
	"github.com/sanadhub/sanad/internal/model"
)

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	rec := api.doJSON(t, http.MethodPost, "/api/v1/auth/login", "",
		dto.LoginRequest{Username: "admin", Password: "admin"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if resp.User.Username != "admin" {
		t.Errorf("user = %q, want admin", resp.User.Username)
	}
	if resp.User.Role != model.RoleAdmin {
		t.Errorf("role = %q, want admin", resp.User.Role)
	}
}

func TestLogin_Failures(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		body   dto.LoginRequest
		status int
		code   string
	}{
		{"wrong password", dto.LoginRequest{Username: "admin", Password: "nope"}, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"unknown user", dto.LoginRequest{Username: "ghost", Password: "x"}, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"missing password", dto.LoginRequest{Username: "admin"}, http.StatusBadRequest, "MISSING_CREDENTIALS"},
		{"missing username", dto.LoginRequest{Password: "admin"}, http.StatusBadRequest, "MISSING_CREDENTIALS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if code := errorCode(t, rec); code != tt.code {
				t.Errorf("code = %s, want %s", code, tt.code)
			}
		})
	}
}

func TestMe(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, model.RoleStaff)

	rec := api.doJSON(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp dto.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Username != string(model.RoleStaff) {
		t.Errorf("username = %q, want %q", resp.Username, model.RoleStaff)
	}
}

func TestLogout(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, model.RoleAdmin)

	rec := api.doJSON(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}

	// Token is dead afterwards
	rec = api.doJSON(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 after logout, got %d", rec.Code)
	}
}
