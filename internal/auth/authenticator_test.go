package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sanadhub/sanad/internal/kvstore"
	"github.com/sanadhub/sanad/internal/model"
)

// userList is a static UserSource for tests.
type userList []model.User

func (l userList) Users() []model.User { return l }

func (l userList) UserByID(id int64) *model.User {
	for _, u := range l {
		if u.ID == id {
			out := u
			return &out
		}
	}
	return nil
}

func newAuthenticator(users userList, storage kvstore.Store) *Authenticator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(users, storage, logger, nil)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	a := newAuthenticator(userList{
		{ID: 1, Username: "admin", Password: "admin123", Role: model.RoleAdmin, Status: model.UserStatusActive},
	}, storage)

	session, ok := a.Login(ctx, "admin", "admin123")
	if !ok {
		t.Fatal("expected login to succeed")
	}
	if session.Token == "" || session.UserID != 1 {
		t.Errorf("unexpected session: %+v", session)
	}
	if session.User.Password != "" {
		t.Error("session user must not carry the credential")
	}

	if user := a.UserForToken(session.Token); user == nil || user.Username != "admin" {
		t.Errorf("UserForToken = %+v", user)
	}

	// The current user is persisted for session restore.
	if current := a.CurrentUser(ctx); current == nil || current.Username != "admin" {
		t.Errorf("CurrentUser = %+v", current)
	}
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()
	users := userList{
		{ID: 1, Username: "admin", Password: "admin123", Role: model.RoleAdmin, Status: model.UserStatusActive},
		{ID: 2, Username: "dormant", Password: "dormant1", Role: model.RoleStaff, Status: model.UserStatusInactive},
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "admin123"},
		{"wrong password", "admin", "wrong"},
		{"inactive user", "dormant", "dormant1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAuthenticator(users, kvstore.NewMemory())

			session, ok := a.Login(ctx, tt.username, tt.password)
			if ok || session != nil {
				t.Errorf("expected login to fail, got %+v", session)
			}
		})
	}
}

func TestLogin_HashedCredential(t *testing.T) {
	ctx := context.Background()

	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	a := newAuthenticator(userList{
		{ID: 1, Username: "sara", Password: hash, Role: model.RoleStaff, Status: model.UserStatusActive},
	}, kvstore.NewMemory())

	if _, ok := a.Login(ctx, "sara", "s3cret!"); !ok {
		t.Error("expected login with hashed credential to succeed")
	}
	if _, ok := a.Login(ctx, "sara", hash); ok {
		t.Error("the stored hash itself must not work as a password")
	}
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	a := newAuthenticator(userList{
		{ID: 1, Username: "admin", Password: "admin123", Role: model.RoleAdmin, Status: model.UserStatusActive},
	}, storage)

	session, _ := a.Login(ctx, "admin", "admin123")

	a.Logout(ctx, session.Token)
	if user := a.UserForToken(session.Token); user != nil {
		t.Errorf("expected token to be invalid after logout, got %+v", user)
	}
	if current := a.CurrentUser(ctx); current != nil {
		t.Errorf("expected current user to be cleared, got %+v", current)
	}

	// Unknown token logout is a no-op.
	a.Logout(ctx, "st_unknown")
}

func TestRestore_ReloadsSessions(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	users := userList{
		{ID: 1, Username: "admin", Password: "admin123", Role: model.RoleAdmin, Status: model.UserStatusActive},
	}

	first := newAuthenticator(users, storage)
	session, _ := first.Login(ctx, "admin", "admin123")

	// A fresh authenticator over the same storage accepts the old token.
	second := newAuthenticator(users, storage)
	second.Restore(ctx)

	if user := second.UserForToken(session.Token); user == nil || user.ID != 1 {
		t.Errorf("expected restored session to resolve, got %+v", user)
	}
}

func TestUserForToken_InactiveUser(t *testing.T) {
	ctx := context.Background()
	users := userList{
		{ID: 1, Username: "admin", Password: "admin123", Role: model.RoleAdmin, Status: model.UserStatusActive},
	}
	a := newAuthenticator(users, kvstore.NewMemory())
	session, _ := a.Login(ctx, "admin", "admin123")

	// Deactivate the account behind the session.
	a.users = userList{
		{ID: 1, Username: "admin", Password: "admin123", Role: model.RoleAdmin, Status: model.UserStatusInactive},
	}

	if user := a.UserForToken(session.Token); user != nil {
		t.Errorf("expected nil for inactive user, got %+v", user)
	}
}

func TestCredentialMatches(t *testing.T) {
	hash, err := HashPassword("pass1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	tests := []struct {
		name     string
		password string
		stored   string
		want     bool
	}{
		{"plaintext match", "admin123", "admin123", true},
		{"plaintext mismatch", "admin124", "admin123", false},
		{"hash match", "pass1", hash, true},
		{"hash mismatch", "pass2", hash, false},
		{"malformed hash", "pass1", "$argon2id$broken", false},
		{"empty stored", "x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CredentialMatches(tt.password, tt.stored); got != tt.want {
				t.Errorf("CredentialMatches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil || !ok {
		t.Errorf("VerifyPassword = (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil || ok {
		t.Errorf("VerifyPassword wrong password = (%v, %v), want (false, nil)", ok, err)
	}
}
