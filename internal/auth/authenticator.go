package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sanadhub/sanad/internal/kvstore"
	"github.com/sanadhub/sanad/internal/metrics"
	"github.com/sanadhub/sanad/internal/model"
)

// Storage keys owned by the authenticator.
const (
	// KeyCurrentUser mirrors the most recent successful login, matching the
	// dashboard's persisted session layout.
	KeyCurrentUser = "currentUser"
	// KeySessions persists the bearer-token session table across restarts.
	KeySessions = "sessions"
)

// UserSource supplies the user list the authenticator validates against.
// The domain store satisfies this.
type UserSource interface {
	Users() []model.User
	UserByID(id int64) *model.User
}

// Session is an authenticated login.
type Session struct {
	Token     string     `json:"token"`
	UserID    int64      `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	User      model.User `json:"user"`
}

// Authenticator validates credentials and tracks live sessions.
// Sessions have no expiry and no multi-device invalidation.
type Authenticator struct {
	users   UserSource
	storage kvstore.Store
	logger  *slog.Logger
	metrics metrics.Recorder

	mu       sync.RWMutex
	sessions map[string]int64 // token -> user id
}

// New creates an Authenticator over the given user source and storage.
func New(users UserSource, storage kvstore.Store, logger *slog.Logger, recorder metrics.Recorder) *Authenticator {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Authenticator{
		users:    users,
		storage:  storage,
		logger:   logger.With("component", "auth"),
		metrics:  recorder,
		sessions: make(map[string]int64),
	}
}

// Restore reloads the persisted session table. Call once at startup, after
// the domain store has hydrated.
func (a *Authenticator) Restore(ctx context.Context) {
	sessions := kvstore.Get(ctx, a.storage, KeySessions, map[string]int64{})

	a.mu.Lock()
	a.sessions = sessions
	a.mu.Unlock()

	if len(sessions) > 0 {
		a.logger.Info("sessions restored", "count", len(sessions))
	}
}

// Login validates the credentials with a linear scan over the user list.
// A match additionally requires an active account. On success it records a
// session and persists the current user; on any failure it returns
// (nil, false) with no detail about which check failed.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*Session, bool) {
	for _, u := range a.users.Users() {
		if u.Username != username {
			continue
		}
		if !CredentialMatches(password, u.Password) {
			continue
		}
		if !u.IsActive() {
			continue
		}

		session := &Session{
			Token:     "st_" + ulid.Make().String(),
			UserID:    u.ID,
			CreatedAt: time.Now().UTC(),
			User:      u.Redacted(),
		}

		a.mu.Lock()
		a.sessions[session.Token] = u.ID
		a.persistSessionsLocked(ctx)
		a.mu.Unlock()

		kvstore.Put(ctx, a.storage, KeyCurrentUser, u.Redacted())

		a.metrics.IncLogin("success")
		a.logger.Info("login successful", "username", username, "role", u.Role)
		return session, true
	}

	a.metrics.IncLogin("failure")
	a.logger.Warn("login failed", "username", username)
	return nil, false
}

// Logout drops the session and clears the persisted current user.
// Logging out an unknown token is a no-op.
func (a *Authenticator) Logout(ctx context.Context, token string) {
	a.mu.Lock()
	_, ok := a.sessions[token]
	if ok {
		delete(a.sessions, token)
		a.persistSessionsLocked(ctx)
	}
	a.mu.Unlock()

	if ok {
		_ = a.storage.Remove(ctx, KeyCurrentUser)
	}
}

// UserForToken resolves a bearer token to its user. Returns nil for unknown
// tokens and for sessions whose user no longer exists or is inactive.
func (a *Authenticator) UserForToken(token string) *model.User {
	a.mu.RLock()
	userID, ok := a.sessions[token]
	a.mu.RUnlock()
	if !ok {
		return nil
	}

	user := a.users.UserByID(userID)
	if user == nil || !user.IsActive() {
		return nil
	}
	return user
}

// CurrentUser returns the persisted current user, if any. This mirrors the
// dashboard's session-restore behavior on startup.
func (a *Authenticator) CurrentUser(ctx context.Context) *model.User {
	user := kvstore.Get[*model.User](ctx, a.storage, KeyCurrentUser, nil)
	return user
}

// persistSessionsLocked mirrors the session table. Must hold a.mu.
func (a *Authenticator) persistSessionsLocked(ctx context.Context) {
	kvstore.Put(ctx, a.storage, KeySessions, a.sessions)
}
