package store

import (
	"context"
	"time"

	"github.com/sanadhub/sanad/internal/model"
)

// AddUser creates a user account. The credential is stored as given; the
// auth package hashes passwords before accounts reach the store.
func (s *Store) AddUser(ctx context.Context, u model.User) (model.User, error) {
	if u.Username == "" {
		return model.User{}, ErrEmptyUsername
	}
	if !u.Role.IsValid() {
		return model.User{}, ErrInvalidRole
	}
	if u.Status == "" {
		u.Status = model.UserStatusActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = nextID(s.data.Users, func(x model.User) int64 { return x.ID })
	u.CreatedAt = time.Now().UTC()

	s.dispatch(ctx, Action{Type: ActionAdd, Entity: EntityUsers, Record: u})
	return u, nil
}

// UserPatch is a partial update; nil fields are left unchanged.
type UserPatch struct {
	Username *string           `json:"username,omitempty"`
	Password *string           `json:"password,omitempty"`
	FullName *string           `json:"full_name,omitempty"`
	Role     *model.Role       `json:"role,omitempty"`
	BranchID *int64            `json:"branch_id,omitempty"`
	Status   *model.UserStatus `json:"status,omitempty"`
}

func (p UserPatch) applyTo(u model.User) model.User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.BranchID != nil {
		u.BranchID = *p.BranchID
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	return u
}

// UpdateUser merges the patch over the record with the given id.
// Returns nil (no error) when the id is absent.
func (s *Store) UpdateUser(ctx context.Context, id int64, patch UserPatch) (*model.User, error) {
	if patch.Role != nil && !patch.Role.IsValid() {
		return nil, ErrInvalidRole
	}
	if patch.Username != nil && *patch.Username == "" {
		return nil, ErrEmptyUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := findByID(s.data.Users, id, func(x model.User) int64 { return x.ID })
	if existing == nil {
		return nil, nil
	}

	updated := patch.applyTo(*existing)
	s.dispatch(ctx, Action{Type: ActionUpdate, Entity: EntityUsers, ID: id, Record: updated})
	return &updated, nil
}

// DeleteUser removes the record with the given id.
func (s *Store) DeleteUser(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.data.Users, id, func(x model.User) int64 { return x.ID }) == nil {
		return false, nil
	}

	s.dispatch(ctx, Action{Type: ActionDelete, Entity: EntityUsers, ID: id})
	return true, nil
}

// Users returns the current collection snapshot.
func (s *Store) Users() []model.User {
	return s.Data().Users
}

// UserByID returns the user with the given id, or nil.
func (s *Store) UserByID(id int64) *model.User {
	data := s.Data()
	return findByID(data.Users, id, func(x model.User) int64 { return x.ID })
}

// UserByUsername returns the first user with the given username, or nil.
func (s *Store) UserByUsername(username string) *model.User {
	for _, u := range s.Data().Users {
		if u.Username == username {
			out := u
			return &out
		}
	}
	return nil
}

// UsersByBranch returns every user assigned to the branch.
func (s *Store) UsersByBranch(branchID int64) []model.User {
	return filter(s.Data().Users, func(u model.User) bool {
		return u.BranchID == branchID
	})
}
