package store

import (
	"context"

	"github.com/sanadhub/sanad/internal/model"
)

// AddBranch creates a branch. ManagerID is not checked against the users
// collection.
func (s *Store) AddBranch(ctx context.Context, b model.Branch) (model.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = nextID(s.data.Branches, func(x model.Branch) int64 { return x.ID })

	s.dispatch(ctx, Action{Type: ActionAdd, Entity: EntityBranches, Record: b})
	return b, nil
}

// BranchPatch is a partial update; nil fields are left unchanged.
type BranchPatch struct {
	Name      *string `json:"name,omitempty"`
	City      *string `json:"city,omitempty"`
	Address   *string `json:"address,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	ManagerID *int64  `json:"manager_id,omitempty"`
}

func (p BranchPatch) applyTo(b model.Branch) model.Branch {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.City != nil {
		b.City = *p.City
	}
	if p.Address != nil {
		b.Address = *p.Address
	}
	if p.Phone != nil {
		b.Phone = *p.Phone
	}
	if p.ManagerID != nil {
		b.ManagerID = *p.ManagerID
	}
	return b
}

// UpdateBranch merges the patch over the record with the given id.
// Returns nil (no error) when the id is absent.
func (s *Store) UpdateBranch(ctx context.Context, id int64, patch BranchPatch) (*model.Branch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := findByID(s.data.Branches, id, func(x model.Branch) int64 { return x.ID })
	if existing == nil {
		return nil, nil
	}

	updated := patch.applyTo(*existing)
	s.dispatch(ctx, Action{Type: ActionUpdate, Entity: EntityBranches, ID: id, Record: updated})
	return &updated, nil
}

// DeleteBranch removes the record with the given id. Users assigned to the
// branch keep their stale branch id.
func (s *Store) DeleteBranch(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.data.Branches, id, func(x model.Branch) int64 { return x.ID }) == nil {
		return false, nil
	}

	s.dispatch(ctx, Action{Type: ActionDelete, Entity: EntityBranches, ID: id})
	return true, nil
}

// Branches returns the current collection snapshot.
func (s *Store) Branches() []model.Branch {
	return s.Data().Branches
}

// BranchByID returns the branch with the given id, or nil.
func (s *Store) BranchByID(id int64) *model.Branch {
	data := s.Data()
	return findByID(data.Branches, id, func(x model.Branch) int64 { return x.ID })
}
