package store

import (
	"context"

	"github.com/sanadhub/sanad/internal/model"
)

// AddOrganization creates an organization.
func (s *Store) AddOrganization(ctx context.Context, o model.Organization) (model.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = nextID(s.data.Organizations, func(x model.Organization) int64 { return x.ID })

	s.dispatch(ctx, Action{Type: ActionAdd, Entity: EntityOrganizations, Record: o})
	return o, nil
}

// OrganizationPatch is a partial update; nil fields are left unchanged.
type OrganizationPatch struct {
	Name          *string `json:"name,omitempty"`
	Type          *string `json:"type,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
}

func (p OrganizationPatch) applyTo(o model.Organization) model.Organization {
	if p.Name != nil {
		o.Name = *p.Name
	}
	if p.Type != nil {
		o.Type = *p.Type
	}
	if p.Phone != nil {
		o.Phone = *p.Phone
	}
	if p.Email != nil {
		o.Email = *p.Email
	}
	if p.Address != nil {
		o.Address = *p.Address
	}
	if p.ContactPerson != nil {
		o.ContactPerson = *p.ContactPerson
	}
	return o
}

// UpdateOrganization merges the patch over the record with the given id.
// Returns nil (no error) when the id is absent.
func (s *Store) UpdateOrganization(ctx context.Context, id int64, patch OrganizationPatch) (*model.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := findByID(s.data.Organizations, id, func(x model.Organization) int64 { return x.ID })
	if existing == nil {
		return nil, nil
	}

	updated := patch.applyTo(*existing)
	s.dispatch(ctx, Action{Type: ActionUpdate, Entity: EntityOrganizations, ID: id, Record: updated})
	return &updated, nil
}

// DeleteOrganization removes the record with the given id. Projects that
// reference it are orphaned.
func (s *Store) DeleteOrganization(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.data.Organizations, id, func(x model.Organization) int64 { return x.ID }) == nil {
		return false, nil
	}

	s.dispatch(ctx, Action{Type: ActionDelete, Entity: EntityOrganizations, ID: id})
	return true, nil
}

// Organizations returns the current collection snapshot.
func (s *Store) Organizations() []model.Organization {
	return s.Data().Organizations
}

// OrganizationByID returns the organization with the given id, or nil.
func (s *Store) OrganizationByID(id int64) *model.Organization {
	data := s.Data()
	return findByID(data.Organizations, id, func(x model.Organization) int64 { return x.ID })
}
