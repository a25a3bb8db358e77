package store

import (
	"context"
	"time"

	"github.com/sanadhub/sanad/internal/model"
)

// AddProject creates a project. Status defaults to planned.
func (s *Store) AddProject(ctx context.Context, p model.Project) (model.Project, error) {
	if p.Budget < 0 {
		return model.Project{}, ErrNegativeAmount
	}
	if p.Status == "" {
		p.Status = model.ProjectPlanned
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = nextID(s.data.Projects, func(x model.Project) int64 { return x.ID })

	s.dispatch(ctx, Action{Type: ActionAdd, Entity: EntityProjects, Record: p})
	return p, nil
}

// ProjectPatch is a partial update; nil fields are left unchanged.
type ProjectPatch struct {
	Name           *string              `json:"name,omitempty"`
	OrganizationID *int64               `json:"organization_id,omitempty"`
	Budget         *float64             `json:"budget,omitempty"`
	StartDate      *time.Time           `json:"start_date,omitempty"`
	EndDate        *time.Time           `json:"end_date,omitempty"`
	Status         *model.ProjectStatus `json:"status,omitempty"`
	Description    *string              `json:"description,omitempty"`
}

func (p ProjectPatch) applyTo(proj model.Project) model.Project {
	if p.Name != nil {
		proj.Name = *p.Name
	}
	if p.OrganizationID != nil {
		proj.OrganizationID = *p.OrganizationID
	}
	if p.Budget != nil {
		proj.Budget = *p.Budget
	}
	if p.StartDate != nil {
		proj.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		proj.EndDate = *p.EndDate
	}
	if p.Status != nil {
		proj.Status = *p.Status
	}
	if p.Description != nil {
		proj.Description = *p.Description
	}
	return proj
}

// UpdateProject merges the patch over the record with the given id.
// Returns nil (no error) when the id is absent.
func (s *Store) UpdateProject(ctx context.Context, id int64, patch ProjectPatch) (*model.Project, error) {
	if patch.Budget != nil && *patch.Budget < 0 {
		return nil, ErrNegativeAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := findByID(s.data.Projects, id, func(x model.Project) int64 { return x.ID })
	if existing == nil {
		return nil, nil
	}

	updated := patch.applyTo(*existing)
	s.dispatch(ctx, Action{Type: ActionUpdate, Entity: EntityProjects, ID: id, Record: updated})
	return &updated, nil
}

// DeleteProject removes the record with the given id.
func (s *Store) DeleteProject(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.data.Projects, id, func(x model.Project) int64 { return x.ID }) == nil {
		return false, nil
	}

	s.dispatch(ctx, Action{Type: ActionDelete, Entity: EntityProjects, ID: id})
	return true, nil
}

// Projects returns the current collection snapshot.
func (s *Store) Projects() []model.Project {
	return s.Data().Projects
}

// ProjectByID returns the project with the given id, or nil.
func (s *Store) ProjectByID(id int64) *model.Project {
	data := s.Data()
	return findByID(data.Projects, id, func(x model.Project) int64 { return x.ID })
}

// ProjectsByOrganization returns every project tied to the organization.
func (s *Store) ProjectsByOrganization(organizationID int64) []model.Project {
	return filter(s.Data().Projects, func(p model.Project) bool {
		return p.OrganizationID == organizationID
	})
}
