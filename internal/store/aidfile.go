package store

import (
	"context"
	"time"

	"github.com/sanadhub/sanad/internal/model"
)

// AddAidFile creates an aid file.
func (s *Store) AddAidFile(ctx context.Context, f model.AidFile) (model.AidFile, error) {
	if f.TotalAmount < 0 {
		return model.AidFile{}, ErrNegativeAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = nextID(s.data.AidFiles, func(x model.AidFile) int64 { return x.ID })
	f.CreatedAt = time.Now().UTC()

	s.dispatch(ctx, Action{Type: ActionAdd, Entity: EntityAidFiles, Record: f})
	return f, nil
}

// AidFilePatch is a partial update; nil fields are left unchanged.
type AidFilePatch struct {
	Name            *string               `json:"name,omitempty"`
	Month           *string               `json:"month,omitempty"`
	Type            *model.AssistanceType `json:"type,omitempty"`
	AssistanceCount *int                  `json:"assistance_count,omitempty"`
	TotalAmount     *float64              `json:"total_amount,omitempty"`
	Notes           *string               `json:"notes,omitempty"`
}

func (p AidFilePatch) applyTo(f model.AidFile) model.AidFile {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Month != nil {
		f.Month = *p.Month
	}
	if p.Type != nil {
		f.Type = *p.Type
	}
	if p.AssistanceCount != nil {
		f.AssistanceCount = *p.AssistanceCount
	}
	if p.TotalAmount != nil {
		f.TotalAmount = *p.TotalAmount
	}
	if p.Notes != nil {
		f.Notes = *p.Notes
	}
	return f
}

// UpdateAidFile merges the patch over the record with the given id.
// Returns nil (no error) when the id is absent.
func (s *Store) UpdateAidFile(ctx context.Context, id int64, patch AidFilePatch) (*model.AidFile, error) {
	if patch.TotalAmount != nil && *patch.TotalAmount < 0 {
		return nil, ErrNegativeAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := findByID(s.data.AidFiles, id, func(x model.AidFile) int64 { return x.ID })
	if existing == nil {
		return nil, nil
	}

	updated := patch.applyTo(*existing)
	s.dispatch(ctx, Action{Type: ActionUpdate, Entity: EntityAidFiles, ID: id, Record: updated})
	return &updated, nil
}

// DeleteAidFile removes the record with the given id.
func (s *Store) DeleteAidFile(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.data.AidFiles, id, func(x model.AidFile) int64 { return x.ID }) == nil {
		return false, nil
	}

	s.dispatch(ctx, Action{Type: ActionDelete, Entity: EntityAidFiles, ID: id})
	return true, nil
}

// AidFiles returns the current collection snapshot.
func (s *Store) AidFiles() []model.AidFile {
	return s.Data().AidFiles
}

// AidFileByID returns the aid file with the given id, or nil.
func (s *Store) AidFileByID(id int64) *model.AidFile {
	data := s.Data()
	return findByID(data.AidFiles, id, func(x model.AidFile) int64 { return x.ID })
}
