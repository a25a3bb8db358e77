package store

import (
	"context"
	"time"

	"github.com/sanadhub/sanad/internal/model"
)

// AddBeneficiary creates a beneficiary. The id and creation timestamp are
// synthesized here; whatever the caller set is overwritten.
func (s *Store) AddBeneficiary(ctx context.Context, b model.Beneficiary) (model.Beneficiary, error) {
	if b.Gender != "" && !b.Gender.IsValid() {
		return model.Beneficiary{}, ErrInvalidGender
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = nextID(s.data.Beneficiaries, func(x model.Beneficiary) int64 { return x.ID })
	b.CreatedAt = time.Now().UTC()

	s.dispatch(ctx, Action{Type: ActionAdd, Entity: EntityBeneficiaries, Record: b})
	return b, nil
}

// BeneficiaryPatch is a partial update; nil fields are left unchanged.
type BeneficiaryPatch struct {
	NationalID    *string              `json:"national_id,omitempty"`
	FirstName     *string              `json:"first_name,omitempty"`
	LastName      *string              `json:"last_name,omitempty"`
	Phone         *string              `json:"phone,omitempty"`
	Address       *string              `json:"address,omitempty"`
	Gender        *model.Gender        `json:"gender,omitempty"`
	Religion      *string              `json:"religion,omitempty"`
	MaritalStatus *model.MaritalStatus `json:"marital_status,omitempty"`
	HouseholdSize *int                 `json:"household_size,omitempty"`
	MonthlyIncome *float64             `json:"monthly_income,omitempty"`
}

func (p BeneficiaryPatch) applyTo(b model.Beneficiary) model.Beneficiary {
	if p.NationalID != nil {
		b.NationalID = *p.NationalID
	}
	if p.FirstName != nil {
		b.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		b.LastName = *p.LastName
	}
	if p.Phone != nil {
		b.Phone = *p.Phone
	}
	if p.Address != nil {
		b.Address = *p.Address
	}
	if p.Gender != nil {
		b.Gender = *p.Gender
	}
	if p.Religion != nil {
		b.Religion = *p.Religion
	}
	if p.MaritalStatus != nil {
		b.MaritalStatus = *p.MaritalStatus
	}
	if p.HouseholdSize != nil {
		b.HouseholdSize = *p.HouseholdSize
	}
	if p.MonthlyIncome != nil {
		b.MonthlyIncome = *p.MonthlyIncome
	}
	return b
}

// UpdateBeneficiary merges the patch over the record with the given id.
// Returns nil (no error) when the id is absent.
func (s *Store) UpdateBeneficiary(ctx context.Context, id int64, patch BeneficiaryPatch) (*model.Beneficiary, error) {
	if patch.Gender != nil && !patch.Gender.IsValid() {
		return nil, ErrInvalidGender
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := findByID(s.data.Beneficiaries, id, func(x model.Beneficiary) int64 { return x.ID })
	if existing == nil {
		return nil, nil
	}

	updated := patch.applyTo(*existing)
	s.dispatch(ctx, Action{Type: ActionUpdate, Entity: EntityBeneficiaries, ID: id, Record: updated})
	return &updated, nil
}

// DeleteBeneficiary removes the record with the given id. Assistances that
// reference it are orphaned, not cascaded; see DESIGN.md.
func (s *Store) DeleteBeneficiary(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.data.Beneficiaries, id, func(x model.Beneficiary) int64 { return x.ID }) == nil {
		return false, nil
	}

	s.dispatch(ctx, Action{Type: ActionDelete, Entity: EntityBeneficiaries, ID: id})
	return true, nil
}

// Beneficiaries returns the current collection snapshot.
func (s *Store) Beneficiaries() []model.Beneficiary {
	return s.Data().Beneficiaries
}

// BeneficiaryByID returns the beneficiary with the given id, or nil.
func (s *Store) BeneficiaryByID(id int64) *model.Beneficiary {
	data := s.Data()
	return findByID(data.Beneficiaries, id, func(x model.Beneficiary) int64 { return x.ID })
}

// BeneficiaryByNationalID returns the first beneficiary with the given
// national id, or nil. Uniqueness of NationalID is intended but not enforced.
func (s *Store) BeneficiaryByNationalID(nationalID string) *model.Beneficiary {
	for _, b := range s.Data().Beneficiaries {
		if b.NationalID == nationalID {
			out := b
			return &out
		}
	}
	return nil
}

// findByID returns a copy of the matching record, or nil.
func findByID[T any](items []T, id int64, idOf func(T) int64) *T {
	for _, item := range items {
		if idOf(item) == id {
			out := item
			return &out
		}
	}
	return nil
}
