package store

import (
	"context"
	"time"

	"github.com/sanadhub/sanad/internal/model"
)

// AddAssistance creates an assistance record. Status defaults to pending and
// the date defaults to now when unset. BeneficiaryID is not checked against
// the beneficiaries collection; referential integrity is not enforced.
func (s *Store) AddAssistance(ctx context.Context, a model.Assistance) (model.Assistance, error) {
	if a.Amount < 0 {
		return model.Assistance{}, ErrNegativeAmount
	}
	if a.Status == "" {
		a.Status = model.AssistancePending
	}
	if !a.Status.IsValid() {
		return model.Assistance{}, ErrInvalidStatus
	}
	if a.PaymentMethod != "" && !a.PaymentMethod.IsValid() {
		return model.Assistance{}, ErrInvalidPaymentMethod
	}
	if a.Date.IsZero() {
		a.Date = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = nextID(s.data.Assistances, func(x model.Assistance) int64 { return x.ID })

	s.dispatch(ctx, Action{Type: ActionAdd, Entity: EntityAssistances, Record: a})
	return a, nil
}

// AssistancePatch is a partial update; nil fields are left unchanged.
type AssistancePatch struct {
	BeneficiaryID *int64                  `json:"beneficiary_id,omitempty"`
	Type          *model.AssistanceType   `json:"type,omitempty"`
	Amount        *float64                `json:"amount,omitempty"`
	PaymentMethod *model.PaymentMethod    `json:"payment_method,omitempty"`
	Status        *model.AssistanceStatus `json:"status,omitempty"`
	Date          *time.Time              `json:"date,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
}

func (p AssistancePatch) applyTo(a model.Assistance) model.Assistance {
	if p.BeneficiaryID != nil {
		a.BeneficiaryID = *p.BeneficiaryID
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Amount != nil {
		a.Amount = *p.Amount
	}
	if p.PaymentMethod != nil {
		a.PaymentMethod = *p.PaymentMethod
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	return a
}

// UpdateAssistance merges the patch over the record with the given id.
// Returns nil (no error) when the id is absent. Status changes must follow
// the workflow transitions; violations return ErrInvalidStatusTransition.
func (s *Store) UpdateAssistance(ctx context.Context, id int64, patch AssistancePatch) (*model.Assistance, error) {
	if patch.Amount != nil && *patch.Amount < 0 {
		return nil, ErrNegativeAmount
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if patch.PaymentMethod != nil && !patch.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := findByID(s.data.Assistances, id, func(x model.Assistance) int64 { return x.ID })
	if existing == nil {
		return nil, nil
	}

	if patch.Status != nil && !existing.Status.CanTransitionTo(*patch.Status) {
		return nil, ErrInvalidStatusTransition
	}

	updated := patch.applyTo(*existing)
	s.dispatch(ctx, Action{Type: ActionUpdate, Entity: EntityAssistances, ID: id, Record: updated})
	return &updated, nil
}

// DeleteAssistance removes the record with the given id.
func (s *Store) DeleteAssistance(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if findByID(s.data.Assistances, id, func(x model.Assistance) int64 { return x.ID }) == nil {
		return false, nil
	}

	s.dispatch(ctx, Action{Type: ActionDelete, Entity: EntityAssistances, ID: id})
	return true, nil
}

// Assistances returns the current collection snapshot.
func (s *Store) Assistances() []model.Assistance {
	return s.Data().Assistances
}

// AssistanceByID returns the assistance with the given id, or nil.
func (s *Store) AssistanceByID(id int64) *model.Assistance {
	data := s.Data()
	return findByID(data.Assistances, id, func(x model.Assistance) int64 { return x.ID })
}

// AssistancesByBeneficiary returns every assistance tied to the beneficiary.
func (s *Store) AssistancesByBeneficiary(beneficiaryID int64) []model.Assistance {
	return filter(s.Data().Assistances, func(a model.Assistance) bool {
		return a.BeneficiaryID == beneficiaryID
	})
}

// AssistancesByStatus returns every assistance in the given status.
func (s *Store) AssistancesByStatus(status model.AssistanceStatus) []model.Assistance {
	return filter(s.Data().Assistances, func(a model.Assistance) bool {
		return a.Status == status
	})
}

// AssistancesByType returns every assistance of the given type.
func (s *Store) AssistancesByType(t model.AssistanceType) []model.Assistance {
	return filter(s.Data().Assistances, func(a model.Assistance) bool {
		return a.Type == t
	})
}

// filter returns the records matching keep, in collection order.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
