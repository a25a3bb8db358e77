package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sanadhub/sanad/internal/kvstore"
	"github.com/sanadhub/sanad/internal/model"
)

func newTestStore(t *testing.T) (*Store, *kvstore.Memory) {
	t.Helper()
	storage := kvstore.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(storage, logger, nil)
	s.Hydrate(context.Background())
	return s, storage
}

func TestAddBeneficiary_IDAssignment(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	first, err := s.AddBeneficiary(ctx, model.Beneficiary{FirstName: "Amal"})
	if err != nil {
		t.Fatalf("AddBeneficiary: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first id = %d, want 1", first.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	second, _ := s.AddBeneficiary(ctx, model.Beneficiary{FirstName: "Basim"})
	if second.ID != 2 {
		t.Errorf("second id = %d, want 2", second.ID)
	}

	// Deleting the highest id frees it for reuse: ids are max+1, not a sequence.
	if ok, _ := s.DeleteBeneficiary(ctx, 2); !ok {
		t.Fatal("expected delete to succeed")
	}
	third, _ := s.AddBeneficiary(ctx, model.Beneficiary{FirstName: "Dalia"})
	if third.ID != 2 {
		t.Errorf("id after delete = %d, want 2", third.ID)
	}
}

func TestUpdateBeneficiary_EmptyPatchIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created, _ := s.AddBeneficiary(ctx, model.Beneficiary{
		FirstName: "Amal", NationalID: "29001011234567", HouseholdSize: 4,
	})

	updated, err := s.UpdateBeneficiary(ctx, created.ID, BeneficiaryPatch{})
	if err != nil {
		t.Fatalf("UpdateBeneficiary: %v", err)
	}
	if updated == nil {
		t.Fatal("expected record, got nil")
	}
	if *updated != created {
		t.Errorf("empty patch changed the record: got %+v, want %+v", *updated, created)
	}
}

func TestUpdateBeneficiary_MissingID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddBeneficiary(ctx, model.Beneficiary{FirstName: "Amal"})

	name := "Changed"
	updated, err := s.UpdateBeneficiary(ctx, 999, BeneficiaryPatch{FirstName: &name})
	if err != nil {
		t.Fatalf("UpdateBeneficiary: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil for missing id, got %+v", updated)
	}
	if len(s.Beneficiaries()) != 1 || s.Beneficiaries()[0].FirstName != "Amal" {
		t.Error("expected collection to be unchanged")
	}
}

func TestDeleteBeneficiary_MissingID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddBeneficiary(ctx, model.Beneficiary{FirstName: "Amal"})

	ok, err := s.DeleteBeneficiary(ctx, 999)
	if err != nil {
		t.Fatalf("DeleteBeneficiary: %v", err)
	}
	if ok {
		t.Error("expected false for missing id")
	}
	if len(s.Beneficiaries()) != 1 {
		t.Error("expected collection to be unchanged")
	}
}

func TestUpdateBeneficiary_PartialMerge(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	created, _ := s.AddBeneficiary(ctx, model.Beneficiary{
		FirstName: "Amal", LastName: "Hassan", HouseholdSize: 4,
	})

	size := 6
	updated, err := s.UpdateBeneficiary(ctx, created.ID, BeneficiaryPatch{HouseholdSize: &size})
	if err != nil {
		t.Fatalf("UpdateBeneficiary: %v", err)
	}
	if updated.HouseholdSize != 6 {
		t.Errorf("HouseholdSize = %d, want 6", updated.HouseholdSize)
	}
	if updated.FirstName != "Amal" || updated.LastName != "Hassan" {
		t.Error("expected untouched fields to be preserved")
	}
}

func TestAddAssistance_DefaultsAndValidation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	a, err := s.AddAssistance(ctx, model.Assistance{BeneficiaryID: 1, Amount: 100})
	if err != nil {
		t.Fatalf("AddAssistance: %v", err)
	}
	if a.Status != model.AssistancePending {
		t.Errorf("default status = %q, want pending", a.Status)
	}
	if a.Date.IsZero() {
		t.Error("expected date to default to now")
	}

	if _, err := s.AddAssistance(ctx, model.Assistance{Amount: -5}); err != ErrNegativeAmount {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
	if _, err := s.AddAssistance(ctx, model.Assistance{Status: "bogus"}); err != ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateAssistance_EnforcesStatusTransitions(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	a, _ := s.AddAssistance(ctx, model.Assistance{BeneficiaryID: 1, Amount: 100})

	paid := model.AssistancePaid
	if _, err := s.UpdateAssistance(ctx, a.ID, AssistancePatch{Status: &paid}); err != ErrInvalidStatusTransition {
		t.Errorf("pending -> paid: expected ErrInvalidStatusTransition, got %v", err)
	}

	review := model.AssistanceUnderReview
	if _, err := s.UpdateAssistance(ctx, a.ID, AssistancePatch{Status: &review}); err != nil {
		t.Fatalf("pending -> under_review: %v", err)
	}
	approved := model.AssistanceApproved
	if _, err := s.UpdateAssistance(ctx, a.ID, AssistancePatch{Status: &approved}); err != nil {
		t.Fatalf("under_review -> approved: %v", err)
	}
	updated, err := s.UpdateAssistance(ctx, a.ID, AssistancePatch{Status: &paid})
	if err != nil {
		t.Fatalf("approved -> paid: %v", err)
	}
	if updated.Status != model.AssistancePaid {
		t.Errorf("status = %q, want paid", updated.Status)
	}
}

func TestDeleteBeneficiary_OrphansAssistances(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	b, _ := s.AddBeneficiary(ctx, model.Beneficiary{FirstName: "Amal"})
	s.AddAssistance(ctx, model.Assistance{BeneficiaryID: b.ID, Amount: 100})

	if ok, _ := s.DeleteBeneficiary(ctx, b.ID); !ok {
		t.Fatal("expected delete to succeed")
	}

	orphans := s.AssistancesByBeneficiary(b.ID)
	if len(orphans) != 1 {
		t.Errorf("expected assistance to be orphaned, got %d records", len(orphans))
	}
}

func TestStore_MirrorsCollectionsToStorage(t *testing.T) {
	ctx := context.Background()
	s, storage := newTestStore(t)

	created, _ := s.AddBeneficiary(ctx, model.Beneficiary{FirstName: "Amal"})

	persisted := kvstore.Get(ctx, storage, KeyBeneficiaries, []model.Beneficiary{})
	if len(persisted) != 1 || persisted[0].ID != created.ID {
		t.Fatalf("expected created record in storage, got %+v", persisted)
	}

	s.DeleteBeneficiary(ctx, created.ID)
	persisted = kvstore.Get(ctx, storage, KeyBeneficiaries, []model.Beneficiary{})
	if len(persisted) != 0 {
		t.Errorf("expected storage to mirror the delete, got %+v", persisted)
	}
}

func TestHydrate_RestoresPersistedState(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first := New(storage, logger, nil)
	first.Hydrate(ctx)
	created, _ := first.AddBeneficiary(ctx, model.Beneficiary{FirstName: "Amal", NationalID: "123"})
	first.AddAssistance(ctx, model.Assistance{BeneficiaryID: created.ID, Amount: 75})

	// A fresh store over the same storage sees the same data.
	second := New(storage, logger, nil)
	second.Hydrate(ctx)

	if got := second.BeneficiaryByNationalID("123"); got == nil || got.ID != created.ID {
		t.Errorf("expected hydrated beneficiary, got %+v", got)
	}
	if len(second.Assistances()) != 1 {
		t.Errorf("expected 1 hydrated assistance, got %d", len(second.Assistances()))
	}
}

func TestStore_Lookups(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	b, _ := s.AddBeneficiary(ctx, model.Beneficiary{FirstName: "Amal", NationalID: "29001011234567"})
	s.AddAssistance(ctx, model.Assistance{BeneficiaryID: b.ID, Type: "food", Amount: 50})
	s.AddAssistance(ctx, model.Assistance{BeneficiaryID: b.ID, Type: "medical", Amount: 80})
	s.AddAssistance(ctx, model.Assistance{BeneficiaryID: 999, Type: "food", Amount: 10})

	if got := s.AssistancesByBeneficiary(b.ID); len(got) != 2 {
		t.Errorf("AssistancesByBeneficiary = %d records, want 2", len(got))
	}
	if got := s.AssistancesByType("food"); len(got) != 2 {
		t.Errorf("AssistancesByType = %d records, want 2", len(got))
	}
	if got := s.AssistancesByStatus(model.AssistancePending); len(got) != 3 {
		t.Errorf("AssistancesByStatus = %d records, want 3", len(got))
	}
	if got := s.BeneficiaryByNationalID("nope"); got != nil {
		t.Errorf("expected nil for unknown national id, got %+v", got)
	}
}

func TestSummary_MemoizedOnRevision(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddAssistance(ctx, model.Assistance{Amount: 100, Status: model.AssistancePaid, BeneficiaryID: 1})

	first := s.Summary()
	if first.TotalPaidAmount != 100 {
		t.Errorf("TotalPaidAmount = %v, want 100", first.TotalPaidAmount)
	}

	// Unchanged state returns the cached value.
	rev := s.Revision()
	_ = s.Summary()
	if s.Revision() != rev {
		t.Error("Summary must not bump the revision")
	}

	s.AddAssistance(ctx, model.Assistance{Amount: 300, Status: model.AssistancePaid, BeneficiaryID: 1})
	second := s.Summary()
	if second.TotalPaidAmount != 400 {
		t.Errorf("TotalPaidAmount after mutation = %v, want 400", second.TotalPaidAmount)
	}
	if second.AverageAssistanceAmount != 200 {
		t.Errorf("AverageAssistanceAmount = %v, want 200", second.AverageAssistanceAmount)
	}
}

func TestAddUser_Validation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if _, err := s.AddUser(ctx, model.User{Role: model.RoleStaff}); err != ErrEmptyUsername {
		t.Errorf("expected ErrEmptyUsername, got %v", err)
	}
	if _, err := s.AddUser(ctx, model.User{Username: "x", Role: "boss"}); err != ErrInvalidRole {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}

	u, err := s.AddUser(ctx, model.User{Username: "sara", Role: model.RoleStaff})
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	if u.Status != model.UserStatusActive {
		t.Errorf("default status = %q, want active", u.Status)
	}
	if got := s.UserByUsername("sara"); got == nil || got.ID != u.ID {
		t.Errorf("UserByUsername = %+v", got)
	}
}
