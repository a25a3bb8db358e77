// Package testutil provides shared fixtures for handler and integration tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sanadhub/sanad/internal/kvstore"
	"github.com/sanadhub/sanad/internal/metrics"
	"github.com/sanadhub/sanad/internal/model"
	"github.com/sanadhub/sanad/internal/store"
)

// Logger returns a logger that discards all output.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewStore returns an empty store over in-memory storage.
func NewStore(t *testing.T) (*store.Store, *kvstore.Memory) {
	t.Helper()
	storage := kvstore.NewMemory()
	return store.New(storage, Logger(), metrics.NewInMemory()), storage
}

// SeededStore returns a store pre-populated with one user per role plus a
// branch, an organization, a project and a beneficiary. Every account's
// password equals its username.
func SeededStore(t *testing.T) (*store.Store, *kvstore.Memory) {
	t.Helper()
	ctx := context.Background()
	st, storage := NewStore(t)

	branch, err := st.AddBranch(ctx, model.Branch{Name: "Main Branch", City: "Amman"})
	if err != nil {
		t.Fatalf("seed branch: %v", err)
	}

	for _, role := range []model.Role{
		model.RoleAdmin, model.RoleBranchManager, model.RoleStaff,
		model.RoleApprover, model.RoleBeneficiary,
	} {
		u := model.User{
			Username: string(role),
			Password: string(role),
			FullName: "Test " + string(role),
			Role:     role,
			BranchID: branch.ID,
			Status:   model.UserStatusActive,
		}
		if _, err := st.AddUser(ctx, u); err != nil {
			t.Fatalf("seed user %q: %v", role, err)
		}
	}

	org, err := st.AddOrganization(ctx, model.Organization{Name: "Test Org"})
	if err != nil {
		t.Fatalf("seed organization: %v", err)
	}
	if _, err := st.AddProject(ctx, model.Project{
		Name:           "Test Project",
		OrganizationID: org.ID,
		Budget:         1000,
		Status:         model.ProjectActive,
	}); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	if _, err := st.AddBeneficiary(ctx, model.Beneficiary{
		FirstName:  "Amal",
		LastName:   "Hassan",
		NationalID: "1987654321",
	}); err != nil {
		t.Fatalf("seed beneficiary: %v", err)
	}
	return st, storage
}
