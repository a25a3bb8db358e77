// Package seed installs the default fixture data for a fresh deployment.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sanadhub/sanad/internal/model"
	"github.com/sanadhub/sanad/internal/store"
)

// Apply populates the store with the default accounts, branches and partner
// organizations. It is a no-op when user accounts already exist, so running
// it on every startup is safe.
func Apply(ctx context.Context, st *store.Store, logger *slog.Logger) error {
	if len(st.Users()) > 0 {
		logger.DebugContext(ctx, "seed skipped, users already present")
		return nil
	}

	branches := []model.Branch{
		{Name: "Main Branch", City: "Amman", Phone: "+962-6-555-0101"},
		{Name: "North Branch", City: "Irbid", Phone: "+962-2-555-0202"},
	}
	for i, b := range branches {
		created, err := st.AddBranch(ctx, b)
		if err != nil {
			return fmt.Errorf("seed branch %q: %w", b.Name, err)
		}
		branches[i] = created
	}

	users := []model.User{
		{
			Username: "admin",
			Password: "admin123",
			FullName: "System Administrator",
			Role:     model.RoleAdmin,
			Status:   model.UserStatusActive,
		},
		{
			Username: "manager",
			Password: "manager123",
			FullName: "Branch Manager",
			Role:     model.RoleBranchManager,
			BranchID: branches[0].ID,
			Status:   model.UserStatusActive,
		},
		{
			Username: "staff",
			Password: "staff123",
			FullName: "Field Staff",
			Role:     model.RoleStaff,
			BranchID: branches[0].ID,
			Status:   model.UserStatusActive,
		},
		{
			Username: "approver",
			Password: "approver123",
			FullName: "Assistance Approver",
			Role:     model.RoleApprover,
			BranchID: branches[1].ID,
			Status:   model.UserStatusActive,
		},
	}
	for _, u := range users {
		if _, err := st.AddUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}

	orgs := []model.Organization{
		{Name: "Relief Works Foundation", Type: "donor", Email: "contact@reliefworks.example", ContactPerson: "Layla Odeh"},
		{Name: "Hope Charity Network", Type: "partner", Email: "info@hopecharity.example", ContactPerson: "Omar Saleh"},
	}
	for i, o := range orgs {
		created, err := st.AddOrganization(ctx, o)
		if err != nil {
			return fmt.Errorf("seed organization %q: %w", o.Name, err)
		}
		orgs[i] = created
	}

	projects := []model.Project{
		{
			Name:           "Winter Relief 2026",
			OrganizationID: orgs[0].ID,
			Budget:         50000,
			StartDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:         model.ProjectActive,
			Description:    "Heating fuel and blankets for registered families.",
		},
		{
			Name:           "School Supplies Drive",
			OrganizationID: orgs[1].ID,
			Budget:         12000,
			StartDate:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Status:         model.ProjectPlanned,
		},
	}
	for _, p := range projects {
		if _, err := st.AddProject(ctx, p); err != nil {
			return fmt.Errorf("seed project %q: %w", p.Name, err)
		}
	}

	logger.InfoContext(ctx, "seed data applied",
		slog.Int("users", len(users)),
		slog.Int("branches", len(branches)),
		slog.Int("organizations", len(orgs)),
		slog.Int("projects", len(projects)),
	)
	return nil
}
