package authz

import "github.com/sanadhub/sanad/internal/model"

// Role sets reused across the route table. The dashboard itself is open to
// every authenticated role; management surfaces are restricted per route.
var (
	// Everyone admits any authenticated role.
	Everyone []model.Role

	// Management covers the operational staff roles.
	Management = []model.Role{
		model.RoleAdmin,
		model.RoleBranchManager,
		model.RoleStaff,
	}

	// Reviewers covers the roles that move assistances through the workflow.
	Reviewers = []model.Role{
		model.RoleAdmin,
		model.RoleBranchManager,
		model.RoleStaff,
		model.RoleApprover,
	}

	// AdminOnly restricts a route to administrators.
	AdminOnly = []model.Role{model.RoleAdmin}

	// BranchAdmins covers admins and branch managers.
	BranchAdmins = []model.Role{
		model.RoleAdmin,
		model.RoleBranchManager,
	}
)

// Routes maps each dashboard route to the roles allowed to reach it.
// Paths not in the table fall back to RedirectDashboard for authenticated
// users via RolesForRoute.
var Routes = map[string][]model.Role{
	"/dashboard":     Everyone,
	"/beneficiaries": Management,
	"/assistances":   Reviewers,
	"/organizations": Management,
	"/projects":      Management,
	"/aid-files":     Management,
	"/branches":      BranchAdmins,
	"/users":         AdminOnly,
	"/reports":       Reviewers,
	"/settings":      AdminOnly,
}

// RolesForRoute returns the allowed roles for a route path. Unknown routes
// return admin-only so new pages fail closed until registered.
func RolesForRoute(path string) []model.Role {
	if allowed, ok := Routes[path]; ok {
		return allowed
	}
	return AdminOnly
}
