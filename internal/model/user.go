// Package model defines domain entities for the application.
package model

import (
	"strings"
	"time"
)

// Role represents a user's authorization role.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleBranchManager Role = "branch_manager"
	RoleStaff         Role = "staff"
	RoleApprover      Role = "approver"
	RoleBeneficiary   Role = "beneficiary"
)

// AllRoles lists every valid role, in display order.
var AllRoles = []Role{
	RoleAdmin,
	RoleBranchManager,
	RoleStaff,
	RoleApprover,
	RoleBeneficiary,
}

// IsValid checks if the role is a member of the closed role set.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBranchManager, RoleStaff, RoleApprover, RoleBeneficiary:
		return true
	}
	return false
}

// UserStatus represents the activation state of a user account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// IsValid checks if the user status is valid.
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// User represents a dashboard user account.
//
// Password holds either an Argon2id PHC-format hash (accounts created through
// the API) or a plaintext credential (legacy seed records). Login verifies
// whichever form is stored; see the auth package.
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	FullName  string     `json:"full_name"`
	Role      Role       `json:"role"`
	BranchID  int64      `json:"branch_id,omitempty"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsActive returns true if the account may log in.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// HasHashedPassword reports whether the stored credential is a PHC-format hash.
func (u *User) HasHashedPassword() bool {
	return strings.HasPrefix(u.Password, "$argon2id$")
}

// Redacted returns a copy of the user safe for API responses.
// The stored credential is never serialized back to clients.
func (u *User) Redacted() User {
	out := *u
	out.Password = ""
	return out
}
