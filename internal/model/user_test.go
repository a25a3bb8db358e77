package model

import "testing"

func TestRole_IsValid(t *testing.T) {
	for _, r := range AllRoles {
		if !r.IsValid() {
			t.Errorf("expected %q to be valid", r)
		}
	}

	invalid := []Role{"", "superadmin", "Admin", "branch-manager"}
	for _, r := range invalid {
		if r.IsValid() {
			t.Errorf("expected %q to be invalid", r)
		}
	}
}

func TestUser_IsActive(t *testing.T) {
	active := User{Status: UserStatusActive}
	if !active.IsActive() {
		t.Error("expected active user to be active")
	}

	inactive := User{Status: UserStatusInactive}
	if inactive.IsActive() {
		t.Error("expected inactive user to not be active")
	}
}

func TestUser_HasHashedPassword(t *testing.T) {
	hashed := User{Password: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"}
	if !hashed.HasHashedPassword() {
		t.Error("expected PHC-format credential to be detected as hashed")
	}

	plain := User{Password: "admin123"}
	if plain.HasHashedPassword() {
		t.Error("expected plaintext credential to not be detected as hashed")
	}
}

func TestUser_Redacted(t *testing.T) {
	u := User{ID: 1, Username: "admin", Password: "secret", Role: RoleAdmin}
	r := u.Redacted()

	if r.Password != "" {
		t.Errorf("expected redacted password to be empty, got %q", r.Password)
	}
	if r.Username != "admin" || r.ID != 1 {
		t.Error("expected other fields to be preserved")
	}
	if u.Password != "secret" {
		t.Error("expected original user to be unchanged")
	}
}
