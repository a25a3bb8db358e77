// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/sanadhub/sanad/internal/model"
)

// ErrorResponse is the standard error envelope. The optional redirect field
// tells the dashboard where to send the user after an authn/authz failure.
type ErrorResponse struct {
	Error    ErrorBody `json:"error"`
	Redirect string    `json:"redirect,omitempty"`
}

// ErrorBody carries the machine code and human message of an error.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse builds an error envelope without a redirect.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Code: code, Message: message}}
}

// LoginRequest represents the request body for POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse represents a successful login.
type SessionResponse struct {
	Token     string       `json:"token"`
	User      UserResponse `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

// CreateUserRequest represents the request body for creating a user account.
// Password arrives in plaintext and is hashed before storage.
type CreateUserRequest struct {
	Username string           `json:"username"`
	Password string           `json:"password"`
	FullName string           `json:"full_name,omitempty"`
	Role     model.Role       `json:"role"`
	BranchID int64            `json:"branch_id,omitempty"`
	Status   model.UserStatus `json:"status,omitempty"`
}

// UpdateUserRequest is a partial user update; nil fields are left unchanged.
// A non-nil Password is hashed before storage.
type UpdateUserRequest struct {
	Username *string           `json:"username,omitempty"`
	Password *string           `json:"password,omitempty"`
	FullName *string           `json:"full_name,omitempty"`
	Role     *model.Role       `json:"role,omitempty"`
	BranchID *int64            `json:"branch_id,omitempty"`
	Status   *model.UserStatus `json:"status,omitempty"`
}

// UserResponse represents a user in API responses. The stored credential is
// never serialized.
type UserResponse struct {
	ID        int64            `json:"id"`
	Username  string           `json:"username"`
	FullName  string           `json:"full_name,omitempty"`
	Role      model.Role       `json:"role"`
	BranchID  int64            `json:"branch_id,omitempty"`
	Status    model.UserStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// ToUserResponse converts a User model to a UserResponse DTO.
func ToUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		BranchID:  u.BranchID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converts a slice of users.
func ToUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = ToUserResponse(u)
	}
	return out
}

// ListResponse wraps a collection in the standard list envelope.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

// NewListResponse builds a list envelope; a nil slice serializes as [].
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Data: items, Count: len(items)}
}
