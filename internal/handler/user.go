package handler

import (
	"log/slog"
	"net/http"

	"github.com/sanadhub/sanad/internal/auth"
	"github.com/sanadhub/sanad/internal/handler/dto"
	"github.com/sanadhub/sanad/internal/model"
	"github.com/sanadhub/sanad/internal/store"
)

// UserHandler handles HTTP requests for user accounts. Incoming passwords
// are hashed before they reach the store.
type UserHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(st *store.Store, logger *slog.Logger) *UserHandler {
	return &UserHandler{store: st, logger: logger}
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(dto.ToUserResponses(h.store.Users())))
}

// Get handles GET /api/v1/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	u := h.store.UserByID(id)
	if u == nil {
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserResponse(*u))
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "MISSING_PASSWORD", "Password is required")
		return
	}
	if h.store.UserByUsername(req.Username) != nil {
		writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username already exists")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("password_hash_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	created, err := h.store.AddUser(r.Context(), model.User{
		Username: req.Username,
		Password: hashed,
		FullName: req.FullName,
		Role:     req.Role,
		BranchID: req.BranchID,
		Status:   req.Status,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.logger.Info("user_created",
		"user_id", created.ID,
		"username", created.Username,
		"role", created.Role,
	)
	writeJSON(w, http.StatusCreated, dto.ToUserResponse(created))
}

// Update handles PATCH /api/v1/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Username != nil {
		if existing := h.store.UserByUsername(*req.Username); existing != nil && existing.ID != id {
			writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username already exists")
			return
		}
	}

	patch := store.UserPatch{
		Username: req.Username,
		FullName: req.FullName,
		Role:     req.Role,
		BranchID: req.BranchID,
		Status:   req.Status,
	}
	if req.Password != nil {
		if *req.Password == "" {
			writeError(w, http.StatusBadRequest, "MISSING_PASSWORD", "Password must not be empty")
			return
		}
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			h.logger.Error("password_hash_failed", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
			return
		}
		patch.Password = &hashed
	}

	updated, err := h.store.UpdateUser(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserResponse(*updated))
}

// Delete handles DELETE /api/v1/users/{id}. Self-deletion is rejected.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if current := auth.UserFromContext(r.Context()); current != nil && current.ID == id {
		writeError(w, http.StatusConflict, "SELF_DELETE", "Cannot delete your own account")
		return
	}

	removed, err := h.store.DeleteUser(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	h.logger.Info("user_deleted", "user_id", id)
	w.WriteHeader(http.StatusNoContent)
}
