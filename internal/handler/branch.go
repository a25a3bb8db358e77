package handler

import (
	"log/slog"
	"net/http"

	"github.com/sanadhub/sanad/internal/handler/dto"
	"github.com/sanadhub/sanad/internal/model"
	"github.com/sanadhub/sanad/internal/store"
)

// BranchHandler handles HTTP requests for branches.
type BranchHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewBranchHandler creates a new BranchHandler.
func NewBranchHandler(st *store.Store, logger *slog.Logger) *BranchHandler {
	return &BranchHandler{store: st, logger: logger}
}

// List handles GET /api/v1/branches.
func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(h.store.Branches()))
}

// Get handles GET /api/v1/branches/{id}.
func (h *BranchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	b := h.store.BranchByID(id)
	if b == nil {
		writeError(w, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Create handles POST /api/v1/branches.
func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Branch
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "Name is required")
		return
	}

	created, err := h.store.AddBranch(r.Context(), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.logger.Info("branch_created", "branch_id", created.ID, "name", created.Name)
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /api/v1/branches/{id}.
func (h *BranchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var patch store.BranchPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.store.UpdateBranch(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/branches/{id}. Users assigned to the branch
// keep their branch id.
func (h *BranchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	removed, err := h.store.DeleteBranch(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
		return
	}

	h.logger.Info("branch_deleted", "branch_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// Users handles GET /api/v1/branches/{id}/users.
func (h *BranchHandler) Users(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if h.store.BranchByID(id) == nil {
		writeError(w, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewListResponse(dto.ToUserResponses(h.store.UsersByBranch(id))))
}
