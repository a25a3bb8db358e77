package handler

import (
	"log/slog"
	"net/http"

	"github.com/sanadhub/sanad/internal/handler/dto"
	"github.com/sanadhub/sanad/internal/model"
	"github.com/sanadhub/sanad/internal/store"
)

// ProjectHandler handles HTTP requests for aid projects.
type ProjectHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(st *store.Store, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{store: st, logger: logger}
}

// List handles GET /api/v1/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(h.store.Projects()))
}

// Get handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	p := h.store.ProjectByID(id)
	if p == nil {
		writeError(w, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /api/v1/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Project
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "Name is required")
		return
	}
	if req.Status != "" && !req.Status.IsValid() {
		writeError(w, http.StatusBadRequest, "INVALID_PROJECT_STATUS", "Unknown project status")
		return
	}

	created, err := h.store.AddProject(r.Context(), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.logger.Info("project_created", "project_id", created.ID, "name", created.Name)
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var patch store.ProjectPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		writeError(w, http.StatusBadRequest, "INVALID_PROJECT_STATUS", "Unknown project status")
		return
	}

	updated, err := h.store.UpdateProject(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	removed, err := h.store.DeleteProject(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "PROJECT_NOT_FOUND", "Project not found")
		return
	}

	h.logger.Info("project_deleted", "project_id", id)
	w.WriteHeader(http.StatusNoContent)
}
