package handler

import (
	"log/slog"
	"net/http"

	"github.com/sanadhub/sanad/internal/handler/dto"
	"github.com/sanadhub/sanad/internal/model"
	"github.com/sanadhub/sanad/internal/store"
)

// OrganizationHandler handles HTTP requests for partner organizations.
type OrganizationHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(st *store.Store, logger *slog.Logger) *OrganizationHandler {
	return &OrganizationHandler{store: st, logger: logger}
}

// List handles GET /api/v1/organizations.
func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(h.store.Organizations()))
}

// Get handles GET /api/v1/organizations/{id}.
func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	o := h.store.OrganizationByID(id)
	if o == nil {
		writeError(w, http.StatusNotFound, "ORGANIZATION_NOT_FOUND", "Organization not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// Create handles POST /api/v1/organizations.
func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Organization
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "Name is required")
		return
	}

	created, err := h.store.AddOrganization(r.Context(), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.logger.Info("organization_created", "organization_id", created.ID, "name", created.Name)
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /api/v1/organizations/{id}.
func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var patch store.OrganizationPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.store.UpdateOrganization(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "ORGANIZATION_NOT_FOUND", "Organization not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/organizations/{id}. Projects that reference
// the organization are left in place.
func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	removed, err := h.store.DeleteOrganization(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "ORGANIZATION_NOT_FOUND", "Organization not found")
		return
	}

	h.logger.Info("organization_deleted", "organization_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// Projects handles GET /api/v1/organizations/{id}/projects.
func (h *OrganizationHandler) Projects(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if h.store.OrganizationByID(id) == nil {
		writeError(w, http.StatusNotFound, "ORGANIZATION_NOT_FOUND", "Organization not found")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewListResponse(h.store.ProjectsByOrganization(id)))
}
