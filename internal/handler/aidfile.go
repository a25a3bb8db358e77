package handler

import (
	"log/slog"
	"net/http"

	"github.com/sanadhub/sanad/internal/handler/dto"
	"github.com/sanadhub/sanad/internal/model"
	"github.com/sanadhub/sanad/internal/store"
)

// AidFileHandler handles HTTP requests for aid file batch records.
type AidFileHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewAidFileHandler creates a new AidFileHandler.
func NewAidFileHandler(st *store.Store, logger *slog.Logger) *AidFileHandler {
	return &AidFileHandler{store: st, logger: logger}
}

// List handles GET /api/v1/aid-files.
func (h *AidFileHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(h.store.AidFiles()))
}

// Get handles GET /api/v1/aid-files/{id}.
func (h *AidFileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	f := h.store.AidFileByID(id)
	if f == nil {
		writeError(w, http.StatusNotFound, "AID_FILE_NOT_FOUND", "Aid file not found")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// Create handles POST /api/v1/aid-files.
func (h *AidFileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.AidFile
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "Name is required")
		return
	}

	created, err := h.store.AddAidFile(r.Context(), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.logger.Info("aid_file_created", "aid_file_id", created.ID, "month", created.Month)
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /api/v1/aid-files/{id}.
func (h *AidFileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var patch store.AidFilePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.store.UpdateAidFile(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "AID_FILE_NOT_FOUND", "Aid file not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/aid-files/{id}.
func (h *AidFileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	removed, err := h.store.DeleteAidFile(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "AID_FILE_NOT_FOUND", "Aid file not found")
		return
	}

	h.logger.Info("aid_file_deleted", "aid_file_id", id)
	w.WriteHeader(http.StatusNoContent)
}
