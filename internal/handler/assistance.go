package handler

import (
	"log/slog"
	"net/http"

	"github.com/sanadhub/sanad/internal/handler/dto"
	"github.com/sanadhub/sanad/internal/model"
	"github.com/sanadhub/sanad/internal/store"
)

// AssistanceHandler handles HTTP requests for assistance records.
type AssistanceHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewAssistanceHandler creates a new AssistanceHandler.
func NewAssistanceHandler(st *store.Store, logger *slog.Logger) *AssistanceHandler {
	return &AssistanceHandler{store: st, logger: logger}
}

// List handles GET /api/v1/assistances. Supports ?status= and ?type=
// filters.
func (h *AssistanceHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var items []model.Assistance
	switch {
	case query.Get("status") != "":
		status := model.AssistanceStatus(query.Get("status"))
		if !status.IsValid() {
			writeError(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown assistance status")
			return
		}
		items = h.store.AssistancesByStatus(status)
	case query.Get("type") != "":
		items = h.store.AssistancesByType(model.AssistanceType(query.Get("type")))
	default:
		items = h.store.Assistances()
	}
	writeJSON(w, http.StatusOK, dto.NewListResponse(items))
}

// Get handles GET /api/v1/assistances/{id}.
func (h *AssistanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	a := h.store.AssistanceByID(id)
	if a == nil {
		writeError(w, http.StatusNotFound, "ASSISTANCE_NOT_FOUND", "Assistance not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Create handles POST /api/v1/assistances. Status defaults to pending.
func (h *AssistanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Assistance
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.BeneficiaryID == 0 {
		writeError(w, http.StatusBadRequest, "MISSING_BENEFICIARY_ID", "Beneficiary ID is required")
		return
	}

	created, err := h.store.AddAssistance(r.Context(), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.logger.Info("assistance_created",
		"assistance_id", created.ID,
		"beneficiary_id", created.BeneficiaryID,
		"type", created.Type,
		"amount", created.Amount,
	)
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /api/v1/assistances/{id}. Status changes must follow
// the review workflow.
func (h *AssistanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var patch store.AssistancePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.store.UpdateAssistance(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "ASSISTANCE_NOT_FOUND", "Assistance not found")
		return
	}

	if patch.Status != nil {
		h.logger.Info("assistance_status_changed",
			"assistance_id", updated.ID,
			"status", updated.Status,
		)
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/assistances/{id}.
func (h *AssistanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	removed, err := h.store.DeleteAssistance(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "ASSISTANCE_NOT_FOUND", "Assistance not found")
		return
	}

	h.logger.Info("assistance_deleted", "assistance_id", id)
	w.WriteHeader(http.StatusNoContent)
}
