package handler

import (
	"log/slog"
	"net/http"

	"github.com/sanadhub/sanad/internal/handler/dto"
	"github.com/sanadhub/sanad/internal/model"
	"github.com/sanadhub/sanad/internal/store"
)

// BeneficiaryHandler handles HTTP requests for beneficiary records.
type BeneficiaryHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewBeneficiaryHandler creates a new BeneficiaryHandler.
func NewBeneficiaryHandler(st *store.Store, logger *slog.Logger) *BeneficiaryHandler {
	return &BeneficiaryHandler{store: st, logger: logger}
}

// List handles GET /api/v1/beneficiaries.
func (h *BeneficiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.store.Beneficiaries()
	if nationalID := r.URL.Query().Get("national_id"); nationalID != "" {
		items = nil
		if b := h.store.BeneficiaryByNationalID(nationalID); b != nil {
			items = []model.Beneficiary{*b}
		}
	}
	writeJSON(w, http.StatusOK, dto.NewListResponse(items))
}

// Get handles GET /api/v1/beneficiaries/{id}.
func (h *BeneficiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	b := h.store.BeneficiaryByID(id)
	if b == nil {
		writeError(w, http.StatusNotFound, "BENEFICIARY_NOT_FOUND", "Beneficiary not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Create handles POST /api/v1/beneficiaries.
func (h *BeneficiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Beneficiary
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.FirstName == "" {
		writeError(w, http.StatusBadRequest, "MISSING_FIRST_NAME", "First name is required")
		return
	}

	created, err := h.store.AddBeneficiary(r.Context(), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.logger.Info("beneficiary_created",
		"beneficiary_id", created.ID,
		"national_id", created.NationalID,
	)
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /api/v1/beneficiaries/{id}.
func (h *BeneficiaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var patch store.BeneficiaryPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.store.UpdateBeneficiary(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "BENEFICIARY_NOT_FOUND", "Beneficiary not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/beneficiaries/{id}. Assistances that
// reference the beneficiary are left in place.
func (h *BeneficiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	removed, err := h.store.DeleteBeneficiary(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "BENEFICIARY_NOT_FOUND", "Beneficiary not found")
		return
	}

	h.logger.Info("beneficiary_deleted", "beneficiary_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// Assistances handles GET /api/v1/beneficiaries/{id}/assistances.
func (h *BeneficiaryHandler) Assistances(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if h.store.BeneficiaryByID(id) == nil {
		writeError(w, http.StatusNotFound, "BENEFICIARY_NOT_FOUND", "Beneficiary not found")
		return
	}
	writeJSON(w, http.StatusOK, dto.NewListResponse(h.store.AssistancesByBeneficiary(id)))
}
