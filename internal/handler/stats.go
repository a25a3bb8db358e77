package handler

import (
	"net/http"

	"github.com/sanadhub/sanad/internal/store"
)

// StatsHandler serves the dashboard aggregates.
type StatsHandler struct {
	store *store.Store
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

// Summary handles GET /api/v1/stats/summary.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Summary())
}

// ByStatus handles GET /api/v1/stats/assistances/by-status.
func (h *StatsHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.AssistancesByStatusBuckets())
}

// ByType handles GET /api/v1/stats/assistances/by-type.
func (h *StatsHandler) ByType(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.AssistancesByTypeBuckets())
}

// Monthly handles GET /api/v1/stats/assistances/monthly.
func (h *StatsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.MonthlyTotals())
}
