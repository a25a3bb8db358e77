package handler

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/sanadhub/sanad/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns counters in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeLabeled(w, "sanad_entities_created_total", "entity", snap.EntityCreated)
	writeLabeled(w, "sanad_entities_updated_total", "entity", snap.EntityUpdated)
	writeLabeled(w, "sanad_entities_deleted_total", "entity", snap.EntityDeleted)
	writeLabeled(w, "sanad_logins_total", "status", snap.Logins)
	writeLabeled(w, "sanad_exports_total", "entity", snap.Exports)
}

func writeLabeled(w http.ResponseWriter, name, label string, counts map[string]uint64) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "%s{%s=%q} %d\n", name, label, k, counts[k])
	}
}
