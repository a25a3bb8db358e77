package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sanadhub/sanad/internal/export"
	"github.com/sanadhub/sanad/internal/metrics"
	"github.com/sanadhub/sanad/internal/store"
)

// ExportHandler renders entity collections as .xlsx downloads.
type ExportHandler struct {
	store   *store.Store
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(st *store.Store, logger *slog.Logger, recorder metrics.Recorder) *ExportHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ExportHandler{store: st, logger: logger, metrics: recorder}
}

// Export handles GET /api/v1/export/{entity}.xlsx. Supported entities are
// beneficiaries, assistances, organizations, projects, aid-files, branches
// and users.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")

	sheet, columns, rows, ok := h.collect(entity)
	if !ok {
		writeError(w, http.StatusNotFound, "UNKNOWN_ENTITY", "Unknown export entity")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, sheet, columns, rows); err != nil {
		h.logger.Error("export_failed", "entity", entity, "error", err)
		writeError(w, http.StatusInternalServerError, "EXPORT_FAILED", "Could not render the export")
		return
	}

	h.metrics.IncExport(entity)
	h.logger.Info("export_generated", "entity", entity, "rows", len(rows))

	filename := fmt.Sprintf("%s-%s.xlsx", entity, time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(buf.Bytes())
}

// collect gathers the sheet name, column layout and row data for an entity.
func (h *ExportHandler) collect(entity string) (string, []export.Column, []map[string]any, bool) {
	switch entity {
	case "beneficiaries":
		columns := []export.Column{
			{Header: "ID", Field: "id"},
			{Header: "National ID", Field: "national_id"},
			{Header: "Name", Field: "name"},
			{Header: "Gender", Field: "gender"},
			{Header: "Phone", Field: "phone"},
			{Header: "Household Size", Field: "household_size"},
			{Header: "Monthly Income", Field: "monthly_income"},
		}
		var rows []map[string]any
		for _, b := range h.store.Beneficiaries() {
			rows = append(rows, map[string]any{
				"id":             b.ID,
				"national_id":    b.NationalID,
				"name":           b.FullName(),
				"gender":         string(b.Gender),
				"phone":          b.Phone,
				"household_size": b.HouseholdSize,
				"monthly_income": b.MonthlyIncome,
			})
		}
		return "Beneficiaries", columns, rows, true

	case "assistances":
		columns := []export.Column{
			{Header: "ID", Field: "id"},
			{Header: "Beneficiary ID", Field: "beneficiary_id"},
			{Header: "Type", Field: "type"},
			{Header: "Amount", Field: "amount"},
			{Header: "Payment Method", Field: "payment_method"},
			{Header: "Status", Field: "status"},
			{Header: "Date", Field: "date"},
		}
		var rows []map[string]any
		for _, a := range h.store.Assistances() {
			row := map[string]any{
				"id":             a.ID,
				"beneficiary_id": a.BeneficiaryID,
				"type":           string(a.Type),
				"amount":         a.Amount,
				"payment_method": string(a.PaymentMethod),
				"status":         string(a.Status),
			}
			if !a.Date.IsZero() {
				row["date"] = a.Date.Format("2006-01-02")
			}
			rows = append(rows, row)
		}
		return "Assistances", columns, rows, true

	case "organizations":
		columns := []export.Column{
			{Header: "ID", Field: "id"},
			{Header: "Name", Field: "name"},
			{Header: "Type", Field: "type"},
			{Header: "Email", Field: "email"},
			{Header: "Contact Person", Field: "contact_person"},
		}
		var rows []map[string]any
		for _, o := range h.store.Organizations() {
			rows = append(rows, map[string]any{
				"id":             o.ID,
				"name":           o.Name,
				"type":           o.Type,
				"email":          o.Email,
				"contact_person": o.ContactPerson,
			})
		}
		return "Organizations", columns, rows, true

	case "projects":
		columns := []export.Column{
			{Header: "ID", Field: "id"},
			{Header: "Name", Field: "name"},
			{Header: "Organization ID", Field: "organization_id"},
			{Header: "Budget", Field: "budget"},
			{Header: "Status", Field: "status"},
		}
		var rows []map[string]any
		for _, p := range h.store.Projects() {
			rows = append(rows, map[string]any{
				"id":              p.ID,
				"name":            p.Name,
				"organization_id": p.OrganizationID,
				"budget":          p.Budget,
				"status":          string(p.Status),
			})
		}
		return "Projects", columns, rows, true

	case "aid-files":
		columns := []export.Column{
			{Header: "ID", Field: "id"},
			{Header: "Name", Field: "name"},
			{Header: "Month", Field: "month"},
			{Header: "Type", Field: "type"},
			{Header: "Assistance Count", Field: "assistance_count"},
			{Header: "Total Amount", Field: "total_amount"},
		}
		var rows []map[string]any
		for _, f := range h.store.AidFiles() {
			rows = append(rows, map[string]any{
				"id":               f.ID,
				"name":             f.Name,
				"month":            f.Month,
				"type":             string(f.Type),
				"assistance_count": f.AssistanceCount,
				"total_amount":     f.TotalAmount,
			})
		}
		return "Aid Files", columns, rows, true

	case "branches":
		columns := []export.Column{
			{Header: "ID", Field: "id"},
			{Header: "Name", Field: "name"},
			{Header: "City", Field: "city"},
			{Header: "Phone", Field: "phone"},
			{Header: "Manager ID", Field: "manager_id"},
		}
		var rows []map[string]any
		for _, b := range h.store.Branches() {
			rows = append(rows, map[string]any{
				"id":         b.ID,
				"name":       b.Name,
				"city":       b.City,
				"phone":      b.Phone,
				"manager_id": b.ManagerID,
			})
		}
		return "Branches", columns, rows, true

	case "users":
		columns := []export.Column{
			{Header: "ID", Field: "id"},
			{Header: "Username", Field: "username"},
			{Header: "Full Name", Field: "full_name"},
			{Header: "Role", Field: "role"},
			{Header: "Branch ID", Field: "branch_id"},
			{Header: "Status", Field: "status"},
		}
		var rows []map[string]any
		for _, u := range h.store.Users() {
			rows = append(rows, map[string]any{
				"id":        u.ID,
				"username":  u.Username,
				"full_name": u.FullName,
				"role":      string(u.Role),
				"branch_id": u.BranchID,
				"status":    string(u.Status),
			})
		}
		return "Users", columns, rows, true
	}
	return "", nil, nil, false
}
