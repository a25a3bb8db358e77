// Package stats computes dashboard aggregates from the domain collections.
//
// Every function is total over its input: empty collections produce zero
// values, never a panic or a NaN.
package stats

import (
	"sort"

	"github.com/sanadhub/sanad/internal/model"
)

// Summary holds the headline dashboard figures.
type Summary struct {
	TotalBeneficiaries      int     `json:"total_beneficiaries"`
	TotalAssistances        int     `json:"total_assistances"`
	TotalOrganizations      int     `json:"total_organizations"`
	TotalProjects           int     `json:"total_projects"`
	TotalPaidAmount         float64 `json:"total_paid_amount"`
	TotalPendingAmount      float64 `json:"total_pending_amount"`
	TotalApprovedAmount     float64 `json:"total_approved_amount"`
	MaleBeneficiaries       int     `json:"male_beneficiaries"`
	FemaleBeneficiaries     int     `json:"female_beneficiaries"`
	AverageAssistanceAmount float64 `json:"average_assistance_amount"`
}

// Summarize computes the summary over the current collections.
func Summarize(
	beneficiaries []model.Beneficiary,
	assistances []model.Assistance,
	organizations []model.Organization,
	projects []model.Project,
) Summary {
	s := Summary{
		TotalBeneficiaries: len(beneficiaries),
		TotalAssistances:   len(assistances),
		TotalOrganizations: len(organizations),
		TotalProjects:      len(projects),
	}

	for _, b := range beneficiaries {
		switch b.Gender {
		case model.GenderMale:
			s.MaleBeneficiaries++
		case model.GenderFemale:
			s.FemaleBeneficiaries++
		}
	}

	for _, a := range assistances {
		switch a.Status {
		case model.AssistancePaid:
			s.TotalPaidAmount += a.Amount
		case model.AssistancePending:
			s.TotalPendingAmount += a.Amount
		case model.AssistanceApproved:
			s.TotalApprovedAmount += a.Amount
		}
	}

	s.AverageAssistanceAmount = AverageAssistanceAmount(assistances)
	return s
}

// AverageAssistanceAmount returns the mean amount of paid assistances, or 0
// when none are paid.
func AverageAssistanceAmount(assistances []model.Assistance) float64 {
	var sum float64
	var count int
	for _, a := range assistances {
		if a.Status == model.AssistancePaid {
			sum += a.Amount
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// AmountByStatus sums amounts of assistances in the given status.
func AmountByStatus(assistances []model.Assistance, status model.AssistanceStatus) float64 {
	var sum float64
	for _, a := range assistances {
		if a.Status == status {
			sum += a.Amount
		}
	}
	return sum
}

// CountByStatus counts assistances in the given status.
func CountByStatus(assistances []model.Assistance, status model.AssistanceStatus) int {
	var count int
	for _, a := range assistances {
		if a.Status == status {
			count++
		}
	}
	return count
}

// StatusBucket is one slice of the per-status breakdown.
type StatusBucket struct {
	Status model.AssistanceStatus `json:"status"`
	Count  int                    `json:"count"`
	Amount float64                `json:"amount"`
}

// ByStatus returns one bucket per status in workflow order, including empty
// buckets so chart axes stay stable.
func ByStatus(assistances []model.Assistance) []StatusBucket {
	buckets := make([]StatusBucket, 0, len(model.AllAssistanceStatuses))
	for _, status := range model.AllAssistanceStatuses {
		bucket := StatusBucket{Status: status}
		for _, a := range assistances {
			if a.Status == status {
				bucket.Count++
				bucket.Amount += a.Amount
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// TypeBucket is one slice of the per-type breakdown.
type TypeBucket struct {
	Type   model.AssistanceType `json:"type"`
	Count  int                  `json:"count"`
	Amount float64              `json:"amount"`
}

// ByType returns one bucket per assistance type, sorted by type name.
// Types are an open set so only observed types appear.
func ByType(assistances []model.Assistance) []TypeBucket {
	byType := make(map[model.AssistanceType]*TypeBucket)
	for _, a := range assistances {
		bucket, ok := byType[a.Type]
		if !ok {
			bucket = &TypeBucket{Type: a.Type}
			byType[a.Type] = bucket
		}
		bucket.Count++
		bucket.Amount += a.Amount
	}

	out := make([]TypeBucket, 0, len(byType))
	for _, bucket := range byType {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// MonthBucket is one month of the trend chart.
type MonthBucket struct {
	Month  string  `json:"month"` // YYYY-MM
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// ByMonth groups assistances by the month of their date, sorted ascending.
// Records with a zero date are skipped.
func ByMonth(assistances []model.Assistance) []MonthBucket {
	byMonth := make(map[string]*MonthBucket)
	for _, a := range assistances {
		if a.Date.IsZero() {
			continue
		}
		month := a.Date.Format("2006-01")
		bucket, ok := byMonth[month]
		if !ok {
			bucket = &MonthBucket{Month: month}
			byMonth[month] = bucket
		}
		bucket.Count++
		bucket.Amount += a.Amount
	}

	out := make([]MonthBucket, 0, len(byMonth))
	for _, bucket := range byMonth {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
