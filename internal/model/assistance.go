package model

import "time"

// AssistanceStatus represents the review state of an assistance record.
type AssistanceStatus string

const (
	AssistancePending     AssistanceStatus = "pending"
	AssistanceUnderReview AssistanceStatus = "under_review"
	AssistanceApproved    AssistanceStatus = "approved"
	AssistancePaid        AssistanceStatus = "paid"
	AssistanceRejected    AssistanceStatus = "rejected"
)

// AllAssistanceStatuses lists every valid status, in workflow order.
var AllAssistanceStatuses = []AssistanceStatus{
	AssistancePending,
	AssistanceUnderReview,
	AssistanceApproved,
	AssistancePaid,
	AssistanceRejected,
}

// IsValid checks if the status is a member of the closed status set.
func (s AssistanceStatus) IsValid() bool {
	switch s {
	case AssistancePending, AssistanceUnderReview, AssistanceApproved,
		AssistancePaid, AssistanceRejected:
		return true
	}
	return false
}

// IsTerminal returns true if no further transitions leave the status.
func (s AssistanceStatus) IsTerminal() bool {
	return s == AssistancePaid || s == AssistanceRejected
}

// CanTransitionTo reports whether the workflow permits moving to next.
// The workflow is pending -> under_review -> approved -> paid, with
// rejection allowed from pending or under_review.
func (s AssistanceStatus) CanTransitionTo(next AssistanceStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case AssistancePending:
		return next == AssistanceUnderReview || next == AssistanceRejected
	case AssistanceUnderReview:
		return next == AssistanceApproved || next == AssistanceRejected
	case AssistanceApproved:
		return next == AssistancePaid
	}
	return false
}

// PaymentMethod represents how an assistance amount is disbursed.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheck        PaymentMethod = "check"
	PaymentInKind       PaymentMethod = "in_kind"
)

// IsValid checks if the payment method is valid.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentBankTransfer, PaymentCheck, PaymentInKind:
		return true
	}
	return false
}

// AssistanceType is a free categorical label (e.g. "financial", "medical",
// "food", "education"). Types are not a closed set; branches define their own.
type AssistanceType string

// Assistance represents a single aid request/grant tied to a beneficiary.
//
// BeneficiaryID is a referential foreign key that is not enforced; deleting a
// beneficiary orphans its assistances.
type Assistance struct {
	ID            int64            `json:"id"`
	BeneficiaryID int64            `json:"beneficiary_id"`
	Type          AssistanceType   `json:"type"`
	Amount        float64          `json:"amount"`
	PaymentMethod PaymentMethod    `json:"payment_method"`
	Status        AssistanceStatus `json:"status"`
	Date          time.Time        `json:"date"`
	Notes         string           `json:"notes,omitempty"`
}
