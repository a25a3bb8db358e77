package model

import "time"

// Gender represents a beneficiary's recorded gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid checks if the gender value is valid.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// MaritalStatus represents a beneficiary's marital status.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

// IsValid checks if the marital status is valid.
func (m MaritalStatus) IsValid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

// Beneficiary represents a registered recipient of assistance.
//
// NationalID is intended to be unique across the collection but is not
// enforced; lookups return the first match.
type Beneficiary struct {
	ID            int64         `json:"id"`
	NationalID    string        `json:"national_id"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Phone         string        `json:"phone,omitempty"`
	Address       string        `json:"address,omitempty"`
	Gender        Gender        `json:"gender"`
	Religion      string        `json:"religion,omitempty"`
	MaritalStatus MaritalStatus `json:"marital_status,omitempty"`
	HouseholdSize int           `json:"household_size"`
	MonthlyIncome float64       `json:"monthly_income"`
	CreatedAt     time.Time     `json:"created_at"`
}

// FullName returns the display name of the beneficiary.
func (b *Beneficiary) FullName() string {
	if b.LastName == "" {
		return b.FirstName
	}
	return b.FirstName + " " + b.LastName
}
