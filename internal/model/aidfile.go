package model

import "time"

// AidFile represents a grouping record summarizing a batch of assistances,
// typically keyed by month and type.
type AidFile struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Month           string         `json:"month"` // YYYY-MM
	Type            AssistanceType `json:"type,omitempty"`
	AssistanceCount int            `json:"assistance_count"`
	TotalAmount     float64        `json:"total_amount"`
	Notes           string         `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// Branch represents an organizational location with an assigned manager.
// ManagerID is an unenforced foreign key to a User.
type Branch struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	ManagerID int64  `json:"manager_id,omitempty"`
}
