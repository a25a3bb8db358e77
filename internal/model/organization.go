package model

import "time"

// Organization represents a partner or donor organization.
type Organization struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
}

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectSuspended ProjectStatus = "suspended"
)

// IsValid checks if the project status is valid.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanned, ProjectActive, ProjectCompleted, ProjectSuspended:
		return true
	}
	return false
}

// Project represents a funded aid project run with an organization.
// OrganizationID is an unenforced foreign key.
type Project struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	OrganizationID int64         `json:"organization_id,omitempty"`
	Budget         float64       `json:"budget"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date,omitempty"`
	Status         ProjectStatus `json:"status"`
	Description    string        `json:"description,omitempty"`
}
