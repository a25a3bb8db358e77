// Package store holds all domain collections behind a single-writer store.
//
// State changes funnel through a pure reducer; the store wraps the reducer
// with a mutex, mirrors every changed collection to the storage adapter, and
// exposes the create/update/delete/lookup operations the HTTP layer uses.
package store

import (
	"github.com/sanadhub/sanad/internal/model"
)

// Storage keys, one per entity collection. The persisted layout is one
// JSON-serialized array per key.
const (
	KeyBeneficiaries = "beneficiaries"
	KeyAssistances   = "assistances"
	KeyOrganizations = "organizations"
	KeyProjects      = "projects"
	KeyAidFiles      = "aidFiles"
	KeyUsers         = "users"
	KeyBranches      = "branches"
)

// Entity identifies a domain collection.
type Entity string

const (
	EntityBeneficiaries Entity = Entity(KeyBeneficiaries)
	EntityAssistances   Entity = Entity(KeyAssistances)
	EntityOrganizations Entity = Entity(KeyOrganizations)
	EntityProjects      Entity = Entity(KeyProjects)
	EntityAidFiles      Entity = Entity(KeyAidFiles)
	EntityUsers         Entity = Entity(KeyUsers)
	EntityBranches      Entity = Entity(KeyBranches)
)

// AppData is the aggregate root: one ordered collection per entity type.
// It is owned exclusively by the Store; callers only ever see copies.
type AppData struct {
	Beneficiaries []model.Beneficiary  `json:"beneficiaries"`
	Assistances   []model.Assistance   `json:"assistances"`
	Organizations []model.Organization `json:"organizations"`
	Projects      []model.Project      `json:"projects"`
	AidFiles      []model.AidFile      `json:"aid_files"`
	Users         []model.User         `json:"users"`
	Branches      []model.Branch       `json:"branches"`
}

// maxID returns the highest id in the collection, or 0 when empty.
func maxID[T any](items []T, idOf func(T) int64) int64 {
	var max int64
	for _, item := range items {
		if id := idOf(item); id > max {
			max = id
		}
	}
	return max
}

// nextID synthesizes the id for a new record: max existing id + 1, or 1 for
// an empty collection. Safe only under the store's single-writer lock.
func nextID[T any](items []T, idOf func(T) int64) int64 {
	return maxID(items, idOf) + 1
}
