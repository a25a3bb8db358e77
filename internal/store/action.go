package store

import (
	"github.com/sanadhub/sanad/internal/model"
)

// ActionType identifies a reducer operation.
type ActionType string

const (
	ActionSetData ActionType = "SET_DATA"
	ActionAdd     ActionType = "ADD"
	ActionUpdate  ActionType = "UPDATE"
	ActionDelete  ActionType = "DELETE"
)

// Action is a single state mutation. SetData carries the full dataset; Add
// and Update carry the record (id already assigned by the calling layer);
// Delete carries only the id.
type Action struct {
	Type   ActionType
	Entity Entity
	Record any
	ID     int64
	Data   *AppData
}

// apply is the pure reducer: (state, action) -> new state. Unknown actions,
// unknown entities, and mistyped records leave the state unchanged. The
// returned state shares unchanged collections with the input; the mutated
// collection is a fresh slice.
func apply(state AppData, a Action) AppData {
	switch a.Type {
	case ActionSetData:
		if a.Data == nil {
			return state
		}
		return *a.Data
	case ActionAdd:
		return applyAdd(state, a)
	case ActionUpdate:
		return applyUpdate(state, a)
	case ActionDelete:
		return applyDelete(state, a)
	}
	return state
}

func applyAdd(state AppData, a Action) AppData {
	switch a.Entity {
	case EntityBeneficiaries:
		if rec, ok := a.Record.(model.Beneficiary); ok {
			state.Beneficiaries = appended(state.Beneficiaries, rec)
		}
	case EntityAssistances:
		if rec, ok := a.Record.(model.Assistance); ok {
			state.Assistances = appended(state.Assistances, rec)
		}
	case EntityOrganizations:
		if rec, ok := a.Record.(model.Organization); ok {
			state.Organizations = appended(state.Organizations, rec)
		}
	case EntityProjects:
		if rec, ok := a.Record.(model.Project); ok {
			state.Projects = appended(state.Projects, rec)
		}
	case EntityAidFiles:
		if rec, ok := a.Record.(model.AidFile); ok {
			state.AidFiles = appended(state.AidFiles, rec)
		}
	case EntityUsers:
		if rec, ok := a.Record.(model.User); ok {
			state.Users = appended(state.Users, rec)
		}
	case EntityBranches:
		if rec, ok := a.Record.(model.Branch); ok {
			state.Branches = appended(state.Branches, rec)
		}
	}
	return state
}

func applyUpdate(state AppData, a Action) AppData {
	switch a.Entity {
	case EntityBeneficiaries:
		if rec, ok := a.Record.(model.Beneficiary); ok {
			state.Beneficiaries = replaced(state.Beneficiaries, a.ID, rec,
				func(b model.Beneficiary) int64 { return b.ID })
		}
	case EntityAssistances:
		if rec, ok := a.Record.(model.Assistance); ok {
			state.Assistances = replaced(state.Assistances, a.ID, rec,
				func(x model.Assistance) int64 { return x.ID })
		}
	case EntityOrganizations:
		if rec, ok := a.Record.(model.Organization); ok {
			state.Organizations = replaced(state.Organizations, a.ID, rec,
				func(o model.Organization) int64 { return o.ID })
		}
	case EntityProjects:
		if rec, ok := a.Record.(model.Project); ok {
			state.Projects = replaced(state.Projects, a.ID, rec,
				func(p model.Project) int64 { return p.ID })
		}
	case EntityAidFiles:
		if rec, ok := a.Record.(model.AidFile); ok {
			state.AidFiles = replaced(state.AidFiles, a.ID, rec,
				func(f model.AidFile) int64 { return f.ID })
		}
	case EntityUsers:
		if rec, ok := a.Record.(model.User); ok {
			state.Users = replaced(state.Users, a.ID, rec,
				func(u model.User) int64 { return u.ID })
		}
	case EntityBranches:
		if rec, ok := a.Record.(model.Branch); ok {
			state.Branches = replaced(state.Branches, a.ID, rec,
				func(b model.Branch) int64 { return b.ID })
		}
	}
	return state
}

func applyDelete(state AppData, a Action) AppData {
	switch a.Entity {
	case EntityBeneficiaries:
		state.Beneficiaries = removed(state.Beneficiaries, a.ID,
			func(b model.Beneficiary) int64 { return b.ID })
	case EntityAssistances:
		state.Assistances = removed(state.Assistances, a.ID,
			func(x model.Assistance) int64 { return x.ID })
	case EntityOrganizations:
		state.Organizations = removed(state.Organizations, a.ID,
			func(o model.Organization) int64 { return o.ID })
	case EntityProjects:
		state.Projects = removed(state.Projects, a.ID,
			func(p model.Project) int64 { return p.ID })
	case EntityAidFiles:
		state.AidFiles = removed(state.AidFiles, a.ID,
			func(f model.AidFile) int64 { return f.ID })
	case EntityUsers:
		state.Users = removed(state.Users, a.ID,
			func(u model.User) int64 { return u.ID })
	case EntityBranches:
		state.Branches = removed(state.Branches, a.ID,
			func(b model.Branch) int64 { return b.ID })
	}
	return state
}

// appended copies the collection and appends the record.
func appended[T any](items []T, rec T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, rec)
}

// replaced copies the collection, substituting the record whose id matches.
func replaced[T any](items []T, id int64, rec T, idOf func(T) int64) []T {
	out := make([]T, len(items))
	for i, item := range items {
		if idOf(item) == id {
			out[i] = rec
		} else {
			out[i] = item
		}
	}
	return out
}

// removed copies the collection, filtering out the record whose id matches.
func removed[T any](items []T, id int64, idOf func(T) int64) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
