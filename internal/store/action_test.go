package store

import (
	"testing"

	"github.com/sanadhub/sanad/internal/model"
)

func TestApply_UnknownActionIsIdentity(t *testing.T) {
	state := AppData{
		Beneficiaries: []model.Beneficiary{{ID: 1, FirstName: "Amal"}},
	}

	got := apply(state, Action{Type: "BOGUS"})
	if len(got.Beneficiaries) != 1 || got.Beneficiaries[0].FirstName != "Amal" {
		t.Errorf("unknown action changed state: %+v", got)
	}
}

func TestApply_SetDataWithoutPayloadIsIdentity(t *testing.T) {
	state := AppData{Branches: []model.Branch{{ID: 1, Name: "Central"}}}

	got := apply(state, Action{Type: ActionSetData})
	if len(got.Branches) != 1 {
		t.Errorf("SetData without payload changed state: %+v", got)
	}
}

func TestApply_MistypedRecordIsIdentity(t *testing.T) {
	state := AppData{Users: []model.User{{ID: 1, Username: "admin"}}}

	// A branch record dispatched against the users collection is dropped.
	got := apply(state, Action{Type: ActionAdd, Entity: EntityUsers, Record: model.Branch{ID: 9}})
	if len(got.Users) != 1 {
		t.Errorf("mistyped record changed state: %+v", got)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	state := AppData{
		Assistances: []model.Assistance{{ID: 1, Amount: 100}},
	}

	next := apply(state, Action{
		Type: ActionUpdate, Entity: EntityAssistances, ID: 1,
		Record: model.Assistance{ID: 1, Amount: 999},
	})

	if state.Assistances[0].Amount != 100 {
		t.Error("reducer mutated the input state")
	}
	if next.Assistances[0].Amount != 999 {
		t.Errorf("reducer did not apply the update: %+v", next.Assistances[0])
	}
}

func TestApply_DeleteFiltersByID(t *testing.T) {
	state := AppData{
		Projects: []model.Project{{ID: 1}, {ID: 2}, {ID: 3}},
	}

	got := apply(state, Action{Type: ActionDelete, Entity: EntityProjects, ID: 2})
	if len(got.Projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got.Projects))
	}
	if got.Projects[0].ID != 1 || got.Projects[1].ID != 3 {
		t.Errorf("unexpected order after delete: %+v", got.Projects)
	}
}
