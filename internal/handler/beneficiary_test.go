package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sanadhub/sanad/internal/model"
	"github.com/sanadhub/sanad/internal/store"
)

func TestBeneficiaryCRUD(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, model.RoleStaff)

	// Create
	rec := api.doJSON(t, http.MethodPost, "/api/v1/beneficiaries", token, model.Beneficiary{
		NationalID:    "2001122334",
		FirstName:     "Nour",
		LastName:      "Khalaf",
		Gender:        model.GenderFemale,
		HouseholdSize: 4,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", rec.Code, rec.Body.String())
	}
	var created model.Beneficiary
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	// Get
	rec = api.doJSON(t, http.MethodGet, "/api/v1/beneficiaries/2", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status %d", rec.Code)
	}

	// Patch one field, others untouched
	phone := "+962-79-555-1234"
	rec = api.doJSON(t, http.MethodPatch, "/api/v1/beneficiaries/2", token,
		store.BeneficiaryPatch{Phone: &phone})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", rec.Code, rec.Body.String())
	}
	var updated model.Beneficiary
	if err := json.NewDecoder(rec.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	if updated.Phone != phone {
		t.Errorf("phone = %q, want %q", updated.Phone, phone)
	}
	if updated.FirstName != "Nour" {
		t.Errorf("first name changed to %q", updated.FirstName)
	}

	// Delete
	rec = api.doJSON(t, http.MethodDelete, "/api/v1/beneficiaries/2", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", rec.Code)
	}
	rec = api.doJSON(t, http.MethodGet, "/api/v1/beneficiaries/2", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status %d, want 404", rec.Code)
	}
}

func TestBeneficiary_InvalidID(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, model.RoleStaff)

	for _, path := range []string{
		"/api/v1/beneficiaries/abc",
		"/api/v1/beneficiaries/-1",
		"/api/v1/beneficiaries/0",
	} {
		rec := api.doJSON(t, http.MethodGet, path, token, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", path, rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_ID" {
			t.Errorf("%s: code %s, want INVALID_ID", path, code)
		}
	}
}

func TestBeneficiary_MissingFirstName(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, model.RoleStaff)

	rec := api.doJSON(t, http.MethodPost, "/api/v1/beneficiaries", token,
		model.Beneficiary{NationalID: "123"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	if code := errorCode(t, rec); code != "MISSING_FIRST_NAME" {
		t.Errorf("code %s, want MISSING_FIRST_NAME", code)
	}
}

func TestBeneficiaryAssistances(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, model.RoleStaff)

	// The fixture beneficiary has id 1; give it one assistance.
	rec := api.doJSON(t, http.MethodPost, "/api/v1/assistances", token, model.Assistance{
		BeneficiaryID: 1,
		Type:          "financial",
		Amount:        100,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create assistance: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = api.doJSON(t, http.MethodGet, "/api/v1/beneficiaries/1/assistances", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Data  []model.Assistance `json:"data"`
		Count int                `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("count = %d, want 1", resp.Count)
	}

	// Missing beneficiary
	rec = api.doJSON(t, http.MethodGet, "/api/v1/beneficiaries/999/assistances", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rec.Code)
	}
}
