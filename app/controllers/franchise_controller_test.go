package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shashiranjanraj/pizzeria/app/models"
)

func TestListFranchisesIsPublic(t *testing.T) {
	_, email, _ := registerDiner(t)
	f := createFranchise(t, email)

	rec := do(t, http.MethodGet, "/api/franchise", "", nil)
	wantStatus(t, rec, http.StatusOK)

	var franchises []models.Franchise
	decode(t, rec, &franchises)

	found := false
	for _, got := range franchises {
		if got.ID == f.ID {
			found = true
			if got.Name != f.Name {
				t.Errorf("name = %q, want %q", got.Name, f.Name)
			}
		}
	}
	if !found {
		t.Errorf("created franchise %d missing from listing", f.ID)
	}
}

func TestCreateFranchise(t *testing.T) {
	diner, email, _ := registerDiner(t)

	f := createFranchise(t, email)
	if f.ID == 0 {
		t.Error("expected a persisted franchise id")
	}
	if len(f.Admins) != 1 {
		t.Fatalf("expected 1 admin, got %d", len(f.Admins))
	}
	if f.Admins[0].Email != email || f.Admins[0].ID != diner.User.ID {
		t.Errorf("admin ref = %+v, want id %d email %s", f.Admins[0], diner.User.ID, email)
	}
}

func TestCreateFranchiseRequiresAdmin(t *testing.T) {
	diner, _, _ := registerDiner(t)

	rec := do(t, http.MethodPost, "/api/franchise", diner.Token, map[string]interface{}{
		"name": uniqueEmail("franchise"),
	})
	wantStatus(t, rec, http.StatusForbidden)
	wantMessage(t, rec, "unable to create a franchise")
}

func TestCreateFranchiseForbiddenBeatsValidation(t *testing.T) {
	diner, _, _ := registerDiner(t)

	// Even a payload that would fail validation gets the 403: the role
	// check runs before the body is looked at.
	rec := do(t, http.MethodPost, "/api/franchise", diner.Token, map[string]interface{}{})
	wantStatus(t, rec, http.StatusForbidden)
	wantMessage(t, rec, "unable to create a franchise")
}

func TestCreateStoreForbiddenBeatsValidation(t *testing.T) {
	diner, _, _ := registerDiner(t)
	_, email, _ := registerDiner(t)
	f := createFranchise(t, email)

	rec := do(t, http.MethodPost, fmt.Sprintf("/api/franchise/%d/store", f.ID), diner.Token, map[string]interface{}{})
	wantStatus(t, rec, http.StatusForbidden)
	wantMessage(t, rec, "unable to create a store")
}

func TestCreateFranchiseUnknownAdmin(t *testing.T) {
	admin := createAdmin(t)

	rec := do(t, http.MethodPost, "/api/franchise", admin.Token, map[string]interface{}{
		"name":   uniqueEmail("franchise"),
		"admins": []map[string]string{{"email": "missing@test.com"}},
	})
	wantStatus(t, rec, http.StatusNotFound)
	wantMessage(t, rec, "unknown user for franchise admin")
}

func TestDeleteFranchise(t *testing.T) {
	_, email, _ := registerDiner(t)
	f := createFranchise(t, email)
	admin := createAdmin(t)

	rec := do(t, http.MethodDelete, fmt.Sprintf("/api/franchise/%d", f.ID), admin.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	wantMessage(t, rec, "franchise deleted")

	// Gone from the listing.
	rec = do(t, http.MethodGet, "/api/franchise", "", nil)
	var franchises []models.Franchise
	decode(t, rec, &franchises)
	for _, got := range franchises {
		if got.ID == f.ID {
			t.Errorf("franchise %d still listed after delete", f.ID)
		}
	}
}

func TestDeleteFranchiseRequiresAdmin(t *testing.T) {
	diner, email, _ := registerDiner(t)
	f := createFranchise(t, email)

	rec := do(t, http.MethodDelete, fmt.Sprintf("/api/franchise/%d", f.ID), diner.Token, nil)
	wantStatus(t, rec, http.StatusForbidden)
	wantMessage(t, rec, "unable to delete a franchise")
}

func TestCreateStoreAsFranchisee(t *testing.T) {
	_, email, password := registerDiner(t)
	f := createFranchise(t, email)

	// The franchisee role was granted after the first token was issued, so a
	// fresh login is needed to pick it up.
	franchisee := login(t, email, password)

	rec := do(t, http.MethodPost, fmt.Sprintf("/api/franchise/%d/store", f.ID), franchisee.Token, map[string]string{
		"name": "downtown",
	})
	wantStatus(t, rec, http.StatusOK)

	var store models.Store
	decode(t, rec, &store)
	if store.ID == 0 || store.Name != "downtown" {
		t.Errorf("unexpected store: %+v", store)
	}
	if store.FranchiseID != f.ID {
		t.Errorf("store belongs to franchise %d, want %d", store.FranchiseID, f.ID)
	}
}

func TestCreateStoreRequiresFranchiseRole(t *testing.T) {
	diner, _, _ := registerDiner(t)
	_, email, _ := registerDiner(t)
	f := createFranchise(t, email)

	rec := do(t, http.MethodPost, fmt.Sprintf("/api/franchise/%d/store", f.ID), diner.Token, map[string]string{
		"name": "rogue store",
	})
	wantStatus(t, rec, http.StatusForbidden)
	wantMessage(t, rec, "unable to create a store")
}

func TestCreateStoreUnknownFranchise(t *testing.T) {
	admin := createAdmin(t)

	rec := do(t, http.MethodPost, "/api/franchise/999999/store", admin.Token, map[string]string{
		"name": "nowhere",
	})
	wantStatus(t, rec, http.StatusNotFound)
	wantMessage(t, rec, "unknown franchise")
}

func TestDeleteStore(t *testing.T) {
	_, email, password := registerDiner(t)
	f := createFranchise(t, email)
	franchisee := login(t, email, password)

	rec := do(t, http.MethodPost, fmt.Sprintf("/api/franchise/%d/store", f.ID), franchisee.Token, map[string]string{
		"name": "short lived",
	})
	wantStatus(t, rec, http.StatusOK)
	var store models.Store
	decode(t, rec, &store)

	rec = do(t, http.MethodDelete, fmt.Sprintf("/api/franchise/%d/store/%d", f.ID, store.ID), franchisee.Token, nil)
	wantStatus(t, rec, http.StatusOK)
	wantMessage(t, rec, "store deleted")
}

func TestDeleteStoreRequiresFranchiseRole(t *testing.T) {
	diner, _, _ := registerDiner(t)
	_, email, _ := registerDiner(t)
	f := createFranchise(t, email)

	rec := do(t, http.MethodDelete, fmt.Sprintf("/api/franchise/%d/store/1", f.ID), diner.Token, nil)
	wantStatus(t, rec, http.StatusForbidden)
	wantMessage(t, rec, "unable to delete a store")
}

func TestListForUser(t *testing.T) {
	_, email, password := registerDiner(t)
	f := createFranchise(t, email)
	franchisee := login(t, email, password)

	rec := do(t, http.MethodGet, fmt.Sprintf("/api/franchise/%d", franchisee.User.ID), franchisee.Token, nil)
	wantStatus(t, rec, http.StatusOK)

	var franchises []models.Franchise
	decode(t, rec, &franchises)
	if len(franchises) != 1 || franchises[0].ID != f.ID {
		t.Errorf("expected exactly the administered franchise, got %+v", franchises)
	}
}

func TestListForOtherUserIsEmpty(t *testing.T) {
	_, email, _ := registerDiner(t)
	createFranchise(t, email)
	stranger, _, _ := registerDiner(t)

	// Asking about someone else's franchises yields an empty list, not an
	// error and not their data.
	owner := login(t, email, "diner-pass")
	rec := do(t, http.MethodGet, fmt.Sprintf("/api/franchise/%d", owner.User.ID), stranger.Token, nil)
	wantStatus(t, rec, http.StatusOK)

	var franchises []models.Franchise
	decode(t, rec, &franchises)
	if len(franchises) != 0 {
		t.Errorf("expected no franchises, got %+v", franchises)
	}
}
