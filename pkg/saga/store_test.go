package saga

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/services"
)

func storeInput() models.NewStore {
	return models.NewStore{
		Name:             []models.Translation{{Lang: "en", Text: "Tea Shop"}},
		UserID:           17,
		ShortDescription: []models.Translation{{Lang: "en", Text: "fine teas"}},
		Slug:             "tea-shop",
		DefaultLanguage:  "en",
	}
}

func TestCreateStoreHappy(t *testing.T) {
	g := newGateway(t)
	caller := models.ForUser(17)

	s := NewCreateStore(testDeps(t, g), &caller, storeInput())
	store, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if store.ID != 7 || store.UserID != 17 {
		t.Fatalf("store = %+v, want id 7 owned by 17", store)
	}

	want := []string{
		"stores POST /stores",
		"warehouses POST /roles",
		"orders POST /roles",
		"billing POST /roles",
		"billing POST /merchants/store",
	}
	if got := g.signatures(); !reflect.DeepEqual(got, want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}

	calls := g.recorded()
	if calls[0].auth != "17" {
		t.Fatalf("store creation sent Authorization %q, want the caller", calls[0].auth)
	}
	for _, c := range calls[1:] {
		if c.auth != "1" {
			t.Fatalf("%s sent Authorization %q, want superadmin", c.signature(), c.auth)
		}
	}

	var role models.NewRole
	if err := json.Unmarshal(calls[1].body, &role); err != nil {
		t.Fatalf("decode role body: %v", err)
	}
	if role.Name != models.RoleStoreManager || role.UserID != 17 {
		t.Fatalf("unexpected role grant %+v", role)
	}
	if scope, ok := role.Data.(float64); !ok || scope != 7 {
		t.Fatalf("role scope = %v, want store id 7", role.Data)
	}

	var merchant models.CreateStoreMerchant
	if err := json.Unmarshal(calls[4].body, &merchant); err != nil {
		t.Fatalf("decode merchant body: %v", err)
	}
	if merchant.ID != 7 {
		t.Fatalf("merchant store id = %d, want 7", merchant.ID)
	}
}

func TestCreateStoreValidationFailure(t *testing.T) {
	g := newGateway(t)
	g.failWith(services.ServiceStores, http.MethodPost, "/stores", http.StatusBadRequest,
		`{"code":400,"description":"validation error","payload":{"slug":[{"code":"unique","message":"taken"}],"user_id":[{"code":"x","message":"hidden"}]}}`)
	caller := models.ForUser(17)

	s := NewCreateStore(testDeps(t, g), &caller, storeInput())
	_, err := s.Run(context.Background())
	if err == nil {
		t.Fatal("Run() succeeded, want failure")
	}
	var ce *errs.Error
	if !errors.As(err, &ce) || ce.Kind() != errs.KindValidate {
		t.Fatalf("error %v is not a validation failure", err)
	}
	fields := ce.Fields()
	if len(fields["slug"]) != 1 || fields["slug"][0].Message != "taken" {
		t.Fatalf("fields = %v, want slug taken", fields)
	}
	if _, ok := fields["user_id"]; ok {
		t.Fatal("field outside the allow-list leaked through")
	}
	if ce.Kind().HTTPStatus() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", ce.Kind().HTTPStatus())
	}

	want := []string{
		"stores POST /stores",
		"stores DELETE /stores/by_user_id/17",
	}
	if got := g.signatures(); !reflect.DeepEqual(got, want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	if comp := g.recorded()[1]; comp.auth != "1" {
		t.Fatalf("compensation sent Authorization %q, want superadmin", comp.auth)
	}
}

func TestCreateStoreCompensatesRoleFailure(t *testing.T) {
	g := newGateway(t)
	g.failWith(services.ServiceBilling, http.MethodPost, "/roles", http.StatusInternalServerError,
		`{"code":500,"description":"role table locked"}`)
	caller := models.ForUser(17)

	s := NewCreateStore(testDeps(t, g), &caller, storeInput())
	_, err := s.Run(context.Background())
	if err == nil {
		t.Fatal("Run() succeeded, want failure")
	}

	roles := g.roleIDs(t)
	if len(roles) != 3 {
		t.Fatalf("role creations = %d, want 3", len(roles))
	}

	// The billing grant start was logged before the call failed, so its
	// delete is attempted too.
	want := []string{
		"stores POST /stores",
		"warehouses POST /roles",
		"orders POST /roles",
		"billing POST /roles",
		"billing DELETE /roles/by-id/" + roles[2],
		"orders DELETE /roles/by-id/" + roles[1],
		"warehouses DELETE /roles/by-id/" + roles[0],
		"stores DELETE /stores/by_user_id/17",
	}
	if got := g.signatures(); !reflect.DeepEqual(got, want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
}
