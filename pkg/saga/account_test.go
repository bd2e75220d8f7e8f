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

func profileInput() models.SagaCreateProfile {
	pwd := "p"
	return models.SagaCreateProfile{
		Identity: models.NewIdentity{
			Email:    "a@b",
			Password: &pwd,
			Provider: models.ProviderEmail,
			SagaID:   "caller-supplied-and-ignored",
		},
	}
}

func TestCreateAccountHappy(t *testing.T) {
	g := newGateway(t)
	sink := &eventSink{}
	deps := testDeps(t, g)
	deps.Observer = sink

	s := NewCreateAccount(deps, profileInput())
	user, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if user.ID != 42 {
		t.Fatalf("user id = %d, want 42", user.ID)
	}
	if user.Email != "a@b" {
		t.Fatalf("user email = %q, want a@b", user.Email)
	}

	want := []string{
		"users POST /users",
		"users POST /roles",
		"stores POST /roles",
		"billing POST /roles",
		"delivery POST /roles",
		"billing POST /merchants/user",
		"notifications POST /crm/contacts",
	}
	if got := g.signatures(); !reflect.DeepEqual(got, want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}

	if n := len(s.olog.entries); n != 12 {
		t.Fatalf("operation log length = %d, want 12", n)
	}

	calls := g.recorded()
	var created models.CreateUser
	if err := json.Unmarshal(calls[0].body, &created); err != nil {
		t.Fatalf("decode create user body: %v", err)
	}
	if created.Identity.SagaID != s.SagaID() {
		t.Fatalf("identity saga id = %q, want %q", created.Identity.SagaID, s.SagaID())
	}
	if created.Identity.SagaID == "caller-supplied-and-ignored" {
		t.Fatal("caller-supplied saga id was not replaced")
	}

	var role models.NewRole
	if err := json.Unmarshal(calls[1].body, &role); err != nil {
		t.Fatalf("decode role body: %v", err)
	}
	if role.Name != models.RoleUser || role.UserID != 42 || role.Data != nil {
		t.Fatalf("unexpected role grant %+v", role)
	}

	for _, c := range calls {
		if c.auth != "1" {
			t.Fatalf("%s sent Authorization %q, want superadmin", c.signature(), c.auth)
		}
	}

	if got := sink.ofType(EventSagaCompleted); len(got) != 1 {
		t.Fatalf("saga_completed events = %d, want 1", len(got))
	}
	if got := sink.ofType(EventStageCompleted); len(got) != 6 {
		t.Fatalf("stage_completed events = %d, want 6", len(got))
	}
}

func TestCreateAccountCompensatesMerchantFailure(t *testing.T) {
	g := newGateway(t)
	g.failWith(services.ServiceBilling, http.MethodPost, "/merchants/user", http.StatusInternalServerError,
		`{"code":500,"description":"merchant ledger down"}`)
	sink := &eventSink{}
	deps := testDeps(t, g)
	deps.Observer = sink

	s := NewCreateAccount(deps, profileInput())
	_, err := s.Run(context.Background())
	if err == nil {
		t.Fatal("Run() succeeded, want failure")
	}
	var de *errs.DownstreamError
	if !errors.As(err, &de) || de.Status != http.StatusInternalServerError {
		t.Fatalf("error %v does not carry the downstream 500", err)
	}

	roles := g.roleIDs(t)
	if len(roles) != 4 {
		t.Fatalf("role creations = %d, want 4", len(roles))
	}

	want := []string{
		"users POST /users",
		"users POST /roles",
		"stores POST /roles",
		"billing POST /roles",
		"delivery POST /roles",
		"billing POST /merchants/user",
		"billing DELETE /merchants/user/42",
		"delivery DELETE /roles/by-id/" + roles[3],
		"billing DELETE /roles/by-id/" + roles[2],
		"stores DELETE /roles/by-id/" + roles[1],
		"users DELETE /roles/by-id/" + roles[0],
		"users DELETE /user_by_saga_id/" + s.SagaID().String(),
	}
	if got := g.signatures(); !reflect.DeepEqual(got, want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}

	for _, c := range g.recorded() {
		if c.method == http.MethodDelete && c.auth != "1" {
			t.Fatalf("compensation %s sent Authorization %q, want superadmin", c.signature(), c.auth)
		}
		if c.path == "/crm/contacts" {
			t.Fatal("failed saga still notified the CRM")
		}
	}

	comps := sink.ofType(EventCompensationStarted)
	wantStages := []string{
		"user_merchant_creation", "delivery_role_set", "billing_role_set",
		"stores_role_set", "users_role_set", "account_creation",
	}
	if len(comps) != len(wantStages) {
		t.Fatalf("compensation events = %d, want %d", len(comps), len(wantStages))
	}
	for i, e := range comps {
		if e.Stage != wantStages[i] {
			t.Fatalf("compensation %d = %q, want %q", i, e.Stage, wantStages[i])
		}
	}
	if got := sink.ofType(EventCompensationCompleted); len(got) != 6 {
		t.Fatalf("completed compensations = %d, want 6", len(got))
	}
}

func TestCreateAccountFailsAtFirstStage(t *testing.T) {
	g := newGateway(t)
	g.failWith(services.ServiceUsers, http.MethodPost, "/users", http.StatusBadRequest,
		`{"code":400,"description":"email taken","payload":{"email":[{"code":"unique","message":"already registered"}],"internal":[{"code":"x","message":"hidden"}]}}`)

	s := NewCreateAccount(testDeps(t, g), profileInput())
	_, err := s.Run(context.Background())
	if err == nil {
		t.Fatal("Run() succeeded, want failure")
	}
	if kind := errs.KindOf(err); kind != errs.KindValidate {
		t.Fatalf("kind = %v, want validate", kind)
	}
	var ce *errs.Error
	if !errors.As(err, &ce) {
		t.Fatalf("error %v is not classified", err)
	}
	fields := ce.Fields()
	if len(fields["email"]) != 1 || fields["email"][0].Code != "unique" {
		t.Fatalf("fields = %v, want email unique", fields)
	}
	if _, ok := fields["internal"]; ok {
		t.Fatal("field outside the allow-list leaked through")
	}

	// The creation start was logged, so the compensation still deletes
	// whatever half-created account the saga id may refer to.
	want := []string{
		"users POST /users",
		"users DELETE /user_by_saga_id/" + s.SagaID().String(),
	}
	if got := g.signatures(); !reflect.DeepEqual(got, want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
}
