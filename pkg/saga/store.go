package saga

import (
	"context"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/services"
)

// storeStage enumerates the forward stages of the store workflow.
type storeStage int

const (
	storeCreation storeStage = iota
	storeWarehousesRole
	storeOrdersRole
	storeBillingRole
	storeMerchant
)

func (s storeStage) String() string {
	switch s {
	case storeCreation:
		return "store_creation"
	case storeWarehousesRole:
		return "warehouses_role_set"
	case storeOrdersRole:
		return "orders_role_set"
	case storeBillingRole:
		return "billing_role_set"
	case storeMerchant:
		return "store_merchant_creation"
	default:
		return "unknown"
	}
}

// storeEntry is one operation log record of the store workflow.
type storeEntry struct {
	stage   storeStage
	phase   Phase
	userID  models.UserID
	storeID models.StoreID
	roleID  models.RoleEntryID
}

// storeFields is the validation allow-list of the store workflow.
var storeFields = []string{
	"name", "short_description", "long_description", "slug",
	"phone", "email", "default_language", "store",
}

// CreateStore creates a store for its owner: the store record at the
// stores service, store manager grants at warehouses, orders and billing,
// and the store's merchant account. The store itself is created with the
// caller's rights; the grants and the merchant require the superadmin,
// as do all compensations.
type CreateStore struct {
	core
	stores     services.Stores
	storesSA   services.Stores
	warehouses services.Warehouses
	orders     services.Orders
	billing    services.Billing

	input models.NewStore
	olog  opLog[storeEntry]
}

// NewCreateStore prepares a store saga acting as caller for one request.
func NewCreateStore(d Deps, caller *models.Initiator, input models.NewStore) *CreateStore {
	sagaID := models.NewSagaID()
	f := d.Services
	return &CreateStore{
		core:       newCore(WorkflowCreateStore, sagaID, d),
		stores:     f.Stores(caller),
		storesSA:   f.Stores(&superadmin),
		warehouses: f.Warehouses(&superadmin),
		orders:     f.Orders(&superadmin),
		billing:    f.Billing(&superadmin),
		input:      input,
	}
}

// Run executes the workflow. On forward failure every started stage is
// compensated in reverse order and the original error is returned after
// passing the validation mapper.
func (s *CreateStore) Run(ctx context.Context) (*models.Store, error) {
	ctx, span := startSagaSpan(ctx, s.workflow, s.sagaID)
	defer span.End()

	s.begin(ctx)
	store, err := s.forward(ctx)
	if err != nil {
		s.rollback(ctx)
		s.finish(ctx, err)
		return nil, errs.MapValidation(err, storeFields)
	}
	s.finish(ctx, nil)
	return store, nil
}

func (s *CreateStore) forward(ctx context.Context) (*models.Store, error) {
	var store *models.Store
	err := s.stage(ctx, storeEntry{stage: storeCreation, userID: s.input.UserID}, func(ctx context.Context) error {
		created, err := s.stores.CreateStore(ctx, s.input)
		if err == nil {
			store = created
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	grants := []struct {
		stage  storeStage
		create func(context.Context, models.NewRole) (*models.NewRole, error)
	}{
		{storeWarehousesRole, s.warehouses.CreateRole},
		{storeOrdersRole, s.orders.CreateRole},
		{storeBillingRole, s.billing.CreateRole},
	}
	for _, g := range grants {
		roleID := models.NewRoleEntryID()
		role := models.StoreManagerRole(roleID, store.UserID, store.ID)
		err := s.stage(ctx, storeEntry{stage: g.stage, roleID: roleID}, func(ctx context.Context) error {
			_, err := g.create(ctx, role)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	err = s.stage(ctx, storeEntry{stage: storeMerchant, storeID: store.ID}, func(ctx context.Context) error {
		_, err := s.billing.CreateStoreMerchant(ctx, store.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// stage records the started entry, runs fn under the shared stage
// bookkeeping and records the completion.
func (s *CreateStore) stage(ctx context.Context, e storeEntry, fn func(context.Context) error) error {
	e.phase = PhaseStarted
	s.olog.record(e)
	if err := s.runStage(ctx, e.stage.String(), fn); err != nil {
		return err
	}
	e.phase = PhaseCompleted
	s.olog.record(e)
	return nil
}

// rollback compensates every started stage in reverse insertion order.
func (s *CreateStore) rollback(ctx context.Context) {
	for _, e := range s.olog.reversed() {
		if e.phase != PhaseStarted {
			continue
		}
		switch e.stage {
		case storeMerchant:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.billing.DeleteStoreMerchant(ctx, e.storeID)
			})
		case storeBillingRole:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.billing.DeleteRole(ctx, e.roleID)
			})
		case storeOrdersRole:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.orders.DeleteRole(ctx, e.roleID)
			})
		case storeWarehousesRole:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.warehouses.DeleteRole(ctx, e.roleID)
			})
		case storeCreation:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.storesSA.DeleteStoreByUser(ctx, e.userID)
			})
		}
	}
}
