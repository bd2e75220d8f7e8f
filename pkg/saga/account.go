package saga

import (
	"context"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/services"
)

// accountStage enumerates the forward stages of the account workflow.
type accountStage int

const (
	accountCreation accountStage = iota
	accountUsersRole
	accountStoresRole
	accountBillingRole
	accountDeliveryRole
	accountUserMerchant
)

func (s accountStage) String() string {
	switch s {
	case accountCreation:
		return "account_creation"
	case accountUsersRole:
		return "users_role_set"
	case accountStoresRole:
		return "stores_role_set"
	case accountBillingRole:
		return "billing_role_set"
	case accountDeliveryRole:
		return "delivery_role_set"
	case accountUserMerchant:
		return "user_merchant_creation"
	default:
		return "unknown"
	}
}

// accountEntry is one operation log record of the account workflow. The
// id fields carry what the compensation for that stage needs.
type accountEntry struct {
	stage  accountStage
	phase  Phase
	sagaID models.SagaID
	userID models.UserID
	roleID models.RoleEntryID
}

// accountFields is the validation allow-list of the account workflow.
var accountFields = []string{"email", "password"}

// CreateAccount creates a user account across the platform: the profile
// at the users service, the default user role at every service keeping a
// role table, and the user's merchant account at billing. All forward
// calls run as the superadmin; there is no authenticated caller yet.
type CreateAccount struct {
	core
	users    services.Users
	stores   services.Stores
	billing  services.Billing
	delivery services.Delivery
	notify   services.Notifications

	input models.SagaCreateProfile
	olog  opLog[accountEntry]
}

// NewCreateAccount prepares an account saga for one request.
func NewCreateAccount(d Deps, input models.SagaCreateProfile) *CreateAccount {
	sagaID := models.NewSagaID()
	f := d.Services
	return &CreateAccount{
		core:     newCore(WorkflowCreateAccount, sagaID, d),
		users:    f.Users(&superadmin),
		stores:   f.Stores(&superadmin),
		billing:  f.Billing(&superadmin),
		delivery: f.Delivery(&superadmin),
		notify:   f.Notifications(&superadmin),
		input:    input,
	}
}

// Run executes the workflow. On forward failure every started stage is
// compensated in reverse order and the original error is returned after
// passing the validation mapper.
func (s *CreateAccount) Run(ctx context.Context) (*models.User, error) {
	ctx, span := startSagaSpan(ctx, s.workflow, s.sagaID)
	defer span.End()

	s.begin(ctx)
	user, err := s.forward(ctx)
	if err != nil {
		s.rollback(ctx)
		s.finish(ctx, err)
		return nil, errs.MapValidation(err, accountFields)
	}
	s.sendWelcome(ctx, user)
	s.finish(ctx, nil)
	return user, nil
}

func (s *CreateAccount) forward(ctx context.Context) (*models.User, error) {
	var user *models.User
	err := s.stage(ctx, accountEntry{stage: accountCreation, sagaID: s.sagaID}, func(ctx context.Context) error {
		created, err := s.users.CreateUser(ctx, s.createUserInput())
		if err == nil {
			user = created
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	grants := []struct {
		stage  accountStage
		create func(context.Context, models.NewRole) (*models.NewRole, error)
	}{
		{accountUsersRole, s.users.CreateRole},
		{accountStoresRole, s.stores.CreateRole},
		{accountBillingRole, s.billing.CreateRole},
		{accountDeliveryRole, s.delivery.CreateRole},
	}
	for _, g := range grants {
		roleID := models.NewRoleEntryID()
		role := models.UserRole(roleID, user.ID)
		err := s.stage(ctx, accountEntry{stage: g.stage, roleID: roleID}, func(ctx context.Context) error {
			_, err := g.create(ctx, role)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	err = s.stage(ctx, accountEntry{stage: accountUserMerchant, userID: user.ID}, func(ctx context.Context) error {
		_, err := s.billing.CreateUserMerchant(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// stage records the started entry, runs fn under the shared stage
// bookkeeping and records the completion.
func (s *CreateAccount) stage(ctx context.Context, e accountEntry, fn func(context.Context) error) error {
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
func (s *CreateAccount) rollback(ctx context.Context) {
	for _, e := range s.olog.reversed() {
		if e.phase != PhaseStarted {
			continue
		}
		switch e.stage {
		case accountUserMerchant:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.billing.DeleteUserMerchant(ctx, e.userID)
			})
		case accountDeliveryRole:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.delivery.DeleteRole(ctx, e.roleID)
			})
		case accountBillingRole:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.billing.DeleteRole(ctx, e.roleID)
			})
		case accountStoresRole:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.stores.DeleteRole(ctx, e.roleID)
			})
		case accountUsersRole:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.users.DeleteRole(ctx, e.roleID)
			})
		case accountCreation:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.users.DeleteUserBySaga(ctx, e.sagaID)
			})
		}
	}
}

// sendWelcome pushes the new contact to the CRM gateway. Best effort: a
// failure is logged and never fails the saga.
func (s *CreateAccount) sendWelcome(ctx context.Context, user *models.User) {
	contact := models.NewCRMContact{UserID: user.ID, Email: user.Email}
	if err := s.notify.AccountCreated(ctx, contact); err != nil {
		s.log.WarnContext(ctx, "crm contact notification failed", "user_id", user.ID, "error", err)
	}
}

// createUserInput stamps the saga id into the profile request so the
// users service keys the new account by it.
func (s *CreateAccount) createUserInput() models.CreateUser {
	identity := s.input.Identity
	identity.SagaID = s.sagaID

	req := models.CreateUser{Identity: identity, Device: s.input.Device}
	if s.input.User != nil {
		u := *s.input.User
		u.SagaID = s.sagaID
		if u.Email == "" {
			u.Email = identity.Email
		}
		req.User = &u
	}
	return req
}
