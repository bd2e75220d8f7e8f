package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// Users is the client of the users microservice. Besides the account and
// role operations it forwards the token-driven self-service endpoints
// verbatim, body in, body out.
type Users interface {
	CreateUser(ctx context.Context, input models.CreateUser) (*models.User, error)
	DeleteUserBySaga(ctx context.Context, sagaID models.SagaID) error
	CreateRole(ctx context.Context, role models.NewRole) (*models.NewRole, error)
	DeleteRole(ctx context.Context, id models.RoleEntryID) error

	EmailVerify(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	EmailVerifyApply(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	ResetPassword(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	ResetPasswordApply(ctx context.Context, body json.RawMessage) (json.RawMessage, error)

	// Cloned returns a fresh handle with the same initiator, WithSuperadmin
	// and WithUser re-authenticated ones.
	Cloned() Users
	WithSuperadmin() Users
	WithUser(id models.UserID) Users
}

type usersClient struct {
	roleOps
	f *Factory
}

func (c usersClient) CreateUser(ctx context.Context, input models.CreateUser) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/users", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c usersClient) DeleteUserBySaga(ctx context.Context, sagaID models.SagaID) error {
	return c.do(ctx, http.MethodDelete, "/user_by_saga_id/"+sagaID.String(), nil, nil)
}

func (c usersClient) EmailVerify(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return c.forward(ctx, "/email_verify", body)
}

func (c usersClient) EmailVerifyApply(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return c.forward(ctx, "/email_verify_apply", body)
}

func (c usersClient) ResetPassword(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return c.forward(ctx, "/reset_password", body)
}

func (c usersClient) ResetPasswordApply(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return c.forward(ctx, "/reset_password_apply", body)
}

func (c usersClient) forward(ctx context.Context, path string, body json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c usersClient) Cloned() Users {
	return c
}

func (c usersClient) WithSuperadmin() Users {
	sa := models.Superadmin()
	return c.f.Users(&sa)
}

func (c usersClient) WithUser(id models.UserID) Users {
	ini := models.ForUser(id)
	return c.f.Users(&ini)
}
