package services

import (
	"context"
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// Notifications is the client of the notifications gateway. All of its
// operations are best-effort: the sagas log failures and move on.
type Notifications interface {
	AccountCreated(ctx context.Context, contact models.NewCRMContact) error
	OrderCreatedForUser(ctx context.Context, n models.OrderCreatedForUser) error
	OrderCreatedForStore(ctx context.Context, n models.OrderCreatedForStore) error
}

type notificationsClient struct {
	caller
}

func (c notificationsClient) AccountCreated(ctx context.Context, contact models.NewCRMContact) error {
	return c.do(ctx, http.MethodPost, "/crm/contacts", contact, nil)
}

func (c notificationsClient) OrderCreatedForUser(ctx context.Context, n models.OrderCreatedForUser) error {
	return c.do(ctx, http.MethodPost, "/orders/create/user", n, nil)
}

func (c notificationsClient) OrderCreatedForStore(ctx context.Context, n models.OrderCreatedForStore) error {
	return c.do(ctx, http.MethodPost, "/orders/create/store", n, nil)
}
