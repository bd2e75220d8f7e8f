package services

import (
	"context"
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// Billing is the client of the billing microservice, which owns merchant
// accounts and invoices.
type Billing interface {
	CreateRole(ctx context.Context, role models.NewRole) (*models.NewRole, error)
	DeleteRole(ctx context.Context, id models.RoleEntryID) error

	CreateUserMerchant(ctx context.Context, userID models.UserID) (*models.Merchant, error)
	DeleteUserMerchant(ctx context.Context, userID models.UserID) error
	CreateStoreMerchant(ctx context.Context, storeID models.StoreID) (*models.Merchant, error)
	DeleteStoreMerchant(ctx context.Context, storeID models.StoreID) error

	CreateInvoice(ctx context.Context, input models.CreateInvoice) (*models.Invoice, error)
	RevertInvoice(ctx context.Context, sagaID models.SagaID) error
}

type billingClient struct {
	roleOps
}

func (c billingClient) CreateUserMerchant(ctx context.Context, userID models.UserID) (*models.Merchant, error) {
	var out models.Merchant
	if err := c.do(ctx, http.MethodPost, "/merchants/user", models.CreateUserMerchant{ID: userID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c billingClient) DeleteUserMerchant(ctx context.Context, userID models.UserID) error {
	return c.do(ctx, http.MethodDelete, "/merchants/user/"+userID.String(), nil, nil)
}

func (c billingClient) CreateStoreMerchant(ctx context.Context, storeID models.StoreID) (*models.Merchant, error) {
	var out models.Merchant
	if err := c.do(ctx, http.MethodPost, "/merchants/store", models.CreateStoreMerchant{ID: storeID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c billingClient) DeleteStoreMerchant(ctx context.Context, storeID models.StoreID) error {
	return c.do(ctx, http.MethodDelete, "/merchants/store/"+storeID.String(), nil, nil)
}

func (c billingClient) CreateInvoice(ctx context.Context, input models.CreateInvoice) (*models.Invoice, error) {
	var out models.Invoice
	if err := c.do(ctx, http.MethodPost, "/invoices", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c billingClient) RevertInvoice(ctx context.Context, sagaID models.SagaID) error {
	return c.do(ctx, http.MethodDelete, "/invoices/by-saga-id/"+sagaID.String(), nil, nil)
}
