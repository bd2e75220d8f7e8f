package services

import (
	"context"
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// Orders is the client of the orders microservice.
type Orders interface {
	CreateFromCart(ctx context.Context, input models.ConvertCart) ([]models.Order, error)
	CreateBuyNow(ctx context.Context, input models.BuyNow, conversionID models.ConversionID) ([]models.Order, error)
	RevertBuyNow(ctx context.Context, conversionID models.ConversionID) error
	DeleteByCustomer(ctx context.Context, customerID models.UserID) error
	CreateRole(ctx context.Context, role models.NewRole) (*models.NewRole, error)
	DeleteRole(ctx context.Context, id models.RoleEntryID) error

	UpdateStates(ctx context.Context, input models.OrdersUpdateState) ([]models.Order, error)
	SetOrderState(ctx context.Context, slug models.OrderSlug, input models.OrderStateUpdate) (*models.Order, error)
	SetPaymentState(ctx context.Context, id models.OrderID, input models.OrderPaymentStateUpdate) error

	// Cloned returns a fresh handle with the same initiator, WithSuperadmin
	// and WithUser re-authenticated ones.
	Cloned() Orders
	WithSuperadmin() Orders
	WithUser(id models.UserID) Orders
}

type ordersClient struct {
	roleOps
	f *Factory
}

func (c ordersClient) CreateFromCart(ctx context.Context, input models.ConvertCart) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodPost, "/orders/create_from_cart", input, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c ordersClient) CreateBuyNow(ctx context.Context, input models.BuyNow, conversionID models.ConversionID) ([]models.Order, error) {
	body := models.CreateBuyNow{ConversionID: conversionID, BuyNow: input}
	var out []models.Order
	if err := c.do(ctx, http.MethodPost, "/orders/create_buy_now", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c ordersClient) RevertBuyNow(ctx context.Context, conversionID models.ConversionID) error {
	body := struct {
		ConversionID models.ConversionID `json:"conversion_id"`
	}{ConversionID: conversionID}
	return c.do(ctx, http.MethodPost, "/orders/create_buy_now/revert", body, nil)
}

func (c ordersClient) DeleteByCustomer(ctx context.Context, customerID models.UserID) error {
	return c.do(ctx, http.MethodDelete, "/orders/by-customer-id/"+customerID.String(), nil, nil)
}

func (c ordersClient) UpdateStates(ctx context.Context, input models.OrdersUpdateState) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodPost, "/orders/update_state", input, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c ordersClient) SetOrderState(ctx context.Context, slug models.OrderSlug, input models.OrderStateUpdate) (*models.Order, error) {
	var out *models.Order
	if err := c.do(ctx, http.MethodPost, "/orders/"+slug.String()+"/set_state", input, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c ordersClient) SetPaymentState(ctx context.Context, id models.OrderID, input models.OrderPaymentStateUpdate) error {
	return c.do(ctx, http.MethodPost, "/orders/"+string(id)+"/set_payment_state", input, nil)
}

func (c ordersClient) Cloned() Orders {
	return c
}

func (c ordersClient) WithSuperadmin() Orders {
	sa := models.Superadmin()
	return c.f.Orders(&sa)
}

func (c ordersClient) WithUser(id models.UserID) Orders {
	ini := models.ForUser(id)
	return c.f.Orders(&ini)
}
