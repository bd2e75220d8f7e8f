package services

import (
	"context"
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// Stores is the client of the stores microservice, which also owns base
// products and coupons.
type Stores interface {
	CreateStore(ctx context.Context, store models.NewStore) (*models.Store, error)
	DeleteStoreByUser(ctx context.Context, userID models.UserID) error
	CreateRole(ctx context.Context, role models.NewRole) (*models.NewRole, error)
	DeleteRole(ctx context.Context, id models.RoleEntryID) error

	SetStoreModeration(ctx context.Context, payload models.StoreModerate) (*models.Store, error)
	GetStoreModeration(ctx context.Context, id models.StoreID) (*models.Store, error)
	DeactivateStore(ctx context.Context, id models.StoreID) (*models.Store, error)
	SetBaseProductModeration(ctx context.Context, payload models.BaseProductModerate) (*models.BaseProduct, error)
	GetBaseProductModeration(ctx context.Context, id models.BaseProductID) (*models.BaseProduct, error)
	DeactivateBaseProduct(ctx context.Context, id models.BaseProductID) (*models.BaseProduct, error)

	AddCouponUsage(ctx context.Context, couponID models.CouponID, code string, userID models.UserID) error
}

type storesClient struct {
	roleOps
}

func (c storesClient) CreateStore(ctx context.Context, store models.NewStore) (*models.Store, error) {
	var out models.Store
	if err := c.do(ctx, http.MethodPost, "/stores", store, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c storesClient) DeleteStoreByUser(ctx context.Context, userID models.UserID) error {
	return c.do(ctx, http.MethodDelete, "/stores/by_user_id/"+userID.String(), nil, nil)
}

func (c storesClient) SetStoreModeration(ctx context.Context, payload models.StoreModerate) (*models.Store, error) {
	var out models.Store
	if err := c.do(ctx, http.MethodPost, "/stores/moderate", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c storesClient) GetStoreModeration(ctx context.Context, id models.StoreID) (*models.Store, error) {
	var out models.Store
	if err := c.do(ctx, http.MethodGet, "/stores/"+id.String()+"/moderation", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c storesClient) DeactivateStore(ctx context.Context, id models.StoreID) (*models.Store, error) {
	var out models.Store
	if err := c.do(ctx, http.MethodPost, "/stores/"+id.String()+"/deactivate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c storesClient) SetBaseProductModeration(ctx context.Context, payload models.BaseProductModerate) (*models.BaseProduct, error) {
	var out models.BaseProduct
	if err := c.do(ctx, http.MethodPost, "/base_products/moderate", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c storesClient) GetBaseProductModeration(ctx context.Context, id models.BaseProductID) (*models.BaseProduct, error) {
	var out models.BaseProduct
	if err := c.do(ctx, http.MethodGet, "/base_products/"+id.String()+"/moderation", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c storesClient) DeactivateBaseProduct(ctx context.Context, id models.BaseProductID) (*models.BaseProduct, error) {
	var out models.BaseProduct
	if err := c.do(ctx, http.MethodPost, "/base_products/"+id.String()+"/deactivate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c storesClient) AddCouponUsage(ctx context.Context, couponID models.CouponID, code string, userID models.UserID) error {
	body := struct {
		Code string `json:"code"`
	}{Code: code}
	path := "/coupons/" + couponID.String() + "/used_by/" + userID.String()
	return c.do(ctx, http.MethodPost, path, body, nil)
}
