package services

import (
	"context"
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// roleOps is the role table shared by the users, stores, orders, billing,
// warehouses and delivery services. Every service keeps its own copy of a
// grant, addressed by the entry id the coordinator minted.
type roleOps struct {
	caller
}

// CreateRole writes a role grant into the service's role table.
func (r roleOps) CreateRole(ctx context.Context, role models.NewRole) (*models.NewRole, error) {
	var out models.NewRole
	if err := r.do(ctx, http.MethodPost, "/roles", role, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRole removes a grant by the entry id it was created with.
func (r roleOps) DeleteRole(ctx context.Context, id models.RoleEntryID) error {
	return r.do(ctx, http.MethodDelete, "/roles/by-id/"+id.String(), nil, nil)
}
