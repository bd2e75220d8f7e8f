package services

import (
	"context"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// Warehouses is the client of the warehouses microservice. The coordinator
// only touches its role table.
type Warehouses interface {
	CreateRole(ctx context.Context, role models.NewRole) (*models.NewRole, error)
	DeleteRole(ctx context.Context, id models.RoleEntryID) error
}

type warehousesClient struct {
	roleOps
}
