package services

import (
	"context"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// Delivery is the client of the delivery microservice. The coordinator
// only touches its role table.
type Delivery interface {
	CreateRole(ctx context.Context, role models.NewRole) (*models.NewRole, error)
	DeleteRole(ctx context.Context, id models.RoleEntryID) error
}

type deliveryClient struct {
	roleOps
}
