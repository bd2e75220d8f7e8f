package handlers

import (
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/response"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/saga"
)

// SagaHandler runs the multi-stage workflows. Each request gets a fresh
// workflow instance over the per-request downstream stack; the workflow
// itself owns compensation and error shaping, so the handler only
// decodes, runs and renders.
type SagaHandler struct {
	ds      *Downstream
	log     logger.Logger
	obs     saga.Observer
	metrics saga.MetricsRecorder
}

// NewSagaHandler creates a saga handler.
func NewSagaHandler(ds *Downstream, log logger.Logger, obs saga.Observer, metrics saga.MetricsRecorder) *SagaHandler {
	return &SagaHandler{
		ds:      ds,
		log:     log,
		obs:     obs,
		metrics: metrics,
	}
}

// deps assembles the workflow dependencies for one inbound request.
func (h *SagaHandler) deps(r *http.Request) saga.Deps {
	return saga.Deps{
		Services: h.ds.Factory(r),
		Logger:   h.log,
		Observer: h.obs,
		Metrics:  h.metrics,
	}
}

// CreateAccount handles POST /create_account
// @Summary Create an account
// @Description Run the account creation workflow: user profile, default role and merchant account, then a verification email.
// @Tags workflows
// @Accept json
// @Produce json
// @Param profile body models.SagaCreateProfile true "Profile to create"
// @Success 200 {object} models.User "Created user"
// @Failure 400 {object} response.Failure "Validation rejected by the users service"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Failure 500 {object} response.Failure "Workflow failed and was compensated"
// @Router /create_account [post]
func (h *SagaHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var input models.SagaCreateProfile
	if err := decode(r, &input); err != nil {
		response.RenderError(w, err)
		return
	}

	user, err := saga.NewCreateAccount(h.deps(r), input).Run(r.Context())
	if err != nil {
		response.RenderError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, user)
}

// CreateStore handles POST /create_store
// @Summary Create a store
// @Description Run the store creation workflow: the store itself, the owner's store-manager roles and a merchant account.
// @Tags workflows
// @Accept json
// @Produce json
// @Param store body models.NewStore true "Store to create"
// @Success 200 {object} models.Store "Created store"
// @Failure 400 {object} response.Failure "Validation rejected by the stores service"
// @Failure 403 {object} response.Failure "Caller may not create this store"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Failure 500 {object} response.Failure "Workflow failed and was compensated"
// @Router /create_store [post]
func (h *SagaHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var input models.NewStore
	if err := decode(r, &input); err != nil {
		response.RenderError(w, err)
		return
	}

	store, err := saga.NewCreateStore(h.deps(r), initiator(r), input).Run(r.Context())
	if err != nil {
		response.RenderError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, store)
}

// CreateOrder handles POST /create_order
// @Summary Create orders from a cart
// @Description Run the order creation workflow: convert the cart into orders, invoice them, then send out notifications.
// @Tags workflows
// @Accept json
// @Produce json
// @Param cart body models.ConvertCart true "Cart conversion request"
// @Success 200 {object} models.BillingOrders "Created orders with the payment URL"
// @Failure 400 {object} response.Failure "Validation rejected by the orders service"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Failure 500 {object} response.Failure "Workflow failed and was compensated"
// @Router /create_order [post]
func (h *SagaHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input models.ConvertCart
	if err := decode(r, &input); err != nil {
		response.RenderError(w, err)
		return
	}

	orders, err := saga.NewCreateOrder(h.deps(r), initiator(r), input).Run(r.Context())
	if err != nil {
		response.RenderError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, orders)
}

// BuyNow handles POST /buy_now
// @Summary Buy a single product
// @Description Run the buy-now workflow: create the order directly from a product, invoice it, then send out notifications.
// @Tags workflows
// @Accept json
// @Produce json
// @Param order body models.BuyNow true "Buy-now request"
// @Success 200 {object} models.BillingOrders "Created order with the payment URL"
// @Failure 400 {object} response.Failure "Validation rejected by the orders service"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Failure 500 {object} response.Failure "Workflow failed and was compensated"
// @Router /buy_now [post]
func (h *SagaHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	var input models.BuyNow
	if err := decode(r, &input); err != nil {
		response.RenderError(w, err)
		return
	}

	orders, err := saga.NewBuyNow(h.deps(r), initiator(r), input).Run(r.Context())
	if err != nil {
		response.RenderError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, orders)
}
