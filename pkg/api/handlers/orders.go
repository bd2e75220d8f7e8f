package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/response"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// OrdersHandler exposes the order state pass-through endpoints. All of
// them answer a null body on success; the caller only cares that the
// transition went through.
type OrdersHandler struct {
	ds  *Downstream
	log logger.Logger
}

// NewOrdersHandler creates an orders handler.
func NewOrdersHandler(ds *Downstream, log logger.Logger) *OrdersHandler {
	return &OrdersHandler{ds: ds, log: log}
}

// UpdateStates handles POST /orders/update_state
// @Summary Move a set of orders to a new payment state
// @Description Forward a billing callback that updates the payment state of several orders at once.
// @Tags orders
// @Accept json
// @Produce json
// @Param update body models.OrdersUpdateState true "Orders and their new state"
// @Success 200 "Transition applied"
// @Failure 404 {object} response.Failure "Unknown order"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Router /orders/update_state [post]
func (h *OrdersHandler) UpdateStates(w http.ResponseWriter, r *http.Request) {
	var input models.OrdersUpdateState
	if err := decode(r, &input); err != nil {
		response.RenderError(w, err)
		return
	}

	if _, err := h.ds.Factory(r).Orders(initiator(r)).UpdateStates(r.Context(), input); err != nil {
		response.RenderError(w, errs.MapValidation(err, nil))
		return
	}
	response.JSON(w, http.StatusOK, nil)
}

// SetOrderState handles POST /orders/{id}/set_state
// @Summary Move one order to a new state
// @Description Forward a state transition for the order with the given slug.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order slug"
// @Param update body models.OrderStateUpdate true "New state"
// @Success 200 "Transition applied"
// @Failure 404 {object} response.Failure "Unknown order"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Router /orders/{id}/set_state [post]
func (h *OrdersHandler) SetOrderState(w http.ResponseWriter, r *http.Request) {
	slug, err := pathID[models.OrderSlug](r, "id")
	if err != nil {
		response.RenderError(w, err)
		return
	}

	var input models.OrderStateUpdate
	if err := decode(r, &input); err != nil {
		response.RenderError(w, err)
		return
	}

	if _, err := h.ds.Factory(r).Orders(initiator(r)).SetOrderState(r.Context(), slug, input); err != nil {
		response.RenderError(w, errs.MapValidation(err, nil))
		return
	}
	response.JSON(w, http.StatusOK, nil)
}

// SetPaymentState handles POST /orders/{id}/set_payment_state
// @Summary Move one order to a new payment state
// @Description Forward a payment state transition for the order with the given id.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order id"
// @Param update body models.OrderPaymentStateUpdate true "New payment state"
// @Success 200 "Transition applied"
// @Failure 404 {object} response.Failure "Unknown order"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Router /orders/{id}/set_payment_state [post]
func (h *OrdersHandler) SetPaymentState(w http.ResponseWriter, r *http.Request) {
	id := models.OrderID(chi.URLParam(r, "id"))
	if id == "" {
		response.RenderError(w, errs.New(errs.KindNotFound, "no route"))
		return
	}

	var input models.OrderPaymentStateUpdate
	if err := decode(r, &input); err != nil {
		response.RenderError(w, err)
		return
	}

	if err := h.ds.Factory(r).Orders(initiator(r)).SetPaymentState(r.Context(), id, input); err != nil {
		response.RenderError(w, errs.MapValidation(err, nil))
		return
	}
	response.JSON(w, http.StatusOK, nil)
}
