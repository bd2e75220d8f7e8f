package handlers

import (
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/response"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// ModerationHandler exposes the moderation pass-through endpoints of the
// stores service: single calls, no compensation, downstream errors
// reshaped through the validation mapper.
type ModerationHandler struct {
	ds  *Downstream
	log logger.Logger
}

// NewModerationHandler creates a moderation handler.
func NewModerationHandler(ds *Downstream, log logger.Logger) *ModerationHandler {
	return &ModerationHandler{ds: ds, log: log}
}

// SetStoreModeration handles POST /stores/moderate
// @Summary Set a store's moderation status
// @Description Forward a moderation decision to the stores service.
// @Tags moderation
// @Accept json
// @Produce json
// @Param moderation body models.StoreModerate true "Moderation decision"
// @Success 200 {object} models.Store "Updated store"
// @Failure 403 {object} response.Failure "Caller may not moderate"
// @Failure 404 {object} response.Failure "Unknown store"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Router /stores/moderate [post]
func (h *ModerationHandler) SetStoreModeration(w http.ResponseWriter, r *http.Request) {
	var input models.StoreModerate
	if err := decode(r, &input); err != nil {
		response.RenderError(w, err)
		return
	}

	store, err := h.ds.Factory(r).Stores(initiator(r)).SetStoreModeration(r.Context(), input)
	if err != nil {
		response.RenderError(w, errs.MapValidation(err, nil))
		return
	}
	response.JSON(w, http.StatusOK, store)
}

// GetStoreModeration handles GET /stores/{id}/moderation
// @Summary Get a store's moderation status
// @Description Read the moderation view of a store from the stores service.
// @Tags moderation
// @Produce json
// @Param id path int true "Store id"
// @Success 200 {object} models.Store "Store with moderation status"
// @Failure 404 {object} response.Failure "Unknown store"
// @Router /stores/{id}/moderation [get]
func (h *ModerationHandler) GetStoreModeration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[models.StoreID](r, "id")
	if err != nil {
		response.RenderError(w, err)
		return
	}

	store, err := h.ds.Factory(r).Stores(initiator(r)).GetStoreModeration(r.Context(), id)
	if err != nil {
		response.RenderError(w, errs.MapValidation(err, nil))
		return
	}
	response.JSON(w, http.StatusOK, store)
}

// DeactivateStore handles POST /stores/{id}/deactivate
// @Summary Deactivate a store
// @Description Ask the stores service to deactivate a store.
// @Tags moderation
// @Produce json
// @Param id path int true "Store id"
// @Success 200 {object} models.Store "Deactivated store"
// @Failure 403 {object} response.Failure "Caller may not deactivate"
// @Failure 404 {object} response.Failure "Unknown store"
// @Router /stores/{id}/deactivate [post]
func (h *ModerationHandler) DeactivateStore(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[models.StoreID](r, "id")
	if err != nil {
		response.RenderError(w, err)
		return
	}

	store, err := h.ds.Factory(r).Stores(initiator(r)).DeactivateStore(r.Context(), id)
	if err != nil {
		response.RenderError(w, errs.MapValidation(err, nil))
		return
	}
	response.JSON(w, http.StatusOK, store)
}

// SetBaseProductModeration handles POST /base_products/moderate
// @Summary Set a base product's moderation status
// @Description Forward a moderation decision to the stores service.
// @Tags moderation
// @Accept json
// @Produce json
// @Param moderation body models.BaseProductModerate true "Moderation decision"
// @Success 200 {object} models.BaseProduct "Updated base product"
// @Failure 403 {object} response.Failure "Caller may not moderate"
// @Failure 404 {object} response.Failure "Unknown base product"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Router /base_products/moderate [post]
func (h *ModerationHandler) SetBaseProductModeration(w http.ResponseWriter, r *http.Request) {
	var input models.BaseProductModerate
	if err := decode(r, &input); err != nil {
		response.RenderError(w, err)
		return
	}

	product, err := h.ds.Factory(r).Stores(initiator(r)).SetBaseProductModeration(r.Context(), input)
	if err != nil {
		response.RenderError(w, errs.MapValidation(err, nil))
		return
	}
	response.JSON(w, http.StatusOK, product)
}

// GetBaseProductModeration handles GET /base_products/{id}/moderation
// @Summary Get a base product's moderation status
// @Description Read the moderation view of a base product from the stores service.
// @Tags moderation
// @Produce json
// @Param id path int true "Base product id"
// @Success 200 {object} models.BaseProduct "Base product with moderation status"
// @Failure 404 {object} response.Failure "Unknown base product"
// @Router /base_products/{id}/moderation [get]
func (h *ModerationHandler) GetBaseProductModeration(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[models.BaseProductID](r, "id")
	if err != nil {
		response.RenderError(w, err)
		return
	}

	product, err := h.ds.Factory(r).Stores(initiator(r)).GetBaseProductModeration(r.Context(), id)
	if err != nil {
		response.RenderError(w, errs.MapValidation(err, nil))
		return
	}
	response.JSON(w, http.StatusOK, product)
}

// DeactivateBaseProduct handles POST /base_products/{id}/deactivate
// @Summary Deactivate a base product
// @Description Ask the stores service to deactivate a base product.
// @Tags moderation
// @Produce json
// @Param id path int true "Base product id"
// @Success 200 {object} models.BaseProduct "Deactivated base product"
// @Failure 403 {object} response.Failure "Caller may not deactivate"
// @Failure 404 {object} response.Failure "Unknown base product"
// @Router /base_products/{id}/deactivate [post]
func (h *ModerationHandler) DeactivateBaseProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[models.BaseProductID](r, "id")
	if err != nil {
		response.RenderError(w, err)
		return
	}

	product, err := h.ds.Factory(r).Stores(initiator(r)).DeactivateBaseProduct(r.Context(), id)
	if err != nil {
		response.RenderError(w, errs.MapValidation(err, nil))
		return
	}
	response.JSON(w, http.StatusOK, product)
}
