package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/response"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/services"
)

// UsersHandler forwards the token-driven self-service endpoints to the
// users service verbatim, body in, body out.
type UsersHandler struct {
	ds  *Downstream
	log logger.Logger
}

// NewUsersHandler creates a users proxy handler.
func NewUsersHandler(ds *Downstream, log logger.Logger) *UsersHandler {
	return &UsersHandler{ds: ds, log: log}
}

// EmailVerify handles POST /email_verify
// @Summary Request an email verification
// @Description Forward an email verification request to the users service.
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} any "Users service response"
// @Failure 404 {object} response.Failure "Unknown email"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Router /email_verify [post]
func (h *UsersHandler) EmailVerify(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context, users services.Users, body json.RawMessage) (json.RawMessage, error) {
		return users.EmailVerify(ctx, body)
	})
}

// EmailVerifyApply handles POST /email_verify_apply
// @Summary Apply an email verification token
// @Description Forward a verification token to the users service to activate the account.
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} any "Users service response"
// @Failure 404 {object} response.Failure "Unknown or expired token"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Router /email_verify_apply [post]
func (h *UsersHandler) EmailVerifyApply(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context, users services.Users, body json.RawMessage) (json.RawMessage, error) {
		return users.EmailVerifyApply(ctx, body)
	})
}

// ResetPassword handles POST /reset_password
// @Summary Request a password reset
// @Description Forward a password reset request to the users service.
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} any "Users service response"
// @Failure 404 {object} response.Failure "Unknown email"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Router /reset_password [post]
func (h *UsersHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context, users services.Users, body json.RawMessage) (json.RawMessage, error) {
		return users.ResetPassword(ctx, body)
	})
}

// ResetPasswordApply handles POST /reset_password_apply
// @Summary Apply a password reset token
// @Description Forward a reset token and the new password to the users service.
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} any "Users service response"
// @Failure 404 {object} response.Failure "Unknown or expired token"
// @Failure 422 {object} response.Failure "Malformed request body"
// @Router /reset_password_apply [post]
func (h *UsersHandler) ResetPasswordApply(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context, users services.Users, body json.RawMessage) (json.RawMessage, error) {
		return users.ResetPasswordApply(ctx, body)
	})
}

func (h *UsersHandler) forward(
	w http.ResponseWriter,
	r *http.Request,
	call func(context.Context, services.Users, json.RawMessage) (json.RawMessage, error),
) {
	body, err := readRawBody(r)
	if err != nil {
		response.RenderError(w, err)
		return
	}

	users := h.ds.Factory(r).Users(initiator(r))
	out, err := call(r.Context(), users, body)
	if err != nil {
		response.RenderError(w, errs.MapValidation(err, nil))
		return
	}
	response.Raw(w, http.StatusOK, out)
}
