// Package api assembles the HTTP surface of the coordinator: router,
// middleware chain and server lifecycle.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/StoriqaTeam/saga-coordinator-sub000/config"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/handlers"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/middleware"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/response"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"

	_ "github.com/StoriqaTeam/saga-coordinator-sub000/docs/swagger" // Import generated docs
)

// Handlers holds all HTTP handlers.
type Handlers struct {
	// Saga runs the multi-stage workflows.
	Saga *handlers.SagaHandler

	// Users forwards the self-service endpoints of the users service.
	Users *handlers.UsersHandler

	// Moderation exposes the stores moderation pass-throughs.
	Moderation *handlers.ModerationHandler

	// Orders exposes the order state pass-throughs.
	Orders *handlers.OrdersHandler

	// Health handles the probe and build-info endpoints.
	Health *handlers.HealthHandler

	// Events streams saga events over websocket.
	Events *handlers.WebSocketHandler

	// Metrics is the optional request metrics recorder.
	Metrics middleware.MetricsRecorder

	// MetricsHandler serves the scrape endpoint when metrics are enabled.
	MetricsHandler http.Handler

	// RateLimit guards the workflow routes when set.
	RateLimit *middleware.RateLimiter
}

// NewRouter creates a chi router with the middleware chain and routes.
func NewRouter(cfg *config.Config, log logger.Logger, h *Handlers) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.CorrelationID())
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))

	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(middleware.DefaultTracingOptions()))
	}
	if h.Metrics != nil {
		r.Use(middleware.Metrics(h.Metrics))
	}

	r.Use(middleware.CORS(&cfg.Server.CORS))

	RegisterRoutes(r, cfg, h)

	return r
}

// RegisterRoutes registers all routes at the root. Unknown routes and
// known routes with the wrong method both answer the uniform 404 body.
func RegisterRoutes(r chi.Router, cfg *config.Config, h *Handlers) {
	r.NotFound(response.NotFound)
	r.MethodNotAllowed(response.NotFound)

	// Workflow routes run detached from the client connection: a dropped
	// caller must not abort a saga mid-flight.
	r.Group(func(r chi.Router) {
		if h.RateLimit != nil {
			r.Use(middleware.RateLimit(h.RateLimit))
		}
		r.Use(middleware.Detach())

		if h.Saga != nil {
			r.Post("/create_account", h.Saga.CreateAccount)
			r.Post("/create_store", h.Saga.CreateStore)
			r.Post("/create_order", h.Saga.CreateOrder)
			r.Post("/buy_now", h.Saga.BuyNow)
		}
	})

	if h.Users != nil {
		r.Post("/email_verify", h.Users.EmailVerify)
		r.Post("/email_verify_apply", h.Users.EmailVerifyApply)
		r.Post("/reset_password", h.Users.ResetPassword)
		r.Post("/reset_password_apply", h.Users.ResetPasswordApply)
	}

	if h.Moderation != nil {
		r.Post("/stores/moderate", h.Moderation.SetStoreModeration)
		r.Get("/stores/{id}/moderation", h.Moderation.GetStoreModeration)
		r.Post("/stores/{id}/deactivate", h.Moderation.DeactivateStore)
		r.Post("/base_products/moderate", h.Moderation.SetBaseProductModeration)
		r.Get("/base_products/{id}/moderation", h.Moderation.GetBaseProductModeration)
		r.Post("/base_products/{id}/deactivate", h.Moderation.DeactivateBaseProduct)
	}

	if h.Orders != nil {
		r.Post("/orders/update_state", h.Orders.UpdateStates)
		r.Post("/orders/{id}/set_state", h.Orders.SetOrderState)
		r.Post("/orders/{id}/set_payment_state", h.Orders.SetPaymentState)
	}

	if h.Health != nil {
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)
		r.Get("/version", h.Health.Version)
	}

	if h.MetricsHandler != nil {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, h.MetricsHandler)
	}

	if h.Events != nil {
		r.Get("/ws/sagas", h.Events.ServeHTTP)
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
