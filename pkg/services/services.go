// Package services holds one typed client per downstream microservice.
// Clients are built by a Factory around a shared transport, usually the
// budget- and header-decorated stack assembled per inbound request, and
// translate downstream failures into the coordinator's error taxonomy.
package services

import (
	"time"

	"github.com/StoriqaTeam/saga-coordinator-sub000/config"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/httpx"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// Downstream service names, used as metrics labels and in error context.
const (
	ServiceUsers         = "users"
	ServiceStores        = "stores"
	ServiceOrders        = "orders"
	ServiceBilling       = "billing"
	ServiceWarehouses    = "warehouses"
	ServiceDelivery      = "delivery"
	ServiceNotifications = "notifications"
)

// Recorder observes downstream traffic. The metrics package provides the
// production implementation; the default is a no-op.
type Recorder interface {
	// ClientInFlight tracks requests currently running against a service.
	ClientInFlight(service string, delta int)
	// ObserveClient records one finished exchange. Status zero means the
	// request produced no response at all.
	ObserveClient(service, method string, status int, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ClientInFlight(string, int)                       {}
func (nopRecorder) ObserveClient(string, string, int, time.Duration) {}

// Factory builds service clients bound to a transport and an initiator.
// One Factory is assembled per inbound request so every client it issues
// shares that request's budget and default headers.
type Factory struct {
	http httpx.Client
	cfg  config.ServicesConfig
	rec  Recorder
}

// Option tunes a Factory.
type Option func(*Factory)

// WithRecorder attaches a traffic recorder.
func WithRecorder(rec Recorder) Option {
	return func(f *Factory) {
		if rec != nil {
			f.rec = rec
		}
	}
}

// NewFactory returns a Factory issuing clients over http against the
// configured base URLs.
func NewFactory(http httpx.Client, cfg config.ServicesConfig, opts ...Option) *Factory {
	f := &Factory{http: http, cfg: cfg, rec: nopRecorder{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Config returns the base URL map the factory was built with.
func (f *Factory) Config() config.ServicesConfig {
	return f.cfg
}

// Users returns a users client acting as ini (nil for anonymous).
func (f *Factory) Users(ini *models.Initiator) Users {
	return usersClient{roleOps: roleOps{f.caller(ServiceUsers, f.cfg.Users, ini)}, f: f}
}

// Stores returns a stores client acting as ini.
func (f *Factory) Stores(ini *models.Initiator) Stores {
	return storesClient{roleOps: roleOps{f.caller(ServiceStores, f.cfg.Stores, ini)}}
}

// Orders returns an orders client acting as ini.
func (f *Factory) Orders(ini *models.Initiator) Orders {
	return ordersClient{roleOps: roleOps{f.caller(ServiceOrders, f.cfg.Orders, ini)}, f: f}
}

// Billing returns a billing client acting as ini.
func (f *Factory) Billing(ini *models.Initiator) Billing {
	return billingClient{roleOps: roleOps{f.caller(ServiceBilling, f.cfg.Billing, ini)}}
}

// Warehouses returns a warehouses client acting as ini.
func (f *Factory) Warehouses(ini *models.Initiator) Warehouses {
	return warehousesClient{roleOps{f.caller(ServiceWarehouses, f.cfg.Warehouses, ini)}}
}

// Delivery returns a delivery client acting as ini.
func (f *Factory) Delivery(ini *models.Initiator) Delivery {
	return deliveryClient{roleOps{f.caller(ServiceDelivery, f.cfg.Delivery, ini)}}
}

// Notifications returns a notifications client acting as ini.
func (f *Factory) Notifications(ini *models.Initiator) Notifications {
	return notificationsClient{f.caller(ServiceNotifications, f.cfg.Notifications, ini)}
}
