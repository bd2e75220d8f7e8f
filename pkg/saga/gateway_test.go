package saga

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/StoriqaTeam/saga-coordinator-sub000/config"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/httpx"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/services"
)

// call is one request as seen by the fake downstream services.
type call struct {
	service string
	method  string
	path    string
	auth    string
	timeout string
	body    []byte
}

func (c call) signature() string {
	return c.service + " " + c.method + " " + c.path
}

type cannedResponse struct {
	status int
	body   string
}

// gateway runs one fake HTTP server per downstream service and records
// every request in arrival order, so tests can assert cross-service
// sequencing of forward stages and compensations.
type gateway struct {
	mu    sync.Mutex
	calls []call
	fail  map[string]cannedResponse
	delay map[string]time.Duration

	cfg config.ServicesConfig
}

func newGateway(t *testing.T) *gateway {
	t.Helper()
	g := &gateway{
		fail:  map[string]cannedResponse{},
		delay: map[string]time.Duration{},
	}

	targets := []struct {
		service string
		dst     *string
	}{
		{services.ServiceUsers, &g.cfg.Users},
		{services.ServiceStores, &g.cfg.Stores},
		{services.ServiceOrders, &g.cfg.Orders},
		{services.ServiceBilling, &g.cfg.Billing},
		{services.ServiceWarehouses, &g.cfg.Warehouses},
		{services.ServiceDelivery, &g.cfg.Delivery},
		{services.ServiceNotifications, &g.cfg.Notifications},
	}
	for _, tgt := range targets {
		srv := httptest.NewServer(g.handler(tgt.service))
		t.Cleanup(srv.Close)
		*tgt.dst = srv.URL
	}
	g.cfg.Cluster = "https://market.example"
	g.cfg.PaymentPage = "https://payment.example"
	return g
}

func (g *gateway) handler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		key := service + " " + r.Method + " " + r.URL.Path

		g.mu.Lock()
		g.calls = append(g.calls, call{
			service: service,
			method:  r.Method,
			path:    r.URL.Path,
			auth:    r.Header.Get("Authorization"),
			timeout: r.Header.Get(httpx.HeaderRequestTimeout),
			body:    body,
		})
		wait := g.delay[key]
		canned, failed := g.fail[key]
		g.mu.Unlock()

		if wait > 0 {
			time.Sleep(wait)
		}
		if failed {
			w.WriteHeader(canned.status)
			io.WriteString(w, canned.body)
			return
		}
		status, out := defaultResponse(service, r.Method, r.URL.Path, body)
		w.WriteHeader(status)
		io.WriteString(w, out)
	}
}

// failWith makes one endpoint answer with a fixed status and body.
func (g *gateway) failWith(service, method, path string, status int, body string) {
	g.mu.Lock()
	g.fail[service+" "+method+" "+path] = cannedResponse{status: status, body: body}
	g.mu.Unlock()
}

// delayCall makes one endpoint sleep before answering.
func (g *gateway) delayCall(service, method, path string, d time.Duration) {
	g.mu.Lock()
	g.delay[service+" "+method+" "+path] = d
	g.mu.Unlock()
}

// recorded returns a copy of every call seen so far, in arrival order.
func (g *gateway) recorded() []call {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]call, len(g.calls))
	copy(out, g.calls)
	return out
}

func (g *gateway) signatures() []string {
	calls := g.recorded()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.signature()
	}
	return out
}

// roleIDs returns the role entry ids of every POST /roles request, in
// arrival order.
func (g *gateway) roleIDs(t *testing.T) []string {
	t.Helper()
	var out []string
	for _, c := range g.recorded() {
		if c.method != http.MethodPost || c.path != "/roles" {
			continue
		}
		var role models.NewRole
		if err := json.Unmarshal(c.body, &role); err != nil {
			t.Fatalf("decode role body %q: %v", c.body, err)
		}
		out = append(out, role.ID.String())
	}
	return out
}

func defaultResponse(service, method, path string, body []byte) (int, string) {
	if method == http.MethodDelete {
		return http.StatusOK, ""
	}
	if path == "/roles" {
		return http.StatusOK, string(body)
	}

	switch service {
	case services.ServiceUsers:
		if path == "/users" {
			var req models.CreateUser
			_ = json.Unmarshal(body, &req)
			return marshal(models.User{ID: 42, Email: req.Identity.Email, IsActive: true, SagaID: req.Identity.SagaID})
		}
	case services.ServiceStores:
		if path == "/stores" {
			var req models.NewStore
			_ = json.Unmarshal(body, &req)
			return marshal(models.Store{
				ID:               7,
				UserID:           req.UserID,
				Name:             req.Name,
				ShortDescription: req.ShortDescription,
				Slug:             req.Slug,
				DefaultLanguage:  req.DefaultLanguage,
				Status:           models.StatusDraft,
			})
		}
		if strings.HasPrefix(path, "/coupons/") {
			return http.StatusOK, ""
		}
	case services.ServiceOrders:
		if path == "/orders/create_from_cart" {
			var req models.ConvertCart
			_ = json.Unmarshal(body, &req)
			return marshal([]models.Order{
				{ID: "o-1", Slug: 111, StoreID: 5, CustomerID: req.CustomerID, Quantity: 1, Currency: req.Currency, State: models.OrderStateNew},
				{ID: "o-2", Slug: 112, StoreID: 6, CustomerID: req.CustomerID, Quantity: 2, Currency: req.Currency, State: models.OrderStateNew},
			})
		}
		if path == "/orders/create_buy_now" {
			var req models.CreateBuyNow
			_ = json.Unmarshal(body, &req)
			return marshal([]models.Order{
				{ID: "o-9", Slug: 119, StoreID: 5, CustomerID: req.BuyNow.CustomerID, Quantity: req.BuyNow.Quantity, Currency: req.BuyNow.Currency, State: models.OrderStateNew},
			})
		}
		if path == "/orders/create_buy_now/revert" {
			return http.StatusOK, ""
		}
	case services.ServiceBilling:
		if path == "/merchants/user" || path == "/merchants/store" {
			return marshal(models.Merchant{MerchantID: "m-1", MerchantType: models.MerchantUser})
		}
		if path == "/invoices" {
			var req models.CreateInvoice
			_ = json.Unmarshal(body, &req)
			return marshal(models.Invoice{
				ID:       "inv-1",
				Amount:   100,
				Currency: req.Currency,
				State:    models.PaymentStateWaitingForPayment,
			})
		}
	case services.ServiceNotifications:
		return http.StatusOK, ""
	}
	return http.StatusNotFound, `{"code":404,"description":"no route"}`
}

func marshal(v any) (int, string) {
	b, err := json.Marshal(v)
	if err != nil {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusOK, string(b)
}

// eventSink records saga events for order assertions.
type eventSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *eventSink) SagaEvent(e Event) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

func (s *eventSink) ofType(t EventType) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func quietLogger() logger.Logger {
	return logger.New(&logger.Config{Level: logger.ErrorLevel, Format: "text", Output: os.DevNull})
}

func testDeps(t *testing.T, g *gateway) Deps {
	t.Helper()
	return Deps{
		Services: services.NewFactory(httpx.NewRestyClient(), g.cfg),
		Logger:   quietLogger(),
	}
}

func testDepsWithBudget(t *testing.T, g *gateway, budget time.Duration) Deps {
	t.Helper()
	client := httpx.WithBudget(httpx.NewRestyClient(), httpx.NewBudget(budget))
	return Deps{
		Services: services.NewFactory(client, g.cfg),
		Logger:   quietLogger(),
	}
}
