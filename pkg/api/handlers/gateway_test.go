package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/StoriqaTeam/saga-coordinator-sub000/config"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/response"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/httpx"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/services"
)

// call is one request as seen by the fake downstream services.
type call struct {
	service     string
	method      string
	path        string
	auth        string
	correlation string
	currency    string
	timeout     string
	body        []byte
}

func (c call) signature() string {
	return c.service + " " + c.method + " " + c.path
}

type cannedResponse struct {
	status int
	body   string
}

// fakeGateway runs one fake HTTP server per downstream service and
// records every request in arrival order, so tests can assert both the
// outcome a handler renders and the traffic it produced.
type fakeGateway struct {
	mu    sync.Mutex
	calls []call
	fail  map[string]cannedResponse

	cfg config.ServicesConfig
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()
	g := &fakeGateway{fail: map[string]cannedResponse{}}

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

func (g *fakeGateway) handler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		key := service + " " + r.Method + " " + r.URL.Path

		g.mu.Lock()
		g.calls = append(g.calls, call{
			service:     service,
			method:      r.Method,
			path:        r.URL.Path,
			auth:        r.Header.Get(httpx.HeaderAuthorization),
			correlation: r.Header.Get(httpx.HeaderCorrelationID),
			currency:    r.Header.Get(httpx.HeaderCurrency),
			timeout:     r.Header.Get(httpx.HeaderRequestTimeout),
			body:        body,
		})
		canned, failed := g.fail[key]
		g.mu.Unlock()

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
func (g *fakeGateway) failWith(service, method, path string, status int, body string) {
	g.mu.Lock()
	g.fail[service+" "+method+" "+path] = cannedResponse{status: status, body: body}
	g.mu.Unlock()
}

// recorded returns a copy of every call seen so far, in arrival order.
func (g *fakeGateway) recorded() []call {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]call, len(g.calls))
	copy(out, g.calls)
	return out
}

func (g *fakeGateway) signatures() []string {
	calls := g.recorded()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.signature()
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
		switch path {
		case "/users":
			var req models.CreateUser
			_ = json.Unmarshal(body, &req)
			return marshal(models.User{ID: 42, Email: req.Identity.Email, IsActive: true, SagaID: req.Identity.SagaID})
		case "/email_verify", "/email_verify_apply", "/reset_password", "/reset_password_apply":
			return http.StatusOK, string(body)
		}
	case services.ServiceStores:
		switch {
		case path == "/stores":
			var req models.NewStore
			_ = json.Unmarshal(body, &req)
			return marshal(models.Store{
				ID:              7,
				UserID:          req.UserID,
				Name:            req.Name,
				Slug:            req.Slug,
				DefaultLanguage: req.DefaultLanguage,
				Status:          models.StatusDraft,
			})
		case path == "/stores/moderate":
			var req models.StoreModerate
			_ = json.Unmarshal(body, &req)
			return marshal(models.Store{ID: req.StoreID, Status: req.Status})
		case path == "/base_products/moderate":
			var req models.BaseProductModerate
			_ = json.Unmarshal(body, &req)
			return marshal(models.BaseProduct{ID: req.BaseProductID, Status: req.Status})
		case strings.HasPrefix(path, "/stores/") && strings.HasSuffix(path, "/moderation"):
			return marshal(models.Store{ID: models.StoreID(pathNum(path, 1)), Status: models.StatusModeration})
		case strings.HasPrefix(path, "/stores/") && strings.HasSuffix(path, "/deactivate"):
			return marshal(models.Store{ID: models.StoreID(pathNum(path, 1)), Status: models.StatusBlocked})
		case strings.HasPrefix(path, "/base_products/") && strings.HasSuffix(path, "/moderation"):
			return marshal(models.BaseProduct{ID: models.BaseProductID(pathNum(path, 1)), Status: models.StatusModeration})
		case strings.HasPrefix(path, "/base_products/") && strings.HasSuffix(path, "/deactivate"):
			return marshal(models.BaseProduct{ID: models.BaseProductID(pathNum(path, 1)), Status: models.StatusBlocked})
		case strings.HasPrefix(path, "/coupons/"):
			return http.StatusOK, ""
		}
	case services.ServiceOrders:
		switch {
		case path == "/orders/create_from_cart":
			var req models.ConvertCart
			_ = json.Unmarshal(body, &req)
			return marshal([]models.Order{
				{ID: "o-1", Slug: 111, StoreID: 5, CustomerID: req.CustomerID, Quantity: 1, Currency: req.Currency, State: models.OrderStateNew},
				{ID: "o-2", Slug: 112, StoreID: 6, CustomerID: req.CustomerID, Quantity: 2, Currency: req.Currency, State: models.OrderStateNew},
			})
		case path == "/orders/create_buy_now":
			var req models.CreateBuyNow
			_ = json.Unmarshal(body, &req)
			return marshal([]models.Order{
				{ID: "o-9", Slug: 119, StoreID: 5, CustomerID: req.BuyNow.CustomerID, Quantity: req.BuyNow.Quantity, Currency: req.BuyNow.Currency, State: models.OrderStateNew},
			})
		case path == "/orders/create_buy_now/revert":
			return http.StatusOK, ""
		case path == "/orders/update_state":
			var req models.OrdersUpdateState
			_ = json.Unmarshal(body, &req)
			orders := make([]models.Order, 0, len(req.Orders))
			for i, id := range req.Orders {
				orders = append(orders, models.Order{ID: id, Slug: models.OrderSlug(100 + i)})
			}
			return marshal(orders)
		case strings.HasSuffix(path, "/set_state"):
			return marshal(models.Order{ID: "o-1", Slug: models.OrderSlug(pathNum(path, 1))})
		case strings.HasSuffix(path, "/set_payment_state"):
			return http.StatusOK, ""
		}
	case services.ServiceBilling:
		switch path {
		case "/merchants/user", "/merchants/store":
			return marshal(models.Merchant{MerchantID: "m-1", MerchantType: models.MerchantUser})
		case "/invoices":
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

// pathNum parses the idx-th segment of path as a number; zero when it is
// not numeric.
func pathNum(path string, idx int) int64 {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if idx >= len(parts) {
		return 0
	}
	n, _ := strconv.ParseInt(parts[idx], 10, 64)
	return n
}

func marshal(v any) (int, string) {
	b, err := json.Marshal(v)
	if err != nil {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusOK, string(b)
}

func quietLogger() logger.Logger {
	return logger.New(&logger.Config{Level: logger.ErrorLevel, Format: "text", Output: os.DevNull})
}

// newTestDownstream builds a Downstream over the fake gateway with a
// budget large enough that tests never trip it.
func newTestDownstream(t *testing.T) (*Downstream, *fakeGateway) {
	t.Helper()
	g := newFakeGateway(t)
	return NewDownstream(httpx.NewRestyClient(), g.cfg, 5*time.Second), g
}

// withURLParam attaches a chi route parameter to the request, standing in
// for the router's pattern matching.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeFailure(t *testing.T, w *httptest.ResponseRecorder) response.Failure {
	t.Helper()
	var f response.Failure
	if err := json.NewDecoder(w.Body).Decode(&f); err != nil {
		t.Fatalf("decode failure body %q: %v", w.Body.String(), err)
	}
	return f
}
