package saga

import (
	"context"
	"strings"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/services"
)

// orderStage enumerates the forward stages of the order workflow.
type orderStage int

const (
	orderCartConversion orderStage = iota
	orderInvoiceCreation
)

func (s orderStage) String() string {
	switch s {
	case orderCartConversion:
		return "cart_conversion"
	case orderInvoiceCreation:
		return "invoice_creation"
	default:
		return "unknown"
	}
}

// orderEntry is one operation log record of the order workflow.
type orderEntry struct {
	stage      orderStage
	phase      Phase
	customerID models.UserID
	sagaID     models.SagaID
}

// CreateOrder turns the customer's cart into orders and invoices them.
// The conversion runs with the caller's rights; the invoice is created
// by the superadmin. After success the customer and the selling stores
// are notified and coupon usage is recorded, all best effort.
type CreateOrder struct {
	core
	orders  services.Orders
	billing services.Billing
	stores  services.Stores
	notify  services.Notifications

	cluster string
	payment string

	input models.ConvertCart
	olog  opLog[orderEntry]
}

// NewCreateOrder prepares an order saga acting as caller for one request.
func NewCreateOrder(d Deps, caller *models.Initiator, input models.ConvertCart) *CreateOrder {
	sagaID := models.NewSagaID()
	f := d.Services
	return &CreateOrder{
		core:    newCore(WorkflowCreateOrder, sagaID, d),
		orders:  f.Orders(caller),
		billing: f.Billing(&superadmin),
		stores:  f.Stores(&superadmin),
		notify:  f.Notifications(&superadmin),
		cluster: strings.TrimRight(f.Config().Cluster, "/"),
		payment: strings.TrimRight(f.Config().PaymentPage, "/"),
		input:   input,
	}
}

// Run executes the workflow. On forward failure every started stage is
// compensated in reverse order and the original error is returned.
func (s *CreateOrder) Run(ctx context.Context) (*models.BillingOrders, error) {
	ctx, span := startSagaSpan(ctx, s.workflow, s.sagaID)
	defer span.End()

	s.begin(ctx)
	out, err := s.forward(ctx)
	if err != nil {
		s.rollback(ctx)
		s.finish(ctx, err)
		return nil, errs.MapValidation(err, nil)
	}
	s.notifyCreated(ctx, out.Orders)
	s.recordCoupons(ctx)
	s.finish(ctx, nil)
	return out, nil
}

func (s *CreateOrder) forward(ctx context.Context) (*models.BillingOrders, error) {
	var created []models.Order
	err := s.stage(ctx, orderEntry{stage: orderCartConversion, customerID: s.input.CustomerID}, func(ctx context.Context) error {
		orders, err := s.orders.CreateFromCart(ctx, s.input)
		if err == nil {
			created = orders
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	var invoice *models.Invoice
	err = s.stage(ctx, orderEntry{stage: orderInvoiceCreation, sagaID: s.sagaID}, func(ctx context.Context) error {
		inv, err := s.billing.CreateInvoice(ctx, models.CreateInvoice{
			Orders:     created,
			CustomerID: s.input.CustomerID,
			SagaID:     s.sagaID,
			Currency:   s.input.Currency,
		})
		if err == nil {
			invoice = inv
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.BillingOrders{Orders: created, URL: s.payment + "/" + invoice.ID.String()}, nil
}

// stage records the started entry, runs fn under the shared stage
// bookkeeping and records the completion.
func (s *CreateOrder) stage(ctx context.Context, e orderEntry, fn func(context.Context) error) error {
	e.phase = PhaseStarted
	s.olog.record(e)
	if err := s.runStage(ctx, e.stage.String(), fn); err != nil {
		return err
	}
	e.phase = PhaseCompleted
	s.olog.record(e)
	return nil
}

// rollback compensates every started stage in reverse insertion order.
func (s *CreateOrder) rollback(ctx context.Context) {
	for _, e := range s.olog.reversed() {
		if e.phase != PhaseStarted {
			continue
		}
		switch e.stage {
		case orderInvoiceCreation:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.billing.RevertInvoice(ctx, e.sagaID)
			})
		case orderCartConversion:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.orders.WithSuperadmin().DeleteByCustomer(ctx, e.customerID)
			})
		}
	}
}

// notifyCreated tells the customer and every selling store about the new
// orders. Best effort: failures are logged and never compensated.
func (s *CreateOrder) notifyCreated(ctx context.Context, orders []models.Order) {
	for _, o := range orders {
		forUser := models.OrderCreatedForUser{
			UserID:    o.CustomerID,
			OrderSlug: o.Slug,
			URL:       s.cluster + "/profile/orders/" + o.Slug.String(),
		}
		if err := s.notify.OrderCreatedForUser(ctx, forUser); err != nil {
			s.log.WarnContext(ctx, "order notification failed", "recipient", "user", "slug", o.Slug, "error", err)
		}

		forStore := models.OrderCreatedForStore{
			StoreID:   o.StoreID,
			OrderSlug: o.Slug,
			URL:       s.cluster + "/manage/store/" + o.StoreID.String() + "/orders/" + o.Slug.String(),
		}
		if err := s.notify.OrderCreatedForStore(ctx, forStore); err != nil {
			s.log.WarnContext(ctx, "order notification failed", "recipient", "store", "slug", o.Slug, "error", err)
		}
	}
}

// recordCoupons reports each distinct coupon of the cart as used by the
// customer. Best effort.
func (s *CreateOrder) recordCoupons(ctx context.Context) {
	seen := make(map[models.CouponID]bool, len(s.input.Coupons))
	for _, c := range s.input.Coupons {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		if err := s.stores.AddCouponUsage(ctx, c.ID, c.Code, s.input.CustomerID); err != nil {
			s.log.WarnContext(ctx, "coupon usage report failed", "coupon_id", c.ID, "error", err)
		}
	}
}
