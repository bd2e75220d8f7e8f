package saga

import (
	"context"
	"strings"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/services"
)

// buyNowStage enumerates the forward stages of the buy-now workflow.
type buyNowStage int

const (
	buyNowConversion buyNowStage = iota
	buyNowInvoiceCreation
)

func (s buyNowStage) String() string {
	switch s {
	case buyNowConversion:
		return "buy_now_conversion"
	case buyNowInvoiceCreation:
		return "invoice_creation"
	default:
		return "unknown"
	}
}

// buyNowEntry is one operation log record of the buy-now workflow.
type buyNowEntry struct {
	stage        buyNowStage
	phase        Phase
	conversionID models.ConversionID
	sagaID       models.SagaID
}

// BuyNow places a single-product order that bypasses the cart. The
// conversion is keyed by a coordinator-minted conversion id; undoing it
// is a revert call rather than a delete. The invoice stage matches the
// order workflow.
type BuyNow struct {
	core
	orders  services.Orders
	billing services.Billing
	stores  services.Stores
	notify  services.Notifications

	cluster string
	payment string

	input  models.BuyNow
	convID models.ConversionID
	olog   opLog[buyNowEntry]
}

// NewBuyNow prepares a buy-now saga acting as caller for one request.
func NewBuyNow(d Deps, caller *models.Initiator, input models.BuyNow) *BuyNow {
	sagaID := models.NewSagaID()
	f := d.Services
	return &BuyNow{
		core:    newCore(WorkflowBuyNow, sagaID, d),
		orders:  f.Orders(caller),
		billing: f.Billing(&superadmin),
		stores:  f.Stores(&superadmin),
		notify:  f.Notifications(&superadmin),
		cluster: strings.TrimRight(f.Config().Cluster, "/"),
		payment: strings.TrimRight(f.Config().PaymentPage, "/"),
		input:   input,
		convID:  models.NewConversionID(),
	}
}

// Run executes the workflow. On forward failure every started stage is
// compensated in reverse order and the original error is returned.
func (s *BuyNow) Run(ctx context.Context) (*models.BillingOrders, error) {
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
	s.recordCoupon(ctx)
	s.finish(ctx, nil)
	return out, nil
}

func (s *BuyNow) forward(ctx context.Context) (*models.BillingOrders, error) {
	var created []models.Order
	err := s.stage(ctx, buyNowEntry{stage: buyNowConversion, conversionID: s.convID}, func(ctx context.Context) error {
		orders, err := s.orders.CreateBuyNow(ctx, s.input, s.convID)
		if err == nil {
			created = orders
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	var invoice *models.Invoice
	err = s.stage(ctx, buyNowEntry{stage: buyNowInvoiceCreation, sagaID: s.sagaID}, func(ctx context.Context) error {
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
func (s *BuyNow) stage(ctx context.Context, e buyNowEntry, fn func(context.Context) error) error {
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
func (s *BuyNow) rollback(ctx context.Context) {
	for _, e := range s.olog.reversed() {
		if e.phase != PhaseStarted {
			continue
		}
		switch e.stage {
		case buyNowInvoiceCreation:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.billing.RevertInvoice(ctx, e.sagaID)
			})
		case buyNowConversion:
			s.runCompensation(ctx, e.stage.String(), func(ctx context.Context) error {
				return s.orders.WithSuperadmin().RevertBuyNow(ctx, e.conversionID)
			})
		}
	}
}

// notifyCreated tells the customer and the selling store about the new
// order. Best effort: failures are logged and never compensated.
func (s *BuyNow) notifyCreated(ctx context.Context, orders []models.Order) {
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

// recordCoupon reports the coupon, when one was applied, as used by the
// customer. Best effort.
func (s *BuyNow) recordCoupon(ctx context.Context) {
	if s.input.Coupon == nil {
		return
	}
	c := *s.input.Coupon
	if err := s.stores.AddCouponUsage(ctx, c.ID, c.Code, s.input.CustomerID); err != nil {
		s.log.WarnContext(ctx, "coupon usage report failed", "coupon_id", c.ID, "error", err)
	}
}
