// Package saga implements the coordinator's workflows. Each workflow is
// a single owning object carrying its downstream clients and an
// in-memory operation log. Forward stages run strictly in order and
// append to the log before and after every remote call; on the first
// failure the log is read back in reverse and every started stage is
// compensated with superadmin rights. Compensation failures are logged
// and swallowed, so the caller always sees the original forward error.
package saga

import (
	"context"
	"errors"
	"time"

	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/httpx"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/services"
)

// Workflow names, used in logs, metrics labels and stream events.
const (
	WorkflowCreateAccount = "create_account"
	WorkflowCreateStore   = "create_store"
	WorkflowCreateOrder   = "create_order"
	WorkflowBuyNow        = "buy_now"
)

// Compensations always run with superadmin rights, whoever initiated the
// forward stages. Initiator is immutable, so one shared value is safe.
var superadmin = models.Superadmin()

// Deps bundles what every workflow needs: the per-request service factory
// plus process-wide observability hooks. Services must be set; the hooks
// default to no-ops when left nil.
type Deps struct {
	Services *services.Factory
	Logger   logger.Logger
	Observer Observer
	Metrics  MetricsRecorder
}

func (d Deps) normalized() Deps {
	if d.Logger == nil {
		d.Logger = logger.Global()
	}
	if d.Observer == nil {
		d.Observer = NopObserver{}
	}
	if d.Metrics == nil {
		d.Metrics = &nopMetricsRecorder{}
	}
	return d
}

// core carries what the concrete workflows share: the run's identity and
// the bookkeeping helpers around forward stages and compensations.
type core struct {
	workflow string
	sagaID   models.SagaID
	started  time.Time

	log     logger.Logger
	obs     Observer
	metrics MetricsRecorder
}

func newCore(workflow string, sagaID models.SagaID, d Deps) core {
	d = d.normalized()
	return core{
		workflow: workflow,
		sagaID:   sagaID,
		log:      d.Logger.With("workflow", workflow, "saga_id", sagaID.String()),
		obs:      d.Observer,
		metrics:  d.Metrics,
	}
}

// SagaID returns the identifier minted for this run.
func (c *core) SagaID() models.SagaID {
	return c.sagaID
}

func (c *core) emit(t EventType, stage string, err error) {
	e := Event{
		Type:     t,
		Workflow: c.workflow,
		SagaID:   c.sagaID.String(),
		Stage:    stage,
		At:       time.Now().UTC(),
	}
	if err != nil {
		e.Error = err.Error()
	}
	c.obs.SagaEvent(e)
}

// begin opens the run's bookkeeping.
func (c *core) begin(ctx context.Context) {
	c.started = time.Now()
	c.metrics.IncActiveSagas(c.workflow)
	c.emit(EventSagaStarted, "", nil)
	c.log.InfoContext(ctx, "saga started")
}

// finish closes the run's bookkeeping with the forward outcome.
func (c *core) finish(ctx context.Context, err error) {
	elapsed := time.Since(c.started)
	c.metrics.DecActiveSagas(c.workflow)

	span := trace.SpanFromContext(ctx)
	if err != nil {
		if errors.Is(err, httpx.ErrTimeLimitExceeded) {
			c.metrics.RecordBudgetExhaustion(c.workflow)
		}
		c.metrics.RecordSagaExecution(c.workflow, "failed")
		c.metrics.RecordSagaDuration(c.workflow, "failed", elapsed)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "saga failed")
		c.emit(EventSagaFailed, "", err)
		c.log.ErrorContext(ctx, "saga failed", "elapsed", elapsed, "error", err)
		return
	}
	c.metrics.RecordSagaExecution(c.workflow, "completed")
	c.metrics.RecordSagaDuration(c.workflow, "completed", elapsed)
	span.SetStatus(otelcodes.Ok, "")
	c.emit(EventSagaCompleted, "", nil)
	c.log.InfoContext(ctx, "saga completed", "elapsed", elapsed)
}

// runStage executes one forward stage under the shared observability.
// The caller records the operation log entries around it.
func (c *core) runStage(ctx context.Context, stage string, fn func(context.Context) error) error {
	ctx, span := startStageSpan(ctx, spanSagaStageForward, c.workflow, stage)
	defer span.End()

	c.emit(EventStageStarted, stage, nil)
	c.log.DebugContext(ctx, "stage started", "stage", stage)

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	if err != nil {
		c.metrics.RecordStage(c.workflow, stage, "failed")
		c.metrics.RecordStageDuration(c.workflow, stage, elapsed)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "stage failed")
		c.emit(EventStageFailed, stage, err)
		c.log.ErrorContext(ctx, "stage failed", "stage", stage, "elapsed", elapsed, "error", err)
		return err
	}

	c.metrics.RecordStage(c.workflow, stage, "completed")
	c.metrics.RecordStageDuration(c.workflow, stage, elapsed)
	span.SetStatus(otelcodes.Ok, "")
	c.emit(EventStageCompleted, stage, nil)
	c.log.DebugContext(ctx, "stage completed", "stage", stage, "elapsed", elapsed)
	return nil
}

// runCompensation issues one undo call. Failures are logged and
// swallowed so the forward error is what the caller reports; a failed
// compensation means an orphaned downstream resource, which is why it is
// logged at error level.
func (c *core) runCompensation(ctx context.Context, stage string, fn func(context.Context) error) {
	ctx, span := startStageSpan(ctx, spanSagaStageCompensate, c.workflow, stage)
	defer span.End()

	c.emit(EventCompensationStarted, stage, nil)

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	if err != nil {
		c.metrics.RecordCompensation(c.workflow, stage, "failed")
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "compensation failed")
		c.emit(EventCompensationFailed, stage, err)
		c.log.ErrorContext(ctx, "compensation failed", "stage", stage, "elapsed", elapsed, "error", err)
		return
	}

	c.metrics.RecordCompensation(c.workflow, stage, "completed")
	span.SetStatus(otelcodes.Ok, "")
	c.emit(EventCompensationCompleted, stage, nil)
	c.log.InfoContext(ctx, "compensation completed", "stage", stage, "elapsed", elapsed)
}
