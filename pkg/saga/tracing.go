package saga

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

const sagaTracerName = "coordinator.saga"

const (
	spanSagaRun             = "saga.run"
	spanSagaStageForward    = "saga.stage.forward"
	spanSagaStageCompensate = "saga.stage.compensate"
)

func sagaTracer() trace.Tracer {
	return otel.Tracer(sagaTracerName)
}

func startSagaSpan(ctx context.Context, workflow string, id models.SagaID) (context.Context, trace.Span) {
	return sagaTracer().Start(ctx, spanSagaRun,
		trace.WithAttributes(
			attribute.String("saga.workflow", workflow),
			attribute.String("saga.id", id.String()),
		))
}

func startStageSpan(ctx context.Context, name, workflow, stage string) (context.Context, trace.Span) {
	return sagaTracer().Start(ctx, name,
		trace.WithAttributes(
			attribute.String("saga.workflow", workflow),
			attribute.String("saga.stage", stage),
		))
}
