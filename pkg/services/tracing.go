package services

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const clientTracerName = "coordinator.client"

// startClientSpan opens the child span of one downstream call and
// injects the trace context into the outbound headers, so a stage span
// links to the receiving service's own spans.
func startClientSpan(ctx context.Context, service, method, path string, headers map[string]string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(clientTracerName).Start(ctx, service+" "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("downstream.service", service),
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		))
	otel.GetTextMapPropagator().Inject(ctx, propagation.MapCarrier(headers))
	return ctx, span
}

// endClientSpan closes the span with the call outcome. Transport errors
// carry the error itself; HTTP failures carry the status code.
func endClientSpan(span trace.Span, status int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		span.End()
		return
	}

	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= http.StatusBadRequest {
		span.SetStatus(otelcodes.Error, http.StatusText(status))
	} else {
		span.SetStatus(otelcodes.Ok, "")
	}
	span.End()
}
