package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	traceIDHeader = "X-Trace-ID"
	tracerName    = "github.com/MKhiriev/go-auth-keeper/internal/handler/http"
)

// withTraceID opens a server span for the request and attaches a child
// logger carrying trace_id to the request context.
//
// The trace id is taken, in order, from the X-Trace-ID header, from the
// active OpenTelemetry span, or generated as a random UUID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("url.path", r.URL.Path),
			),
		)
		defer span.End()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			if spanCtx := span.SpanContext(); spanCtx.HasTraceID() {
				traceID = spanCtx.TraceID().String()
			} else {
				traceID = uuid.NewString()
			}
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}
