package telemetry

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func restoreGlobals(t *testing.T) {
	t.Helper()
	provider, propagator := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(provider)
		otel.SetTextMapPropagator(propagator)
	})
}

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	restoreGlobals(t)

	shutdown, err := Setup(context.Background(), config.Telemetry{ServiceName: "test-service"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); ok {
		t.Fatal("sdk provider installed without endpoint")
	}
}

func TestSetup_InstallsPropagator(t *testing.T) {
	restoreGlobals(t)

	if _, err := Setup(context.Background(), config.Telemetry{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fields := otel.GetTextMapPropagator().Fields()
	if len(fields) == 0 || fields[0] != "traceparent" {
		t.Fatalf("expected traceparent propagation, got %v", fields)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	restoreGlobals(t)

	// Non-routable address so nothing is exported.
	shutdown, err := Setup(context.Background(), config.Telemetry{
		OTLPEndpoint: "http://192.0.2.1:4318",
		ServiceName:  "test-service",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Fatalf("expected sdk provider, got %T", otel.GetTracerProvider())
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
