package observability

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("my-service")
	if cfg.ServiceName != "my-service" {
		t.Errorf("expected service name 'my-service', got %q", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("unexpected endpoint: %q", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected sample rate 1.0, got %v", cfg.SampleRate)
	}
}

func TestStartSpan(t *testing.T) {
	// A no-export provider keeps the test hermetic.
	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := StartSpan(context.Background(), SpanHTTPSend)
	if span == nil {
		t.Fatal("expected a span")
	}
	SetSpanError(ctx, context.DeadlineExceeded)
	span.End()
}

func TestMetricsRecord(t *testing.T) {
	mp := sdkmetric.NewMeterProvider()
	defer func() { _ = mp.Shutdown(context.Background()) }()

	m, err := NewMetricsWithMeter(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recording must not panic regardless of exporter state.
	m.RecordRequest(context.Background(), "GET", 200, 42*time.Millisecond)
	m.RecordRequest(context.Background(), "POST", 503, time.Second)
	m.RecordError(context.Background(), "GET")
}
