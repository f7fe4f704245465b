package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	shutdown, err := Setup(context.Background())
	if !errors.Is(err, ErrNoEndpoint) {
		t.Fatalf("Setup() error = %v, want ErrNoEndpoint", err)
	}
	if shutdown != nil {
		t.Error("Setup() returned a shutdown func on error")
	}
}

func TestTracerDisabledIsNoop(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "op")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("span context valid without telemetry, want no-op span")
	}
	if span.IsRecording() {
		t.Error("no-op span is recording")
	}
}

func TestHostname(t *testing.T) {
	if hostname() == "" {
		t.Error("hostname() = \"\", want a name or \"unknown\"")
	}
}
