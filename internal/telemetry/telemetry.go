// Package telemetry sends session traces to an OTLP endpoint such as Honeycomb.
package telemetry

import (
	"context"
	"errors"
	"os"
	"runtime"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "arlq"
	serviceVersion = "1.0.0"
	tracerPrefix   = serviceName + "/"
)

// ErrNoEndpoint is returned by Setup when OTEL_EXPORTER_OTLP_ENDPOINT is unset.
var ErrNoEndpoint = errors.New("telemetry: OTEL_EXPORTER_OTLP_ENDPOINT not set")

// enabled is true between a successful Setup and its shutdown.
var enabled atomic.Bool

// Setup registers a batching OTLP HTTP tracer provider. The exporter reads
// the standard OTEL_EXPORTER_OTLP_* variables. extra is added to the
// resource, e.g. the seed string of the run.
//
// The returned shutdown flushes pending spans and must be called on exit.
func Setup(ctx context.Context, extra ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil, ErrNoEndpoint
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Not merged with resource.Default() to avoid schema URL conflicts
	attrs := append([]attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", hostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.name", "go"),
		attribute.String("process.runtime.version", runtime.Version()),
	}, extra...)
	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	enabled.Store(true)

	return func(ctx context.Context) error {
		enabled.Store(false)
		return tp.Shutdown(ctx)
	}, nil
}

// Tracer returns the tracer of a component ("world", "game"). Until Setup
// succeeds it is a no-op tracer.
func Tracer(component string) trace.Tracer {
	if !enabled.Load() {
		return NoopTracer()
	}
	return otel.GetTracerProvider().Tracer(tracerPrefix + component)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(tracerPrefix + "noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
