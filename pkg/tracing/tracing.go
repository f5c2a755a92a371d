package tracing

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type Config struct {
	// Endpoint is host:port of an OTLP/HTTP collector; empty disables export.
	Endpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure bool    `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	Ratio    float64 `envconfig:"OTEL_SAMPLE_RATIO" default:"1"`
}

type Shutdown func(ctx context.Context) error

// Init installs a global tracer provider. Without an endpoint the otel
// no-op provider stays in place.
func Init(ctx context.Context, cfg Config, service string) (Shutdown, error) {
	if cfg.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "otlptracehttp.New")
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Ratio))),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", service))),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
