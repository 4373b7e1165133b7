// Package tracing настраивает OpenTelemetry для сервисов.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/magabrotheeeer/gym-membership/internal/config"
)

// Shutdown сбрасывает буферы и останавливает провайдер трассировки.
type Shutdown func(ctx context.Context) error

// Setup регистрирует глобальный TracerProvider. Без otlp_endpoint спаны
// создаются, но никуда не экспортируются.
func Setup(ctx context.Context, cfg config.Tracing) (Shutdown, error) {
	const op = "tracing.Setup"

	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))
	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	if cfg.OTLPEndpoint != "" {
		exporter, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
