package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/annel0/voxel-terrain/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// ShutdownFunc завершает TracerProvider и сбрасывает накопленные спаны
type ShutdownFunc func(context.Context) error

// InitTelemetry настраивает TracerProvider и устанавливает его глобальным.
// Если endpoint пуст, экспортер не создаётся: спаны пишутся, но никуда не уходят.
// Возвращает функцию shutdown, которую нужно вызвать при завершении приложения.
func InitTelemetry(ctx context.Context, serviceName, endpoint string) (ShutdownFunc, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("ресурс телеметрии: %w", err)
	}

	opts := []trace.TracerProviderOption{trace.WithResource(res)}
	if endpoint != "" {
		exp, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("OTLP экспортер: %w", err)
		}
		opts = append(opts, trace.WithBatcher(exp))
	}

	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	if endpoint != "" {
		logging.Info("📡 OpenTelemetry инициализирован (OTLP → %s, service=%s)", endpoint, serviceName)
	} else {
		logging.Debug("OpenTelemetry без экспортера (service=%s)", serviceName)
	}

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}
	return shutdown, nil
}
