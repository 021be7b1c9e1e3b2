package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTelemetry_NoExporter(t *testing.T) {
	ctx := context.Background()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown, err := InitTelemetry(ctx, "voxelgen-test", "")
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(ctx, "probe")
	assert.True(t, span.SpanContext().IsValid(), "SDK провайдер должен выдавать настоящие спаны")
	span.End()

	assert.NoError(t, shutdown(ctx))
}
