package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/magabrotheeeer/gym-membership/internal/config"
)

func TestSetup_WithoutExporter(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.Tracing{ServiceName: "gym-test"})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	require.NoError(t, shutdown(context.Background()))
}
