package otel_test

import (
	"context"
	"testing"

	tgotel "github.com/KirkDiggler/togarashi-bot/internal/platform/otel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := tgotel.Setup(context.Background(), "test-service", "")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so nothing is exported
	shutdown, err := tgotel.Setup(context.Background(), "test-service", "http://192.0.2.1:4318")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInjectExtract_RoundTrip(t *testing.T) {
	_, err := tgotel.Setup(context.Background(), "test-service", "")
	require.NoError(t, err)

	provider := sdktrace.NewTracerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()

	ctx, span := provider.Tracer("test").Start(context.Background(), "parent")
	defer span.End()

	carrier := tgotel.Inject(ctx)
	require.Contains(t, carrier, "traceparent")

	remote := trace.SpanContextFromContext(tgotel.Extract(context.Background(), carrier))
	assert.Equal(t, span.SpanContext().TraceID(), remote.TraceID())
	assert.True(t, remote.IsRemote())
}

func TestInject_NoSpan(t *testing.T) {
	assert.Nil(t, tgotel.Inject(context.Background()))
	assert.Equal(t, context.Background(), tgotel.Extract(context.Background(), nil))
}
