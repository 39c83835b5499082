//go:build unit
// +build unit

package tracing

import (
	"context"
	"testing"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &config.TracingSettings{ServiceName: "simone-test"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NoError(t, shutdown(context.Background()))
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

func TestInitTracer_Enabled(t *testing.T) {
	// The gRPC client connects lazily so no collector is needed to build the provider
	shutdown, err := InitTracer(context.Background(), &config.TracingSettings{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		ServiceName: "simone-test",
		Environment: "test",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
