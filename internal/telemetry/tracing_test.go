package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"reachpay/internal/config/configs"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := Setup(context.Background(), configs.Otel{ServiceName: "test"}, "test")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, shutdown(ctx))
}

func TestSetupCreatesProvider(t *testing.T) {
	// non-routable, nothing is exported because no span is recorded
	shutdown, err := Setup(context.Background(), configs.Otel{Endpoint: "http://192.0.2.1:4318", ServiceName: "test"}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
