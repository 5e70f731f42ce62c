package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func setupTelemetryDisabled(t *testing.T) func() {
	ctx := context.Background()
	cfg := &Config{
		Enabled:     false,
		ServiceName: "test-service",
	}

	_, err := Init(ctx, cfg)
	require.NoError(t, err)

	return func() {
		_ = Shutdown(ctx)
	}
}

func TestNewCounter_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	counter, err := NewCounter(MetricOpts{
		Name:        "test_counter",
		Description: "A test counter",
		Unit:        "1",
	})
	require.NoError(t, err)
	assert.NotNil(t, counter)

	// No-op instruments must still accept recordings.
	ctx := context.Background()
	counter.Inc(ctx)
	counter.Add(ctx, 5, attribute.String("kind", "test"))
}

func TestCounter_NilSafe(t *testing.T) {
	var counter *Counter
	counter.Inc(context.Background())
	counter.Add(context.Background(), 3)
}

func TestNewHistogram_Disabled(t *testing.T) {
	cleanup := setupTelemetryDisabled(t)
	defer cleanup()

	histogram, err := NewHistogram(MetricOpts{
		Name:        "test_histogram",
		Description: "A test histogram",
		Unit:        "ms",
	})
	require.NoError(t, err)
	assert.NotNil(t, histogram)

	histogram.Record(context.Background(), 12.5)
}

func TestHistogram_NilSafe(t *testing.T) {
	var histogram *Histogram
	histogram.Record(context.Background(), 1.0)
}

func TestGetMeter_BeforeInit(t *testing.T) {
	assert.NotNil(t, GetMeter())
}
