// AngelaMos | 2026
// telemetry_test.go

package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/config"
)

func TestTelemetryDisabledUsesNoop(t *testing.T) {
	tel, err := NewTelemetry(context.Background(), &config.Config{
		Otel: config.OtelConfig{Enabled: true},
	})
	require.NoError(t, err)
	assert.False(t, tel.Exporting)

	ctx, span := tel.Tracer.Start(context.Background(), "noop")
	defer span.End()
	assert.Empty(t, TraceIDFromContext(ctx))

	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestTelemetryNilShutdown(t *testing.T) {
	var tel *Telemetry
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestSampleRate(t *testing.T) {
	assert.InDelta(t, defaultSampleRate, sampleRate(0), 0)
	assert.InDelta(t, defaultSampleRate, sampleRate(1.5), 0)
	assert.InDelta(t, 0.5, sampleRate(0.5), 0)
}
