// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func get(t *testing.T, h *Handler, path string, dst any) int {
	t.Helper()

	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
	return rec.Code
}

func TestHealthReportsStorageMode(t *testing.T) {
	sw := store.NewSwitch(false)
	h := NewHandler(Config{
		Environment: "development",
		Selector:    sw,
		StartedAt:   time.Now().Add(-90 * time.Second),
	})

	var resp HealthResponse
	code := get(t, h, "/health", &resp)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "development", resp.Environment)
	assert.Equal(t, store.ModeMemory, resp.Storage)
	assert.Equal(t, "1m30s", resp.Uptime)

	sw.Set(true)
	get(t, h, "/health", &resp)
	assert.Equal(t, store.ModePersistent, resp.Storage)
}

func TestReadinessWithoutDependencies(t *testing.T) {
	h := NewHandler(Config{Environment: "test"})

	var resp ReadinessResponse
	code := get(t, h, "/readyz", &resp)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Status)
	for _, c := range resp.Checks {
		assert.True(t, c.Healthy)
		assert.Equal(t, "not configured", c.Message)
	}
}

func TestReadinessDegradedOnDatabaseFailure(t *testing.T) {
	h := NewHandler(Config{
		DB:    pingFunc(func(context.Context) error { return errors.New("refused") }),
		Redis: pingFunc(func(context.Context) error { return nil }),
	})

	var resp ReadinessResponse
	code := get(t, h, "/readyz", &resp)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "degraded", resp.Status)
	assert.False(t, resp.Checks[0].Healthy)
	assert.True(t, resp.Checks[1].Healthy)
}

func TestShutdownFailsLiveness(t *testing.T) {
	h := NewHandler(Config{})
	h.SetShutdown(true)

	var resp StatusResponse
	assert.Equal(t, http.StatusServiceUnavailable, get(t, h, "/livez", &resp))
	assert.Equal(t, "shutting_down", resp.Status)
}
