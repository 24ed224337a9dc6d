// AngelaMos | 2026
// handler_test.go

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/middleware"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

func withRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithClaims(r.Context(), &middleware.AccessTokenClaims{
				UserID: store.NewID(),
				Role:   role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TestStatsInDemoMode(t *testing.T) {
	h := NewHandler(HandlerConfig{
		Selector: store.NewSwitch(false),
		UsersByRole: func(context.Context) (map[string]int, error) {
			return map[string]int{"student": 3, "admin": 1}, nil
		},
		Counters: map[string]CountFunc{
			"scholarships": func(context.Context) (int, error) { return 6, nil },
			"events": func(context.Context) (int, error) {
				return 0, errors.New("boom")
			},
		},
	})

	r := chi.NewRouter()
	h.RegisterRoutes(r, withRole(middleware.RoleAdmin), middleware.RequireAdmin)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data SystemStatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	stats := resp.Data
	assert.Equal(t, store.ModeMemory, stats.Storage)
	assert.Equal(t, 4, stats.Counts.Users)
	assert.Equal(t, 6, stats.Counts.Entities["scholarships"])
	assert.NotContains(t, stats.Counts.Entities, "events")
	assert.False(t, stats.Database.Configured)
	assert.False(t, stats.Redis.Healthy)
	assert.Nil(t, stats.Database.Pool)
}

func TestStatsRequireAdmin(t *testing.T) {
	h := NewHandler(HandlerConfig{})

	r := chi.NewRouter()
	h.RegisterRoutes(r, withRole("student"), middleware.RequireAdmin)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
