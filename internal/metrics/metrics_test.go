// AngelaMos | 2026
// metrics_test.go

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

func TestStorageGaugeFollowsSelector(t *testing.T) {
	sw := store.NewSwitch(false)
	m := New(sw)

	expected := `
# HELP mentorax_storage_persistent 1 when requests are served from the database, 0 in demo mode.
# TYPE mentorax_storage_persistent gauge
mentorax_storage_persistent 0
`
	require.NoError(t, testutil.GatherAndCompare(
		m.Registry(), strings.NewReader(expected), "mentorax_storage_persistent"))

	sw.Set(true)
	expected = strings.Replace(expected, "persistent 0", "persistent 1", 1)
	require.NoError(t, testutil.GatherAndCompare(
		m.Registry(), strings.NewReader(expected), "mentorax_storage_persistent"))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New(nil)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/scholarships/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scholarships/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	count := testutil.ToFloat64(
		m.requests.WithLabelValues(http.MethodGet, "/api/scholarships/{id}", "404"))
	assert.Equal(t, float64(3), count)
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New(store.NewSwitch(true))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mentorax_storage_persistent 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
