// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/core"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func hit(h http.Handler, ip, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":40000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterLocalFallback(t *testing.T) {
	rl := NewRateLimiter(nil, RateLimitConfig{
		Limit: PerWindow(3, 0, time.Hour),
	})
	h := rl.Handler(http.HandlerFunc(okHandler))

	for i := range 3 {
		rec := hit(h, "198.51.100.7", "/api/scholarships")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := hit(h, "198.51.100.7", "/api/scholarships")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, core.CodeRateLimited, errorCode(t, rec))

	rec = hit(h, "198.51.100.8", "/api/scholarships")
	assert.Equal(t, http.StatusOK, rec.Code, "other clients keep their own budget")
}

func TestRateLimiterBypass(t *testing.T) {
	rl := NewRateLimiter(nil, RateLimitConfig{
		Limit:      PerWindow(1, 1, time.Hour),
		BypassFunc: func(r *http.Request) bool { return r.URL.Path == "/healthz" },
	})
	h := rl.Handler(http.HandlerFunc(okHandler))

	require.Equal(t, http.StatusOK, hit(h, "203.0.113.1", "/api/fields").Code)
	require.Equal(t, http.StatusTooManyRequests, hit(h, "203.0.113.1", "/api/fields").Code)

	for range 5 {
		assert.Equal(t, http.StatusOK, hit(h, "203.0.113.1", "/healthz").Code)
	}
}

func TestPerWindowDefaultsBurst(t *testing.T) {
	limit := PerWindow(100, 0, 15*time.Minute)
	assert.Equal(t, 100, limit.Rate)
	assert.Equal(t, 100, limit.Burst)
	assert.Equal(t, 15*time.Minute, limit.Period)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", ClientIP(req))

	req.Header.Set("X-Real-IP", "192.0.2.10")
	assert.Equal(t, "192.0.2.10", ClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 192.0.2.44")
	assert.Equal(t, "192.0.2.44", ClientIP(req))
}

func TestLocalLimiterSweepDropsIdleBuckets(t *testing.T) {
	l := newLocalLimiter()
	limit := PerWindow(10, 10, time.Second)

	assert.True(t, l.allow("idle", limit).allowed)
	require.Len(t, l.buckets, 1)

	l.sweep(time.Now().Add(entryIdleTTL + time.Minute))
	assert.Empty(t, l.buckets)
}
