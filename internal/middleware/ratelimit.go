// AngelaMos | 2026
// ratelimit.go

package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/carterperez-dev/mentorax-api/internal/core"
)

const (
	sweepInterval = 5 * time.Minute
	entryIdleTTL  = 10 * time.Minute
)

type RateLimitConfig struct {
	Limit      redis_rate.Limit
	KeyFunc    func(*http.Request) string
	BypassFunc func(*http.Request) bool
}

// decision is one rate limit verdict, from either backend.
type decision struct {
	allowed    bool
	remaining  int
	retryAfter time.Duration
	resetAfter time.Duration
}

// RateLimiter enforces a per-key GCRA limit in redis. With no redis client,
// or when redis errors, each instance falls back to an in-process token
// bucket with the same rate and burst.
type RateLimiter struct {
	redis *redis_rate.Limiter
	local *localLimiter
	cfg   RateLimitConfig
}

func NewRateLimiter(rdb *redis.Client, cfg RateLimitConfig) *RateLimiter {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = KeyByIP
	}

	rl := &RateLimiter{local: newLocalLimiter(), cfg: cfg}
	if rdb != nil {
		rl.redis = redis_rate.NewLimiter(rdb)
	}
	return rl
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.cfg.BypassFunc != nil && rl.cfg.BypassFunc(r) {
			next.ServeHTTP(w, r)
			return
		}

		d := rl.decide(r.Context(), rl.cfg.KeyFunc(r))
		rl.writeHeaders(w, d)
		if !d.allowed {
			retry := max(int(d.retryAfter.Seconds()), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			core.JSONError(w, core.RateLimitedError(retry))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) decide(ctx context.Context, key string) decision {
	if rl.redis == nil {
		return rl.local.allow(key, rl.cfg.Limit)
	}

	res, err := rl.redis.Allow(ctx, key, rl.cfg.Limit)
	if err != nil {
		slog.Warn("redis rate limit failed, using local buckets", "error", err)
		return rl.local.allow(key, rl.cfg.Limit)
	}

	return decision{
		allowed:    res.Allowed > 0,
		remaining:  res.Remaining,
		retryAfter: res.RetryAfter,
		resetAfter: res.ResetAfter,
	}
}

func (rl *RateLimiter) writeHeaders(w http.ResponseWriter, d decision) {
	limit := rl.cfg.Limit
	h := w.Header()

	h.Set("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(d.remaining))
	h.Set("X-RateLimit-Reset",
		strconv.FormatInt(time.Now().Add(d.resetAfter).Unix(), 10))
	h.Set("RateLimit-Policy",
		strconv.Itoa(limit.Rate)+";w="+strconv.Itoa(int(limit.Period.Seconds())))
}

// ClientIP takes the last X-Forwarded-For hop, which is the one appended by
// our own load balancer, then X-Real-IP, then the socket address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		return strings.TrimSpace(hops[len(hops)-1])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func KeyByIP(r *http.Request) string {
	return "ratelimit:ip:" + ClientIP(r)
}

// PerWindow allows requests per window. A burst of zero means the whole
// window's budget may be spent at once.
func PerWindow(requests, burst int, window time.Duration) redis_rate.Limit {
	if burst <= 0 {
		burst = requests
	}
	return redis_rate.Limit{Rate: requests, Burst: burst, Period: window}
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type localLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newLocalLimiter() *localLimiter {
	return &localLimiter{
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

func (l *localLimiter) allow(key string, limit redis_rate.Limit) decision {
	now := time.Now()
	perSecond := float64(limit.Rate) / limit.Period.Seconds()
	interval := time.Duration(float64(time.Second) / perSecond)

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= sweepInterval {
		l.sweepLocked(now)
	}
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(perSecond), limit.Burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	d := decision{
		allowed:    b.limiter.AllowN(now, 1),
		remaining:  max(int(b.limiter.TokensAt(now)), 0),
		resetAfter: interval,
	}
	if !d.allowed {
		d.retryAfter = interval
	}
	return d
}

func (l *localLimiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sweepLocked(now)
}

// sweepLocked drops buckets that are idle and full again, so forgetting
// them cannot hand a client extra budget.
func (l *localLimiter) sweepLocked(now time.Time) {
	cutoff := now.Add(-entryIdleTTL)
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) &&
			b.limiter.TokensAt(now) >= float64(b.limiter.Burst()) {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
