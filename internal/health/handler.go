// AngelaMos | 2026
// handler.go

package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

const probeTimeout = 5 * time.Second

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
	statusDraining = "shutting_down"
)

type Checker interface {
	Ping(ctx context.Context) error
}

// Config wires the handler. DB and Redis are nil when the service runs
// without them; a nil dependency is reported as not configured and does
// not degrade readiness.
type Config struct {
	Environment string
	Selector    store.Selector
	DB          Checker
	Redis       Checker
	StartedAt   time.Time
}

type dependency struct {
	name    string
	checker Checker
}

type Handler struct {
	environment string
	selector    store.Selector
	deps        []dependency
	startedAt   time.Time

	notReady atomic.Bool
	draining atomic.Bool
}

func NewHandler(cfg Config) *Handler {
	h := &Handler{
		environment: cfg.Environment,
		selector:    cfg.Selector,
		startedAt:   cfg.StartedAt,
		deps: []dependency{
			{name: "database", checker: cfg.DB},
			{name: "redis", checker: cfg.Redis},
		},
	}
	if h.startedAt.IsZero() {
		h.startedAt = time.Now()
	}
	return h
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/healthz", h.Liveness)
	r.Get("/livez", h.Liveness)
	r.Get("/readyz", h.Readiness)
}

func (h *Handler) SetReady(ready bool) {
	h.notReady.Store(!ready)
}

// SetShutdown makes every probe answer 503 while the server drains.
func (h *Handler) SetShutdown(shutdown bool) {
	h.draining.Store(shutdown)
}

// Health reports process status together with the environment name and
// the storage backend currently serving requests.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{
		Status:      statusOK,
		Environment: h.environment,
		Storage:     store.Mode(h.selector),
		Uptime:      time.Since(h.startedAt).Truncate(time.Second).String(),
		Timestamp:   time.Now().UTC(),
	}

	code := http.StatusOK
	if h.draining.Load() {
		resp.Status, code = statusDraining, http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	if h.draining.Load() {
		writeJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: statusDraining})
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: statusOK})
}

// Readiness pings the optional dependencies. A failing database leaves the
// service serving from memory, so a degraded result is still 200.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	switch {
	case h.draining.Load():
		writeJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: statusDraining})
		return
	case h.notReady.Load():
		writeJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: statusNotReady})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := ReadinessResponse{
		Status:  statusOK,
		Storage: store.Mode(h.selector),
		Checks:  h.probe(ctx),
	}
	for _, c := range resp.Checks {
		if !c.Healthy {
			resp.Status = statusDegraded
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) probe(ctx context.Context) []HealthCheck {
	results := make([]HealthCheck, len(h.deps))

	var wg sync.WaitGroup
	for i, dep := range h.deps {
		wg.Go(func() {
			results[i] = dep.check(ctx)
		})
	}
	wg.Wait()

	return results
}

func (d dependency) check(ctx context.Context) HealthCheck {
	result := HealthCheck{Name: d.name, Healthy: true}
	if d.checker == nil {
		result.Message = "not configured"
		return result
	}

	start := time.Now()
	err := d.checker.Ping(ctx)
	result.Latency = time.Since(start).String()
	if err != nil {
		result.Healthy = false
		result.Message = "ping failed"
	}
	return result
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint:errcheck // client went away
}

type StatusResponse struct {
	Status string `json:"status"`
}

type HealthResponse struct {
	Status      string    `json:"status"`
	Environment string    `json:"environment"`
	Storage     string    `json:"storage"`
	Uptime      string    `json:"uptime"`
	Timestamp   time.Time `json:"timestamp"`
}

type ReadinessResponse struct {
	Status  string        `json:"status"`
	Storage string        `json:"storage"`
	Checks  []HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
