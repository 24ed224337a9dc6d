// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

// CountFunc counts the records of one entity in the active backend.
type CountFunc func(ctx context.Context) (int, error)

type Database interface {
	Ping(ctx context.Context) error
	Stats() sql.DBStats
}

type Redis interface {
	Ping(ctx context.Context) error
	PoolStats() *redis.PoolStats
}

// HandlerConfig leaves Database and Redis nil when the service runs
// without them.
type HandlerConfig struct {
	Selector    store.Selector
	Database    Database
	Redis       Redis
	UsersByRole func(ctx context.Context) (map[string]int, error)
	Counters    map[string]CountFunc
}

type Handler struct {
	cfg HandlerConfig
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator, adminOnly)

		r.Get("/stats", h.GetSystemStats)
		r.Get("/stats/db", h.GetDatabaseStats)
		r.Get("/stats/redis", h.GetRedisStats)
		r.Get("/stats/runtime", h.GetRuntimeStats)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	core.OK(w, SystemStatsResponse{
		Storage:  store.Mode(h.cfg.Selector),
		Counts:   h.count(ctx),
		Database: h.databaseStatus(ctx),
		Redis:    h.redisStatus(ctx),
		Runtime:  readRuntime(),
	})
}

func (h *Handler) GetDatabaseStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.databaseStatus(r.Context()))
}

func (h *Handler) GetRedisStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.redisStatus(r.Context()))
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, readRuntime())
}

func (h *Handler) databaseStatus(ctx context.Context) BackendStatus {
	db := h.cfg.Database
	if db == nil {
		return BackendStatus{}
	}
	return BackendStatus{
		Configured: true,
		Healthy:    db.Ping(ctx) == nil,
		Pool:       newDBPoolStats(db.Stats()),
	}
}

func (h *Handler) redisStatus(ctx context.Context) BackendStatus {
	rdb := h.cfg.Redis
	if rdb == nil {
		return BackendStatus{}
	}
	return BackendStatus{
		Configured: true,
		Healthy:    rdb.Ping(ctx) == nil,
		Pool:       newRedisPoolStats(rdb.PoolStats()),
	}
}

// count leaves out any counter that fails instead of failing the response.
func (h *Handler) count(ctx context.Context) Counts {
	counts := Counts{
		UsersByRole: map[string]int{},
		Entities:    make(map[string]int, len(h.cfg.Counters)),
	}

	if h.cfg.UsersByRole != nil {
		byRole, err := h.cfg.UsersByRole(ctx)
		if err != nil {
			slog.WarnContext(ctx, "count users failed", "error", err)
		}
		for role, n := range byRole {
			counts.UsersByRole[role] = n
			counts.Users += n
		}
	}

	for name, fn := range h.cfg.Counters {
		n, err := fn(ctx)
		if err != nil {
			slog.WarnContext(ctx, "count failed", "entity", name, "error", err)
			continue
		}
		counts.Entities[name] = n
	}

	return counts
}
