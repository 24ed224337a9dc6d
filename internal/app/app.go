// AngelaMos | 2026
// app.go

package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/carterperez-dev/mentorax-api/internal/admin"
	"github.com/carterperez-dev/mentorax-api/internal/application"
	"github.com/carterperez-dev/mentorax-api/internal/auth"
	"github.com/carterperez-dev/mentorax-api/internal/config"
	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/demo"
	"github.com/carterperez-dev/mentorax-api/internal/event"
	"github.com/carterperez-dev/mentorax-api/internal/field"
	"github.com/carterperez-dev/mentorax-api/internal/goal"
	"github.com/carterperez-dev/mentorax-api/internal/health"
	"github.com/carterperez-dev/mentorax-api/internal/mail"
	"github.com/carterperez-dev/mentorax-api/internal/mentor"
	"github.com/carterperez-dev/mentorax-api/internal/metrics"
	"github.com/carterperez-dev/mentorax-api/internal/middleware"
	"github.com/carterperez-dev/mentorax-api/internal/scholarship"
	"github.com/carterperez-dev/mentorax-api/internal/server"
	"github.com/carterperez-dev/mentorax-api/internal/store"
	"github.com/carterperez-dev/mentorax-api/internal/user"
)

// Deps are the process-level resources. Database and Redis are nil when
// not configured.
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Database *core.Database
	Redis    *core.Redis
	JWT      *auth.JWTManager
	Mailer   mail.Sender
	Tracer   trace.Tracer
}

type App struct {
	Server   *server.Server
	Health   *health.Handler
	Metrics  *metrics.Metrics
	Selector store.Selector
	Seeder   demo.Seeder
}

// dual pairs a postgres repository with its in-memory twin. Without a
// database the pair is memory only.
func dual[R any](db *core.Database, newPG func(core.DBTX) R, mem R) *store.Dual[R] {
	if db == nil || db.DB == nil {
		return store.MemoryOnly(mem)
	}
	return store.NewDual[R](db, newPG(db.DB), mem, true)
}

//nolint:funlen // wiring
func New(deps Deps) *App {
	cfg := deps.Config
	db := deps.Database

	var selector store.Selector = store.NewSwitch(false)
	if db != nil {
		selector = db
	}

	tracer := deps.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(cfg.Otel.ServiceName)
	}

	userStore := dual(db, user.NewRepository, user.NewMemoryRepository())
	tokenStore := dual(db, auth.NewRepository, auth.NewMemoryRepository())
	scholarshipStore := dual(db, scholarship.NewRepository, scholarship.NewMemoryRepository())
	mentorStore := dual(db, mentor.NewRepository, mentor.NewMemoryRepository())
	fieldStore := dual(db, field.NewRepository, field.NewMemoryRepository())
	eventStore := dual(db, event.NewRepository, event.NewMemoryRepository())
	goalStore := dual(db, goal.NewRepository, goal.NewMemoryRepository())
	applicationStore := dual(db, application.NewRepository, application.NewMemoryRepository())

	userSvc := user.NewService(userStore)
	authSvc := auth.NewService(auth.ServiceConfig{
		Repo:         tokenStore,
		JWT:          deps.JWT,
		UserProvider: userSvc,
		Mailer:       deps.Mailer,
		FrontendURL:  cfg.App.FrontendURL,
	})
	scholarshipSvc := scholarship.NewService(scholarshipStore)
	mentorSvc := mentor.NewService(mentorStore)
	fieldSvc := field.NewService(fieldStore)
	eventSvc := event.NewService(eventStore)
	goalSvc := goal.NewService(goalStore)
	applicationSvc := application.NewService(applicationStore, scholarshipSvc, mentorSvc)

	healthCfg := health.Config{
		Environment: cfg.App.Environment,
		Selector:    selector,
	}
	adminCfg := admin.HandlerConfig{
		Selector:    selector,
		UsersByRole: userSvc.CountByRole,
		Counters: map[string]admin.CountFunc{
			"scholarships": scholarshipSvc.Count,
			"mentors":      mentorSvc.Count,
			"fields":       fieldSvc.Count,
			"events":       eventSvc.Count,
			"goals":        goalSvc.Count,
			"applications": applicationSvc.Count,
		},
	}
	if db != nil {
		healthCfg.DB = db
		adminCfg.Database = db
	}
	if deps.Redis != nil {
		healthCfg.Redis = deps.Redis
		adminCfg.Redis = deps.Redis
	}

	healthHandler := health.NewHandler(healthCfg)
	m := metrics.New(selector)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        deps.Logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing(tracer))
	router.Use(middleware.Logger(deps.Logger))
	router.Use(m.Middleware)
	router.Use(middleware.Recoverer)
	router.Use(
		middleware.NewRateLimiter(deps.Redis.Client(), middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			KeyFunc:    middleware.KeyByIP,
			BypassFunc: isProbe,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	router.Method(http.MethodGet, "/metrics", m.Handler())
	router.Get("/.well-known/jwks.json", deps.JWT.GetJWKSHandler())

	authenticator := middleware.Authenticator(deps.JWT)
	adminOnly := middleware.RequireAdmin

	router.Route("/api", func(r chi.Router) {
		auth.NewHandler(authSvc).RegisterRoutes(r, authenticator)

		userHandler := user.NewHandler(userSvc)
		userHandler.RegisterRoutes(r, authenticator, adminOnly)

		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(deps.JWT))

			scholarship.NewHandler(scholarshipSvc).RegisterRoutes(r, authenticator, adminOnly)
			mentor.NewHandler(mentorSvc).RegisterRoutes(r, authenticator, adminOnly)
			field.NewHandler(fieldSvc).RegisterRoutes(r, authenticator, adminOnly)
			event.NewHandler(eventSvc).RegisterRoutes(r, authenticator, adminOnly)
		})
		goal.NewHandler(goalSvc).RegisterRoutes(r, authenticator)
		application.NewHandler(applicationSvc).RegisterRoutes(r, authenticator, adminOnly)

		admin.NewHandler(adminCfg).RegisterRoutes(r, authenticator, adminOnly)
	})

	return &App{
		Server:   srv,
		Health:   healthHandler,
		Metrics:  m,
		Selector: selector,
		Seeder: demo.Seeder{
			Scholarships:     scholarshipSvc,
			Mentors:          mentorSvc,
			Fields:           fieldSvc,
			Events:           eventSvc,
			Users:            userSvc,
			ScholarshipStore: scholarshipStore,
			MentorStore:      mentorStore,
			FieldStore:       fieldStore,
			EventStore:       eventStore,
			UserStore:        userStore,
		},
	}
}

// Seed loads demo records into the memory stores.
func (a *App) Seed(ctx context.Context, cfg config.DemoConfig) error {
	_, err := a.Seeder.Run(ctx, cfg)
	return err
}

func isProbe(r *http.Request) bool {
	switch r.URL.Path {
	case "/health", "/healthz", "/livez", "/readyz", "/metrics":
		return true
	}
	return false
}
