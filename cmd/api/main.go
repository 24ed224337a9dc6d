// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/app"
	"github.com/carterperez-dev/mentorax-api/internal/auth"
	"github.com/carterperez-dev/mentorax-api/internal/config"
	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/mail"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting mentorax api",
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"demo_mode", cfg.DemoMode(),
	)

	telemetry, err := core.NewTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	if telemetry.Exporting {
		logger.Info("tracing enabled", "endpoint", cfg.Otel.Endpoint)
	}

	var db *core.Database
	if !cfg.DemoMode() {
		db, err = core.NewDatabase(ctx, cfg.Database)
		if err != nil {
			return err
		}
		go db.Monitor(ctx, cfg.Database.MonitorInterval)
	} else {
		logger.Warn("DATABASE_URL not set, serving from in-memory demo stores")
	}

	var redis *core.Redis
	if cfg.Redis.URL != "" {
		redis, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, rate limiting per instance",
				"error", err,
			)
			redis = nil
		}
	}

	jwtManager, ephemeral, err := auth.LoadJWTManager(cfg.JWT, cfg.IsProduction())
	if err != nil {
		return err
	}
	if ephemeral {
		logger.Warn("jwt keys not found, using an ephemeral signing key",
			"private_key_path", cfg.JWT.PrivateKeyPath,
		)
	}
	logger.Info("jwt manager ready",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	mailer, err := mail.New(cfg.Mail)
	if err != nil {
		return err
	}
	if !cfg.Mail.Configured() {
		logger.Info("smtp not configured, outgoing mail is logged only")
	}

	a := app.New(app.Deps{
		Config:   cfg,
		Logger:   logger,
		Database: db,
		Redis:    redis,
		JWT:      jwtManager,
		Mailer:   mailer,
		Tracer:   telemetry.Tracer,
	})

	if err := a.Seed(ctx, cfg.Demo); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}

	core.ExposeInternalErrors(!cfg.IsProduction())

	errChan := make(chan error, 1)
	go func() {
		errChan <- a.Server.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay,
	)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	if redis != nil {
		if err := redis.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
