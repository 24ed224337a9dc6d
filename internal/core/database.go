// AngelaMos | 2026
// database.go

package core

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/carterperez-dev/mentorax-api/internal/config"
	"github.com/carterperez-dev/mentorax-api/internal/core/migrations"
)

type ConnState int32

const (
	StateDisconnected ConnState = iota
	StateConnected
)

func (s ConnState) String() string {
	if s == StateConnected {
		return "connected"
	}
	return "disconnected"
}

type MigrateFunc func(ctx context.Context, db *sql.DB) error

// Database wraps the postgres pool together with its last observed
// connection state. The state is what the storage mode selector reads.
type Database struct {
	DB       *sqlx.DB
	state    atomic.Int32
	migrated atomic.Bool
	migrate  MigrateFunc
}

// NewDatabase opens the pool and makes one connection attempt. An
// unreachable server is not an error: the database starts disconnected and
// Monitor keeps retrying.
func NewDatabase(
	ctx context.Context,
	cfg config.DatabaseConfig,
) (*Database, error) {
	db, err := sqlx.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(jitteredDuration(cfg.ConnMaxLifetime))
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	d := WrapDB(db, RunMigrations)
	d.Check(ctx)

	return d, nil
}

// WrapDB adopts an already opened pool. A nil migrate skips migrations.
func WrapDB(db *sqlx.DB, migrate MigrateFunc) *Database {
	return &Database{DB: db, migrate: migrate}
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// Persistent reports whether the last connectivity check succeeded and the
// schema is in place. Safe on a nil receiver (demo mode).
func (d *Database) Persistent() bool {
	if d == nil || d.DB == nil {
		return false
	}
	return d.State() == StateConnected
}

func (d *Database) State() ConnState {
	if d == nil {
		return StateDisconnected
	}
	return ConnState(d.state.Load())
}

// Monitor re-checks connectivity every interval until ctx is cancelled.
func (d *Database) Monitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Check(ctx)
		}
	}
}

// Check pings the database and records the result, migrating on the first
// successful ping.
func (d *Database) Check(ctx context.Context) {
	next := StateConnected

	if err := d.Ping(ctx); err != nil {
		next = StateDisconnected
		slog.Debug("database ping failed", "error", err)
	} else if d.migrate == nil {
		d.migrated.Store(true)
	} else if !d.migrated.Load() {
		if err := d.migrate(ctx, d.DB.DB); err != nil {
			next = StateDisconnected
			slog.Error("database migration failed", "error", err)
		} else {
			d.migrated.Store(true)
		}
	}

	d.transition(next, nil)
}

func (d *Database) transition(next ConnState, cause error) {
	prev := ConnState(d.state.Swap(int32(next)))
	if prev == next {
		return
	}

	if next == StateConnected {
		slog.Info("persistent store available, using database")
		return
	}
	attrs := []any{}
	if cause != nil {
		attrs = append(attrs, "error", cause)
	}
	slog.Warn("persistent store unavailable, falling back to in-memory demo mode", attrs...)
}

// MarkDown switches to disconnected as soon as a query fails because the
// server is unreachable, without waiting for the next Monitor tick. It
// reports whether err was such a failure.
func (d *Database) MarkDown(err error) bool {
	if d == nil || !IsConnectionError(err) {
		return false
	}
	d.transition(StateDisconnected, err)
	return true
}

// IsConnectionError reports whether err means the database could not be
// reached, as opposed to a failing statement. Cancelled requests are not
// connection errors.
func IsConnectionError(err error) bool {
	if err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func (d *Database) Close() error {
	if d != nil && d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

func (d *Database) Ping(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return fmt.Errorf("database not configured")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.DB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

func (d *Database) Stats() sql.DBStats {
	return d.DB.Stats()
}

type DBTX interface {
	sqlx.ExtContext
	sqlx.ExecerContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(
		ctx context.Context,
		dest any,
		query string,
		args ...any,
	) error
}

func InTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback() //nolint:errcheck // best-effort rollback on panic
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func jitteredDuration(base time.Duration) time.Duration {
	if base <= 0 {
		return base
	}
	//nolint:gosec // G404: non-security-sensitive jitter for connection pool
	jitter := time.Duration(rand.Int64N(int64(base/7) + 1))
	return base + jitter
}

const pgUniqueViolation = "23505"

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
