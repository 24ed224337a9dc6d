// AngelaMos | 2026
// repository.go

package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type Repository interface {
	// Create inserts a unless the user already applied to the same target,
	// in which case it returns core.ErrDuplicateKey.
	Create(ctx context.Context, a *Application) error
	List(ctx context.Context, userID string, params store.ListParams) ([]Application, error)
	GetByID(ctx context.Context, id string) (*Application, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) (*Application, error)
	Delete(ctx context.Context, userID, id string) error
	Count(ctx context.Context) (int, error)
}

const columns = `
		id, user_id, type, target_id, data, status, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Application) error {
	query := `
		INSERT INTO applications (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, type, target_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query,
		a.ID, a.UserID, a.Type, a.TargetID, a.Data, a.Status,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("create application: %w", core.ErrDuplicateKey)
	}
	return nil
}

func (r *repository) List(
	ctx context.Context,
	userID string,
	params store.ListParams,
) ([]Application, error) {
	w := where(userID, params)
	query := `SELECT ` + columns + `
		FROM applications
		` + w.Clause() + `
		ORDER BY created_at DESC, id DESC`

	out := []Application{}
	if err := r.db.SelectContext(ctx, &out, query, w.Args()...); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Application, error) {
	query := `SELECT ` + columns + ` FROM applications WHERE id = $1`

	var a Application
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get application: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
	at time.Time,
) (*Application, error) {
	query := `
		UPDATE applications
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + columns

	var a Application
	err := r.db.GetContext(ctx, &a, query, id, status, at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update application status: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return &a, nil
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM applications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return store.RequireAffected(result, "delete application")
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM applications`); err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}
