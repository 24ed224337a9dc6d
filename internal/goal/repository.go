// AngelaMos | 2026
// repository.go

package goal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

// Repository methods take the owner id and never see another user's rows.
type Repository interface {
	List(ctx context.Context, userID string, params store.ListParams) ([]Goal, error)
	Get(ctx context.Context, userID, id string) (*Goal, error)
	Create(ctx context.Context, g *Goal) error
	Update(ctx context.Context, g *Goal) error
	Delete(ctx context.Context, userID, id string) error
	Count(ctx context.Context) (int, error)
}

const columns = `
		id, user_id, title, description, category, status, progress,
		target_date, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	userID string,
	params store.ListParams,
) ([]Goal, error) {
	w := where(userID, params)
	query := `SELECT ` + columns + `
		FROM goals
		` + w.Clause() + `
		ORDER BY created_at DESC, id DESC`

	out := []Goal{}
	if err := r.db.SelectContext(ctx, &out, query, w.Args()...); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return out, nil
}

func (r *repository) Get(ctx context.Context, userID, id string) (*Goal, error) {
	query := `SELECT ` + columns + ` FROM goals WHERE id = $1 AND user_id = $2`

	var g Goal
	err := r.db.GetContext(ctx, &g, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get goal: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &g, nil
}

func (r *repository) Create(ctx context.Context, g *Goal) error {
	query := `
		INSERT INTO goals (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.UserID, g.Title, g.Description, g.Category, g.Status,
		g.Progress, g.TargetDate, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, g *Goal) error {
	query := `
		UPDATE goals
		SET title = $3, description = $4, category = $5, status = $6,
		    progress = $7, target_date = $8, updated_at = $9
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query,
		g.ID, g.UserID, g.Title, g.Description, g.Category, g.Status,
		g.Progress, g.TargetDate, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return store.RequireAffected(result, "update goal")
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return store.RequireAffected(result, "delete goal")
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM goals`); err != nil {
		return 0, fmt.Errorf("count goals: %w", err)
	}
	return n, nil
}
