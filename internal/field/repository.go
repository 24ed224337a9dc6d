// AngelaMos | 2026
// repository.go

package field

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type Repository interface {
	List(ctx context.Context, params store.ListParams) ([]Field, error)
	GetByID(ctx context.Context, id string) (*Field, error)
	Create(ctx context.Context, f *Field) error
	Update(ctx context.Context, f *Field) error
	Delete(ctx context.Context, id string) error
}

const columns = `
		id, name, description, category, icon, career_paths, average_salary,
		growth_outlook, status, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	params store.ListParams,
) ([]Field, error) {
	w := where(params)
	query := `SELECT ` + columns + `
		FROM fields
		` + w.Clause() + `
		ORDER BY created_at DESC, id DESC`

	out := []Field{}
	if err := r.db.SelectContext(ctx, &out, query, w.Args()...); err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Field, error) {
	var f Field
	err := r.db.GetContext(ctx, &f, `SELECT `+columns+` FROM fields WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get field: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get field: %w", err)
	}
	return &f, nil
}

func (r *repository) Create(ctx context.Context, f *Field) error {
	query := `
		INSERT INTO fields (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.Name, f.Description, f.Category, f.Icon, f.CareerPaths,
		f.AverageSalary, f.GrowthOutlook, f.Status, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create field: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create field: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, f *Field) error {
	query := `
		UPDATE fields
		SET name = $2, description = $3, category = $4, icon = $5,
		    career_paths = $6, average_salary = $7, growth_outlook = $8,
		    status = $9, updated_at = $10
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		f.ID, f.Name, f.Description, f.Category, f.Icon, f.CareerPaths,
		f.AverageSalary, f.GrowthOutlook, f.Status, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update field: %w", err)
	}
	return store.RequireAffected(result, "update field")
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fields WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	return store.RequireAffected(result, "delete field")
}
