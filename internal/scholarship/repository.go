// AngelaMos | 2026
// repository.go

package scholarship

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type Repository interface {
	List(ctx context.Context, params store.ListParams) ([]Scholarship, error)
	GetByID(ctx context.Context, id string) (*Scholarship, error)
	Create(ctx context.Context, s *Scholarship) error
	Update(ctx context.Context, s *Scholarship) error
	Delete(ctx context.Context, id string) error
}

const columns = `
		id, name, organization, description, category, field, country,
		amount, currency, deadline, eligibility, application_url, status,
		created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	params store.ListParams,
) ([]Scholarship, error) {
	w := where(params)
	query := `SELECT ` + columns + `
		FROM scholarships
		` + w.Clause() + `
		ORDER BY created_at DESC, id DESC`

	out := []Scholarship{}
	if err := r.db.SelectContext(ctx, &out, query, w.Args()...); err != nil {
		return nil, fmt.Errorf("list scholarships: %w", err)
	}
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Scholarship, error) {
	query := `SELECT ` + columns + ` FROM scholarships WHERE id = $1`

	var s Scholarship
	err := r.db.GetContext(ctx, &s, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get scholarship: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get scholarship: %w", err)
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, s *Scholarship) error {
	query := `
		INSERT INTO scholarships (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Organization, s.Description, s.Category, s.Field,
		s.Country, s.Amount, s.Currency, s.Deadline, s.Eligibility,
		s.ApplicationURL, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create scholarship: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create scholarship: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, s *Scholarship) error {
	query := `
		UPDATE scholarships
		SET name = $2, organization = $3, description = $4, category = $5,
		    field = $6, country = $7, amount = $8, currency = $9,
		    deadline = $10, eligibility = $11, application_url = $12,
		    status = $13, updated_at = $14
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Organization, s.Description, s.Category, s.Field,
		s.Country, s.Amount, s.Currency, s.Deadline, s.Eligibility,
		s.ApplicationURL, s.Status, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update scholarship: %w", err)
	}
	return store.RequireAffected(result, "update scholarship")
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM scholarships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete scholarship: %w", err)
	}
	return store.RequireAffected(result, "delete scholarship")
}
