// AngelaMos | 2026
// repository.go

package mentor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type Repository interface {
	List(ctx context.Context, params store.ListParams) ([]Mentor, error)
	GetByID(ctx context.Context, id string) (*Mentor, error)
	Create(ctx context.Context, m *Mentor) error
	Update(ctx context.Context, m *Mentor) error
	Delete(ctx context.Context, id string) error
}

const columns = `
		id, name, title, company, category, field, country, bio, expertise,
		experience_years, rating, avatar_url, status, created_at, updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	params store.ListParams,
) ([]Mentor, error) {
	w := where(params)
	query := `SELECT ` + columns + `
		FROM mentors
		` + w.Clause() + `
		ORDER BY created_at DESC, id DESC`

	out := []Mentor{}
	if err := r.db.SelectContext(ctx, &out, query, w.Args()...); err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Mentor, error) {
	query := `SELECT ` + columns + ` FROM mentors WHERE id = $1`

	var m Mentor
	err := r.db.GetContext(ctx, &m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get mentor: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get mentor: %w", err)
	}
	return &m, nil
}

func (r *repository) Create(ctx context.Context, m *Mentor) error {
	query := `
		INSERT INTO mentors (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Title, m.Company, m.Category, m.Field, m.Country,
		m.Bio, m.Expertise, m.ExperienceYears, m.Rating, m.AvatarURL,
		m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create mentor: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create mentor: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, m *Mentor) error {
	query := `
		UPDATE mentors
		SET name = $2, title = $3, company = $4, category = $5, field = $6,
		    country = $7, bio = $8, expertise = $9, experience_years = $10,
		    rating = $11, avatar_url = $12, status = $13, updated_at = $14
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.Title, m.Company, m.Category, m.Field, m.Country,
		m.Bio, m.Expertise, m.ExperienceYears, m.Rating, m.AvatarURL,
		m.Status, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update mentor: %w", err)
	}
	return store.RequireAffected(result, "update mentor")
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM mentors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mentor: %w", err)
	}
	return store.RequireAffected(result, "delete mentor")
}
