// AngelaMos | 2026
// repository.go

package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type Repository interface {
	List(ctx context.Context, params store.ListParams) ([]Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id string) error
}

const columns = `
		id, title, description, category, type, location, online, organizer,
		starts_at, ends_at, registration_url, capacity, status, created_at,
		updated_at`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	params store.ListParams,
) ([]Event, error) {
	w := where(params)
	query := `SELECT ` + columns + `
		FROM events
		` + w.Clause() + `
		ORDER BY created_at DESC, id DESC`

	out := []Event{}
	if err := r.db.SelectContext(ctx, &out, query, w.Args()...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Event, error) {
	query := `SELECT ` + columns + ` FROM events WHERE id = $1`

	var e Event
	err := r.db.GetContext(ctx, &e, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get event: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO events (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.Category, e.Type, e.Location,
		e.Online, e.Organizer, e.StartsAt, e.EndsAt, e.RegistrationURL,
		e.Capacity, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create event: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, e *Event) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, category = $4, type = $5,
		    location = $6, online = $7, organizer = $8, starts_at = $9,
		    ends_at = $10, registration_url = $11, capacity = $12,
		    status = $13, updated_at = $14
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.Category, e.Type, e.Location,
		e.Online, e.Organizer, e.StartsAt, e.EndsAt, e.RegistrationURL,
		e.Capacity, e.Status, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return store.RequireAffected(result, "update event")
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return store.RequireAffected(result, "delete event")
}
