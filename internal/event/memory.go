// AngelaMos | 2026
// memory.go

package event

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type memoryRepository struct {
	rows *store.Table[Event]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		rows: store.NewTable(func(e *Event) string { return e.ID }, clone),
	}
}

func (r *memoryRepository) List(
	_ context.Context,
	params store.ListParams,
) ([]Event, error) {
	out := r.rows.Select(func(e *Event) bool { return matches(e, params) })
	store.SortNewest(out, func(e *Event) (time.Time, string) {
		return e.CreatedAt, e.ID
	})
	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Event, error) {
	e, err := r.rows.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

func (r *memoryRepository) Create(_ context.Context, e *Event) error {
	if err := r.rows.Insert(*e); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(_ context.Context, e *Event) error {
	_, err := r.rows.Update(e.ID, func(stored *Event) error {
		*stored = *e
		return nil
	})
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if err := r.rows.Delete(id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
