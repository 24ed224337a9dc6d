// AngelaMos | 2026
// memory.go

package mentor

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type memoryRepository struct {
	rows *store.Table[Mentor]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		rows: store.NewTable(func(m *Mentor) string { return m.ID }, clone),
	}
}

func (r *memoryRepository) List(
	_ context.Context,
	params store.ListParams,
) ([]Mentor, error) {
	out := r.rows.Select(func(m *Mentor) bool { return matches(m, params) })
	store.SortNewest(out, func(m *Mentor) (time.Time, string) {
		return m.CreatedAt, m.ID
	})
	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Mentor, error) {
	m, err := r.rows.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get mentor: %w", err)
	}
	return &m, nil
}

func (r *memoryRepository) Create(_ context.Context, m *Mentor) error {
	if err := r.rows.Insert(*m); err != nil {
		return fmt.Errorf("create mentor: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(_ context.Context, m *Mentor) error {
	_, err := r.rows.Update(m.ID, func(stored *Mentor) error {
		*stored = *m
		return nil
	})
	if err != nil {
		return fmt.Errorf("update mentor: %w", err)
	}
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if err := r.rows.Delete(id); err != nil {
		return fmt.Errorf("delete mentor: %w", err)
	}
	return nil
}
