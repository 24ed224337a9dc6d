// AngelaMos | 2026
// memory.go

package scholarship

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type memoryRepository struct {
	rows *store.Table[Scholarship]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		rows: store.NewTable(func(s *Scholarship) string { return s.ID }, clone),
	}
}

func (r *memoryRepository) List(
	_ context.Context,
	params store.ListParams,
) ([]Scholarship, error) {
	out := r.rows.Select(func(s *Scholarship) bool { return matches(s, params) })
	store.SortNewest(out, func(s *Scholarship) (time.Time, string) {
		return s.CreatedAt, s.ID
	})
	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Scholarship, error) {
	s, err := r.rows.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get scholarship: %w", err)
	}
	return &s, nil
}

func (r *memoryRepository) Create(_ context.Context, s *Scholarship) error {
	if err := r.rows.Insert(*s); err != nil {
		return fmt.Errorf("create scholarship: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(_ context.Context, s *Scholarship) error {
	_, err := r.rows.Update(s.ID, func(stored *Scholarship) error {
		*stored = *s
		return nil
	})
	if err != nil {
		return fmt.Errorf("update scholarship: %w", err)
	}
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if err := r.rows.Delete(id); err != nil {
		return fmt.Errorf("delete scholarship: %w", err)
	}
	return nil
}
