// AngelaMos | 2026
// memory.go

package field

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type memoryRepository struct {
	rows *store.Table[Field]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		rows: store.NewTable(func(f *Field) string { return f.ID }, clone),
	}
}

func (r *memoryRepository) List(
	_ context.Context,
	params store.ListParams,
) ([]Field, error) {
	out := r.rows.Select(func(f *Field) bool { return matches(f, params) })
	store.SortNewest(out, func(f *Field) (time.Time, string) {
		return f.CreatedAt, f.ID
	})
	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Field, error) {
	f, err := r.rows.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get field: %w", err)
	}
	return &f, nil
}

func (r *memoryRepository) Create(_ context.Context, f *Field) error {
	if err := r.rows.Insert(*f); err != nil {
		return fmt.Errorf("create field: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(_ context.Context, f *Field) error {
	_, err := r.rows.Update(f.ID, func(stored *Field) error {
		*stored = *f
		return nil
	})
	if err != nil {
		return fmt.Errorf("update field: %w", err)
	}
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	if err := r.rows.Delete(id); err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	return nil
}
