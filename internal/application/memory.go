// AngelaMos | 2026
// memory.go

package application

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type memoryRepository struct {
	rows *store.Table[Application]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		rows: store.NewTable(func(a *Application) string { return a.ID }, clone),
	}
}

func (r *memoryRepository) Create(_ context.Context, a *Application) error {
	err := r.rows.InsertIf(*a, func(existing *Application) bool {
		return sameTarget(existing, a)
	})
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (r *memoryRepository) List(
	_ context.Context,
	userID string,
	params store.ListParams,
) ([]Application, error) {
	out := r.rows.Select(func(a *Application) bool {
		return matches(a, userID, params)
	})
	store.SortNewest(out, func(a *Application) (time.Time, string) {
		return a.CreatedAt, a.ID
	})
	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Application, error) {
	a, err := r.rows.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}

func (r *memoryRepository) UpdateStatus(
	_ context.Context,
	id, status string,
	at time.Time,
) (*Application, error) {
	a, err := r.rows.Update(id, func(stored *Application) error {
		stored.Status = status
		stored.UpdatedAt = at
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return &a, nil
}

func (r *memoryRepository) Delete(_ context.Context, userID, id string) error {
	removed := r.rows.DeleteWhere(func(a *Application) bool {
		return a.ID == id && a.UserID == userID
	})
	if removed == 0 {
		return fmt.Errorf("delete application: %w", core.ErrNotFound)
	}
	return nil
}

func (r *memoryRepository) Count(_ context.Context) (int, error) {
	return r.rows.Len(), nil
}
