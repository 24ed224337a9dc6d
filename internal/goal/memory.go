// AngelaMos | 2026
// memory.go

package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type memoryRepository struct {
	rows *store.Table[Goal]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		rows: store.NewTable(func(g *Goal) string { return g.ID }, clone),
	}
}

func (r *memoryRepository) List(
	_ context.Context,
	userID string,
	params store.ListParams,
) ([]Goal, error) {
	out := r.rows.Select(func(g *Goal) bool { return matches(g, userID, params) })
	store.SortNewest(out, func(g *Goal) (time.Time, string) {
		return g.CreatedAt, g.ID
	})
	return out, nil
}

func (r *memoryRepository) Get(_ context.Context, userID, id string) (*Goal, error) {
	g, err := r.rows.Get(id)
	if err != nil || g.UserID != userID {
		return nil, fmt.Errorf("get goal: %w", core.ErrNotFound)
	}
	return &g, nil
}

func (r *memoryRepository) Create(_ context.Context, g *Goal) error {
	if err := r.rows.Insert(*g); err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(_ context.Context, g *Goal) error {
	_, err := r.rows.Update(g.ID, func(stored *Goal) error {
		if stored.UserID != g.UserID {
			return core.ErrNotFound
		}
		*stored = *g
		return nil
	})
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, userID, id string) error {
	removed := r.rows.DeleteWhere(func(g *Goal) bool {
		return g.ID == id && g.UserID == userID
	})
	if removed == 0 {
		return fmt.Errorf("delete goal: %w", core.ErrNotFound)
	}
	return nil
}

func (r *memoryRepository) Count(_ context.Context) (int, error) {
	return r.rows.Len(), nil
}
