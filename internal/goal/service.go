// AngelaMos | 2026
// service.go

package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type Service struct {
	repo *store.Dual[Repository]
	now  func() time.Time
}

func NewService(repo *store.Dual[Repository]) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(
	ctx context.Context,
	userID string,
	params store.ListParams,
) ([]Goal, error) {
	if userID == "" {
		return nil, fmt.Errorf("list goals: %w", core.ErrUnauthorized)
	}
	return store.Query(ctx, s.repo, func(repo Repository) ([]Goal, error) {
		return repo.List(ctx, userID, params)
	})
}

// Get returns the caller's goal. A goal owned by someone else is reported
// as not found.
func (s *Service) Get(ctx context.Context, userID, id string) (*Goal, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("get goal: %w", core.ErrNotFound)
	}
	return store.Query(ctx, s.repo, func(repo Repository) (*Goal, error) {
		return repo.Get(ctx, userID, id)
	})
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateGoalRequest,
) (*Goal, error) {
	if userID == "" {
		return nil, fmt.Errorf("create goal: %w", core.ErrUnauthorized)
	}

	g := req.toEntity(userID)
	now := s.now().UTC()
	g.ID = store.NewID()
	g.CreatedAt = now
	g.UpdatedAt = now

	err := store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.Create(ctx, &g)
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateGoalRequest,
) (*Goal, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("update goal: %w", core.ErrNotFound)
	}

	return store.Query(ctx, s.repo, func(repo Repository) (*Goal, error) {
		g, err := repo.Get(ctx, userID, id)
		if err != nil {
			return nil, err
		}

		req.apply(g)
		g.UpdatedAt = s.now().UTC()

		if err := repo.Update(ctx, g); err != nil {
			return nil, err
		}
		return g, nil
	})
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if !store.ValidID(id) {
		return fmt.Errorf("delete goal: %w", core.ErrNotFound)
	}
	return store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.Delete(ctx, userID, id)
	})
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return store.Query(ctx, s.repo, func(repo Repository) (int, error) {
		return repo.Count(ctx)
	})
}
