// AngelaMos | 2026
// service.go

package event

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
	params store.ListParams,
) ([]Event, error) {
	return store.Query(ctx, s.repo, func(repo Repository) ([]Event, error) {
		return repo.List(ctx, params)
	})
}

func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("get event: %w", core.ErrNotFound)
	}
	return store.Query(ctx, s.repo, func(repo Repository) (*Event, error) {
		return repo.GetByID(ctx, id)
	})
}

func (s *Service) Create(
	ctx context.Context,
	req CreateEventRequest,
) (*Event, error) {
	return store.Query(ctx, s.repo, func(repo Repository) (*Event, error) {
		return s.CreateIn(ctx, repo, req)
	})
}

// CreateIn inserts into a specific backend. The demo seeder uses it.
func (s *Service) CreateIn(
	ctx context.Context,
	repo Repository,
	req CreateEventRequest,
) (*Event, error) {
	e := req.toEntity()
	if err := checkWindow(&e); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	now := s.now().UTC()
	e.ID = store.NewID()
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := repo.Create(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateEventRequest,
) (*Event, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("update event: %w", core.ErrNotFound)
	}

	return store.Query(ctx, s.repo, func(repo Repository) (*Event, error) {
		e, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		req.apply(e)
		if err := checkWindow(e); err != nil {
			return nil, fmt.Errorf("update event: %w", err)
		}
		e.UpdatedAt = s.now().UTC()

		if err := repo.Update(ctx, e); err != nil {
			return nil, err
		}
		return e, nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return fmt.Errorf("delete event: %w", core.ErrNotFound)
	}
	return store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.Delete(ctx, id)
	})
}

func (s *Service) Count(ctx context.Context) (int, error) {
	rows, err := s.List(ctx, store.ListParams{})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
