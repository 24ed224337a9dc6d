// AngelaMos | 2026
// service.go

package field

import (
	"context"
	"errors"
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
) ([]Field, error) {
	return store.Query(ctx, s.repo, func(repo Repository) ([]Field, error) {
		return repo.List(ctx, params)
	})
}

func (s *Service) Get(ctx context.Context, id string) (*Field, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("get field: %w", core.ErrNotFound)
	}
	return store.Query(ctx, s.repo, func(repo Repository) (*Field, error) {
		return repo.GetByID(ctx, id)
	})
}

// Exists reports whether id names a field in the active backend.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.Get(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *Service) Create(
	ctx context.Context,
	req CreateFieldRequest,
) (*Field, error) {
	return store.Query(ctx, s.repo, func(repo Repository) (*Field, error) {
		return s.CreateIn(ctx, repo, req)
	})
}

// CreateIn inserts into a specific backend. The demo seeder uses it.
func (s *Service) CreateIn(
	ctx context.Context,
	repo Repository,
	req CreateFieldRequest,
) (*Field, error) {
	f := req.toEntity()
	now := s.now().UTC()
	f.ID = store.NewID()
	f.CreatedAt = now
	f.UpdatedAt = now

	if err := repo.Create(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateFieldRequest,
) (*Field, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("update field: %w", core.ErrNotFound)
	}

	return store.Query(ctx, s.repo, func(repo Repository) (*Field, error) {
		f, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		req.apply(f)
		f.UpdatedAt = s.now().UTC()

		if err := repo.Update(ctx, f); err != nil {
			return nil, err
		}
		return f, nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return fmt.Errorf("delete field: %w", core.ErrNotFound)
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
