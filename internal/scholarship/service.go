// AngelaMos | 2026
// service.go

package scholarship

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
) ([]Scholarship, error) {
	return store.Query(ctx, s.repo, func(repo Repository) ([]Scholarship, error) {
		return repo.List(ctx, params)
	})
}

func (s *Service) Get(ctx context.Context, id string) (*Scholarship, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("get scholarship: %w", core.ErrNotFound)
	}
	return store.Query(ctx, s.repo, func(repo Repository) (*Scholarship, error) {
		return repo.GetByID(ctx, id)
	})
}

// Exists reports whether id names a scholarship in the active backend.
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
	req CreateScholarshipRequest,
) (*Scholarship, error) {
	return store.Query(ctx, s.repo, func(repo Repository) (*Scholarship, error) {
		return s.CreateIn(ctx, repo, req)
	})
}

// CreateIn inserts into a specific backend. The demo seeder uses it.
func (s *Service) CreateIn(
	ctx context.Context,
	repo Repository,
	req CreateScholarshipRequest,
) (*Scholarship, error) {
	sch := req.toEntity()
	now := s.now().UTC()
	sch.ID = store.NewID()
	sch.CreatedAt = now
	sch.UpdatedAt = now

	if err := repo.Create(ctx, &sch); err != nil {
		return nil, err
	}
	return &sch, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateScholarshipRequest,
) (*Scholarship, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("update scholarship: %w", core.ErrNotFound)
	}

	return store.Query(ctx, s.repo, func(repo Repository) (*Scholarship, error) {
		sch, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		req.apply(sch)
		sch.UpdatedAt = s.now().UTC()

		if err := repo.Update(ctx, sch); err != nil {
			return nil, err
		}
		return sch, nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return fmt.Errorf("delete scholarship: %w", core.ErrNotFound)
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
