// AngelaMos | 2026
// service.go

package mentor

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
) ([]Mentor, error) {
	return store.Query(ctx, s.repo, func(repo Repository) ([]Mentor, error) {
		return repo.List(ctx, params)
	})
}

func (s *Service) Get(ctx context.Context, id string) (*Mentor, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("get mentor: %w", core.ErrNotFound)
	}
	return store.Query(ctx, s.repo, func(repo Repository) (*Mentor, error) {
		return repo.GetByID(ctx, id)
	})
}

// Exists reports whether id names a mentor in the active backend.
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
	req CreateMentorRequest,
) (*Mentor, error) {
	return store.Query(ctx, s.repo, func(repo Repository) (*Mentor, error) {
		return s.CreateIn(ctx, repo, req)
	})
}

// CreateIn inserts into a specific backend. The demo seeder uses it.
func (s *Service) CreateIn(
	ctx context.Context,
	repo Repository,
	req CreateMentorRequest,
) (*Mentor, error) {
	m := req.toEntity()
	now := s.now().UTC()
	m.ID = store.NewID()
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateMentorRequest,
) (*Mentor, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("update mentor: %w", core.ErrNotFound)
	}

	return store.Query(ctx, s.repo, func(repo Repository) (*Mentor, error) {
		m, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		req.apply(m)
		m.UpdatedAt = s.now().UTC()

		if err := repo.Update(ctx, m); err != nil {
			return nil, err
		}
		return m, nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !store.ValidID(id) {
		return fmt.Errorf("delete mentor: %w", core.ErrNotFound)
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
