// AngelaMos | 2026
// service.go

package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

// TargetChecker reports whether an application target exists.
type TargetChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo    *store.Dual[Repository]
	targets map[string]TargetChecker
	now     func() time.Time
}

func NewService(
	repo *store.Dual[Repository],
	scholarships, mentors TargetChecker,
) *Service {
	return &Service{
		repo: repo,
		targets: map[string]TargetChecker{
			TypeScholarship: scholarships,
			TypeMentor:      mentors,
		},
		now: time.Now,
	}
}

// Apply records the caller's application. The target must exist, and a
// second application to the same target fails with core.ErrDuplicateKey.
func (s *Service) Apply(
	ctx context.Context,
	userID string,
	req CreateApplicationRequest,
) (*Application, error) {
	if userID == "" {
		return nil, fmt.Errorf("apply: %w", core.ErrUnauthorized)
	}

	checker, ok := s.targets[req.Type]
	if !ok {
		return nil, fmt.Errorf("apply: unknown type %q: %w", req.Type, core.ErrInvalidInput)
	}

	raw := strings.TrimSpace(req.target())
	if raw == "" {
		return nil, fmt.Errorf("apply: %sId is required: %w", req.Type, core.ErrInvalidInput)
	}

	target, err := normalizeTarget(raw)
	if err != nil {
		return nil, fmt.Errorf("apply: %s %q: %w", req.Type, raw, core.ErrNotFound)
	}

	exists, err := checker.Exists(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("apply: check target: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("apply: %s %s: %w", req.Type, target, core.ErrNotFound)
	}

	now := s.now().UTC()
	a := &Application{
		ID:        store.NewID(),
		UserID:    userID,
		Type:      req.Type,
		TargetID:  target,
		Data:      req.Data,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if a.Data == nil {
		a.Data = store.Object{}
	}

	err = store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]Application, error) {
	if userID == "" {
		return nil, fmt.Errorf("list applications: %w", core.ErrUnauthorized)
	}
	return s.list(ctx, userID, store.ListParams{})
}

func (s *Service) ListAll(
	ctx context.Context,
	params store.ListParams,
) ([]Application, error) {
	return s.list(ctx, "", params)
}

func (s *Service) list(
	ctx context.Context,
	userID string,
	params store.ListParams,
) ([]Application, error) {
	return store.Query(ctx, s.repo, func(repo Repository) ([]Application, error) {
		return repo.List(ctx, userID, params)
	})
}

// Withdraw deletes one of the caller's own applications.
func (s *Service) Withdraw(ctx context.Context, userID, id string) error {
	if !store.ValidID(id) {
		return fmt.Errorf("withdraw application: %w", core.ErrNotFound)
	}
	return store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.Delete(ctx, userID, id)
	})
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	id, status string,
) (*Application, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("update application status: %w", core.ErrNotFound)
	}
	now := s.now().UTC()
	return store.Query(ctx, s.repo, func(repo Repository) (*Application, error) {
		return repo.UpdateStatus(ctx, id, status, now)
	})
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return store.Query(ctx, s.repo, func(repo Repository) (int, error) {
		return repo.Count(ctx)
	})
}

// normalizeTarget returns the canonical lower-case form of a target id so
// that "ABC..." and "abc..." collide on the uniqueness rule.
func normalizeTarget(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}
