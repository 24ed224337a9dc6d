// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/auth"
	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type Service struct {
	repo *store.Dual[Repository]
}

func NewService(repo *store.Dual[Repository]) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := store.Query(ctx, s.repo, func(repo Repository) (*User, error) {
		return repo.GetByEmail(ctx, normalizeEmail(email))
	})
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByResetTokenHash(
	ctx context.Context,
	hash string,
) (*auth.UserInfo, error) {
	user, err := store.Query(ctx, s.repo, func(repo Repository) (*User, error) {
		return repo.GetByResetTokenHash(ctx, hash)
	})
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	nu auth.NewUser,
) (*auth.UserInfo, error) {
	user, err := store.Query(ctx, s.repo, func(repo Repository) (*User, error) {
		return s.create(ctx, repo, nu)
	})
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

// CreateIn writes straight to the given backend. Used for seeding and the
// admin CLI, where the backend is chosen up front.
func (s *Service) CreateIn(
	ctx context.Context,
	repo Repository,
	nu auth.NewUser,
) (*User, error) {
	return s.create(ctx, repo, nu)
}

func (s *Service) create(
	ctx context.Context,
	repo Repository,
	nu auth.NewUser,
) (*User, error) {
	role := nu.Role
	if role == "" {
		role = RoleStudent
	}
	if !ValidRole(role) {
		return nil, fmt.Errorf(
			"create user: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	user := &User{
		ID:           store.NewID(),
		Email:        normalizeEmail(nu.Email),
		PasswordHash: nu.PasswordHash,
		FirstName:    nu.FirstName,
		LastName:     nu.LastName,
		Field:        nu.Field,
		Role:         role,
		IsActive:     true,
	}

	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.UpdatePassword(ctx, userID, passwordHash)
	})
}

func (s *Service) RecordLogin(
	ctx context.Context,
	userID string,
	at time.Time,
) error {
	return store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.RecordLogin(ctx, userID, at)
	})
}

func (s *Service) SetResetToken(
	ctx context.Context,
	userID, hash string,
	expiresAt time.Time,
) error {
	return store.Exec(ctx, s.repo, func(repo Repository) error {
		return repo.SetResetToken(ctx, userID, hash, expiresAt)
	})
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	return store.Query(ctx, s.repo, func(repo Repository) (*User, error) {
		return repo.GetByID(ctx, id)
	})
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	id string,
	req UpdateProfileRequest,
) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("update profile: %w", core.ErrUnauthorized)
	}

	return s.modify(ctx, id, func(user *User) {
		if req.FirstName != nil {
			user.FirstName = strings.TrimSpace(*req.FirstName)
		}
		if req.LastName != nil {
			user.LastName = strings.TrimSpace(*req.LastName)
		}
		if req.Field != nil {
			user.Field = strings.TrimSpace(*req.Field)
		}
		if req.Bio != nil {
			user.Bio = *req.Bio
		}
	})
}

func (s *Service) UpdateUserRole(
	ctx context.Context,
	requesterID, id, role string,
) (*User, error) {
	if !ValidRole(role) {
		return nil, fmt.Errorf(
			"update role: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	if requesterID == id && role != RoleAdmin {
		return nil, fmt.Errorf("cannot demote yourself: %w", core.ErrForbidden)
	}

	return s.modify(ctx, id, func(u *User) { u.Role = role })
}

// SetActive soft-disables or re-enables an account. Admins cannot disable
// themselves.
func (s *Service) SetActive(
	ctx context.Context,
	requesterID, id string,
	active bool,
) (*User, error) {
	if requesterID == id && !active {
		return nil, fmt.Errorf("cannot deactivate yourself: %w", core.ErrForbidden)
	}

	return s.modify(ctx, id, func(u *User) { u.IsActive = active })
}

func (s *Service) modify(
	ctx context.Context,
	id string,
	fn func(*User),
) (*User, error) {
	if !store.ValidID(id) {
		return nil, fmt.Errorf("modify user: %w", core.ErrNotFound)
	}

	return store.Query(ctx, s.repo, func(repo Repository) (*User, error) {
		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		fn(user)

		if err := repo.Update(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	})
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	params.Normalize()

	var total int
	users, err := store.Query(ctx, s.repo, func(repo Repository) ([]User, error) {
		rows, n, err := repo.List(ctx, params)
		total = n
		return rows, err
	})
	return users, total, err
}

func (s *Service) CountByRole(ctx context.Context) (map[string]int, error) {
	return store.Query(ctx, s.repo, func(repo Repository) (map[string]int, error) {
		return repo.CountByRole(ctx)
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:                  u.ID,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Field:               u.Field,
		Bio:                 u.Bio,
		Role:                u.Role,
		IsActive:            u.IsActive,
		EmailVerified:       u.EmailVerified,
		LoginCount:          u.LoginCount,
		LastLoginAt:         u.LastLoginAt,
		ResetTokenExpiresAt: u.ResetTokenExpiresAt,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
