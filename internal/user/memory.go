// AngelaMos | 2026
// memory.go

package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type memoryRepository struct {
	users *store.Table[User]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		users: store.NewTable(func(u *User) string { return u.ID }, cloneUser),
	}
}

func (r *memoryRepository) Create(_ context.Context, user *User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.users.InsertIf(*user, func(existing *User) bool {
		return strings.EqualFold(existing.Email, user.Email)
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, err := r.users.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *memoryRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	u, err := r.users.Find(func(u *User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (r *memoryRepository) GetByResetTokenHash(
	_ context.Context,
	hash string,
) (*User, error) {
	u, err := r.users.Find(func(u *User) bool {
		return u.ResetTokenHash != nil && *u.ResetTokenHash == hash
	})
	if err != nil {
		return nil, fmt.Errorf("get user by reset token: %w", err)
	}
	return &u, nil
}

func (r *memoryRepository) Update(_ context.Context, user *User) error {
	updated, err := r.users.Update(user.ID, func(u *User) error {
		u.FirstName = user.FirstName
		u.LastName = user.LastName
		u.Field = user.Field
		u.Bio = user.Bio
		u.Role = user.Role
		u.IsActive = user.IsActive
		u.EmailVerified = user.EmailVerified
		u.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	user.UpdatedAt = updated.UpdatedAt
	return nil
}

func (r *memoryRepository) UpdatePassword(
	_ context.Context,
	id, passwordHash string,
) error {
	_, err := r.users.Update(id, func(u *User) error {
		u.PasswordHash = passwordHash
		u.ResetTokenHash = nil
		u.ResetTokenExpiresAt = nil
		u.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *memoryRepository) SetResetToken(
	_ context.Context,
	id, hash string,
	expiresAt time.Time,
) error {
	_, err := r.users.Update(id, func(u *User) error {
		u.ResetTokenHash = &hash
		u.ResetTokenExpiresAt = &expiresAt
		u.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	return nil
}

func (r *memoryRepository) RecordLogin(
	_ context.Context,
	id string,
	at time.Time,
) error {
	_, err := r.users.Update(id, func(u *User) error {
		u.LoginCount++
		u.LastLoginAt = &at
		return nil
	})
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}

func (r *memoryRepository) List(
	_ context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	params.Normalize()

	users := r.users.Select(func(u *User) bool {
		return store.MatchEq(params.Role, u.Role) &&
			store.MatchSearch(params.Search, u.Email, u.FirstName, u.LastName)
	})
	store.SortNewest(users, func(u *User) (time.Time, string) {
		return u.CreatedAt, u.ID
	})

	return store.Paginate(users, params.Offset(), params.PageSize), len(users), nil
}

func (r *memoryRepository) CountByRole(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, u := range r.users.Select(nil) {
		counts[u.Role]++
	}
	return counts, nil
}

