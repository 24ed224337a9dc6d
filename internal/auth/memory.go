// AngelaMos | 2026
// memory.go

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/store"
)

// sweepInterval bounds how often Create scans the whole table for expired
// tokens. Users who never log in again would otherwise keep theirs forever.
const sweepInterval = 5 * time.Minute

type memoryRepository struct {
	tokens *store.Table[RefreshToken]
	now    func() time.Time

	mu        sync.Mutex
	lastSweep time.Time
}

func NewMemoryRepository() Repository {
	return newMemoryRepository(time.Now)
}

func newMemoryRepository(now func() time.Time) *memoryRepository {
	return &memoryRepository{
		tokens: store.NewTable(
			func(t *RefreshToken) string { return t.TokenHash },
			nil,
		),
		now:       now,
		lastSweep: now(),
	}
}

func (r *memoryRepository) Create(ctx context.Context, token *RefreshToken) error {
	now := r.now()
	r.sweep(ctx, now)

	token.CreatedAt = now.UTC()
	if err := r.tokens.Insert(*token); err != nil {
		return fmt.Errorf("create refresh token: %w", err)
	}
	return nil
}

// sweep drops every expired token, at most once per sweepInterval.
func (r *memoryRepository) sweep(ctx context.Context, now time.Time) {
	r.mu.Lock()
	if now.Sub(r.lastSweep) < sweepInterval {
		r.mu.Unlock()
		return
	}
	r.lastSweep = now
	r.mu.Unlock()

	n := r.tokens.DeleteWhere(func(t *RefreshToken) bool {
		return t.IsExpiredAt(now)
	})
	if n > 0 {
		slog.DebugContext(ctx, "swept expired refresh tokens", "count", n)
	}
}

func (r *memoryRepository) FindByHash(
	_ context.Context,
	tokenHash string,
) (*RefreshToken, error) {
	token, err := r.tokens.Get(tokenHash)
	if err != nil {
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	return &token, nil
}

func (r *memoryRepository) ListForUser(
	_ context.Context,
	userID string,
) ([]RefreshToken, error) {
	now := r.now()
	return r.tokens.Select(func(t *RefreshToken) bool {
		return t.UserID == userID && !t.IsExpiredAt(now)
	}), nil
}

func (r *memoryRepository) DeleteForUser(
	_ context.Context,
	userID, tokenHash string,
) error {
	r.tokens.DeleteWhere(func(t *RefreshToken) bool {
		return t.UserID == userID && t.TokenHash == tokenHash
	})
	return nil
}

func (r *memoryRepository) DeleteAllForUser(_ context.Context, userID string) error {
	r.tokens.DeleteWhere(func(t *RefreshToken) bool {
		return t.UserID == userID
	})
	return nil
}

func (r *memoryRepository) DeleteExpiredForUser(
	_ context.Context,
	userID string,
	now time.Time,
) (int64, error) {
	n := r.tokens.DeleteWhere(func(t *RefreshToken) bool {
		return t.UserID == userID && t.IsExpiredAt(now)
	})
	return int64(n), nil
}
