// AngelaMos | 2026
// memory_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/core"
)

func TestMemoryRepositorySweepsAbandonedTokens(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemoryRepository(func() time.Time { return clock })

	issue := func(userID, hash string, ttl time.Duration) {
		t.Helper()
		require.NoError(t, repo.Create(ctx, &RefreshToken{
			TokenHash: hash,
			UserID:    userID,
			ExpiresAt: clock.Add(ttl),
		}))
	}

	issue("gone-1", "h1", time.Minute)
	issue("gone-2", "h2", time.Minute)
	issue("active", "h3", 24*time.Hour)
	require.Equal(t, 3, repo.tokens.Len())

	clock = clock.Add(2 * time.Minute)
	issue("active", "h4", 24*time.Hour)
	assert.Equal(t, 4, repo.tokens.Len(), "no sweep before the interval passes")

	clock = clock.Add(sweepInterval)
	issue("active", "h5", 24*time.Hour)
	assert.Equal(t, 3, repo.tokens.Len())

	_, err := repo.FindByHash(ctx, "h1")
	require.ErrorIs(t, err, core.ErrNotFound)

	live, err := repo.ListForUser(ctx, "active")
	require.NoError(t, err)
	assert.Len(t, live, 3)
}
