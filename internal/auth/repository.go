// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/core"
)

// Repository stores each user's outstanding refresh tokens, keyed by the
// sha256 of the token.
type Repository interface {
	Create(ctx context.Context, token *RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	ListForUser(ctx context.Context, userID string) ([]RefreshToken, error)
	// DeleteForUser removes one token of userID. Removing an absent token
	// is not an error.
	DeleteForUser(ctx context.Context, userID, tokenHash string) error
	DeleteAllForUser(ctx context.Context, userID string) error
	DeleteExpiredForUser(ctx context.Context, userID string, now time.Time) (int64, error)
}

const refreshTokenColumns = `token_hash, user_id, expires_at, user_agent, ip_address, created_at`

const (
	insertRefreshToken = `
		INSERT INTO refresh_tokens (token_hash, user_id, expires_at, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	selectRefreshTokenByHash = `
		SELECT ` + refreshTokenColumns + `
		FROM refresh_tokens
		WHERE token_hash = $1`

	selectLiveRefreshTokens = `
		SELECT ` + refreshTokenColumns + `
		FROM refresh_tokens
		WHERE user_id = $1 AND expires_at > NOW()
		ORDER BY created_at DESC`

	deleteRefreshToken        = `DELETE FROM refresh_tokens WHERE user_id = $1 AND token_hash = $2`
	deleteUserRefreshTokens   = `DELETE FROM refresh_tokens WHERE user_id = $1`
	deleteExpiredRefreshToken = `DELETE FROM refresh_tokens WHERE user_id = $1 AND expires_at <= $2`
)

type pgRepository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &pgRepository{db: db}
}

func (r *pgRepository) Create(ctx context.Context, t *RefreshToken) error {
	err := r.db.GetContext(ctx, &t.CreatedAt, insertRefreshToken,
		t.TokenHash, t.UserID, t.ExpiresAt, t.UserAgent, t.IPAddress)
	switch {
	case core.IsUniqueViolation(err):
		return fmt.Errorf("store refresh token: %w", core.ErrDuplicateKey)
	case err != nil:
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

func (r *pgRepository) FindByHash(ctx context.Context, tokenHash string) (*RefreshToken, error) {
	var t RefreshToken
	err := r.db.GetContext(ctx, &t, selectRefreshTokenByHash, tokenHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("lookup refresh token: %w", core.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("lookup refresh token: %w", err)
	}
	return &t, nil
}

func (r *pgRepository) ListForUser(ctx context.Context, userID string) ([]RefreshToken, error) {
	tokens := []RefreshToken{}
	if err := r.db.SelectContext(ctx, &tokens, selectLiveRefreshTokens, userID); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return tokens, nil
}

func (r *pgRepository) DeleteForUser(ctx context.Context, userID, tokenHash string) error {
	_, err := r.exec(ctx, "revoke session", deleteRefreshToken, userID, tokenHash)
	return err
}

func (r *pgRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.exec(ctx, "revoke sessions", deleteUserRefreshTokens, userID)
	return err
}

func (r *pgRepository) DeleteExpiredForUser(
	ctx context.Context,
	userID string,
	now time.Time,
) (int64, error) {
	return r.exec(ctx, "prune sessions", deleteExpiredRefreshToken, userID, now)
}

func (r *pgRepository) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
