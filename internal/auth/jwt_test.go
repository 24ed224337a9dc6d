// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/config"
	"github.com/carterperez-dev/mentorax-api/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessTokenExpire:  15 * time.Minute,
		RefreshTokenExpire: 24 * time.Hour,
		Issuer:             "mentorax",
		Audience:           "mentorax-api",
	}
}

func newTestManager(t *testing.T, cfg config.JWTConfig) *JWTManager {
	t.Helper()
	m, err := NewEphemeralJWTManager(cfg)
	require.NoError(t, err)
	return m
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager(t, testJWTConfig())

	token, err := m.CreateAccessToken(AccessTokenClaims{
		UserID: "0192f0c0-0000-7000-8000-000000000001",
		Email:  "ada@example.com",
		Role:   RoleMentor,
		Name:   "Ada Lovelace",
	})
	require.NoError(t, err)

	claims, err := m.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "0192f0c0-0000-7000-8000-000000000001", claims.UserID)
	assert.Equal(t, RoleMentor, claims.Role)
	assert.Equal(t, "Ada Lovelace", claims.Name)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	m := newTestManager(t, testJWTConfig())

	refresh, err := m.CreateRefreshToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, core.HashToken(refresh.Token), refresh.Hash)

	_, err = m.VerifyAccessToken(context.Background(), refresh.Token)
	require.ErrorIs(t, err, core.ErrTokenInvalid)

	access, err := m.CreateAccessToken(AccessTokenClaims{UserID: "user-1", Role: RoleStudent})
	require.NoError(t, err)

	_, err = m.VerifyRefreshToken(access)
	require.ErrorIs(t, err, core.ErrTokenInvalid)

	subject, err := m.VerifyRefreshToken(refresh.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestExpiredAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenExpire = -time.Minute
	m := newTestManager(t, cfg)

	token, err := m.CreateAccessToken(AccessTokenClaims{UserID: "user-1", Role: RoleStudent})
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(context.Background(), token)
	require.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestExpiryIsDistinguishedFromOtherClaimFailures(t *testing.T) {
	cfg := testJWTConfig()
	cfg.RefreshTokenExpire = -time.Second
	expiredIssuer := newTestManager(t, cfg)

	refresh, err := expiredIssuer.CreateRefreshToken("user-1")
	require.NoError(t, err)
	_, err = expiredIssuer.VerifyRefreshToken(refresh.Token)
	require.ErrorIs(t, err, core.ErrTokenExpired)

	wrongAudience := testJWTConfig()
	wrongAudience.Audience = "expected-audience"
	m := newTestManager(t, testJWTConfig())
	token, err := m.CreateAccessToken(AccessTokenClaims{UserID: "user-1", Role: RoleStudent})
	require.NoError(t, err)

	m.cfg = wrongAudience
	_, err = m.VerifyAccessToken(context.Background(), token)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
	assert.NotErrorIs(t, err, core.ErrTokenExpired)
}

func TestForeignKeyIsRejected(t *testing.T) {
	issuer := newTestManager(t, testJWTConfig())
	other := newTestManager(t, testJWTConfig())

	token, err := issuer.CreateAccessToken(AccessTokenClaims{UserID: "user-1", Role: RoleStudent})
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(context.Background(), token)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestLoadJWTManager(t *testing.T) {
	dir := t.TempDir()
	cfg := testJWTConfig()
	cfg.PrivateKeyPath = filepath.Join(dir, "private.pem")
	cfg.PublicKeyPath = filepath.Join(dir, "public.pem")

	m, ephemeral, err := LoadJWTManager(cfg, false)
	require.NoError(t, err)
	assert.True(t, ephemeral)
	assert.NotNil(t, m)

	_, _, err = LoadJWTManager(cfg, true)
	require.Error(t, err, "production requires key files")

	require.NoError(t, GenerateKeyPair(cfg.PrivateKeyPath, cfg.PublicKeyPath))

	m, ephemeral, err = LoadJWTManager(cfg, true)
	require.NoError(t, err)
	assert.False(t, ephemeral)
	assert.NotEmpty(t, m.GetKeyID())
}

func TestJWKSHandlerPublishesPublicKeyOnly(t *testing.T) {
	m := newTestManager(t, testJWTConfig())

	rec := httptest.NewRecorder()
	m.GetJWKSHandler()(rec, httptest.NewRequest(http.MethodGet, "/.well-known/jwks.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Keys []map[string]any `json:"keys"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Keys, 1)
	assert.Equal(t, "EC", body.Keys[0]["kty"])
	assert.NotContains(t, body.Keys[0], "d")
}
