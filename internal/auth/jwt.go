// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/mentorax-api/internal/config"
	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/middleware"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	claimType  = "type"
	claimRole  = "role"
	claimEmail = "email"
	claimName  = "name"
)

type AccessTokenClaims = middleware.AccessTokenClaims

// JWTManager signs access and refresh tokens with one ES256 key and
// publishes the public half as a JWKS.
type JWTManager struct {
	signingKey jwk.Key
	verifyKey  jwk.Key
	jwks       jwk.Set
	keyID      string
	cfg        config.JWTConfig
}

func NewJWTManager(cfg config.JWTConfig) (*JWTManager, error) {
	pemBytes, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}

	key, err := jwk.ParseKey(pemBytes, jwk.WithPEM(true))
	if err != nil {
		return nil, fmt.Errorf("parse signing key: %w", err)
	}

	return newJWTManager(key, cfg)
}

// NewEphemeralJWTManager signs with a key generated in memory. Tokens do
// not survive a restart.
func NewEphemeralJWTManager(cfg config.JWTConfig) (*JWTManager, error) {
	key, err := generateKey()
	if err != nil {
		return nil, err
	}
	return newJWTManager(key, cfg)
}

// LoadJWTManager reads the configured key pair. Outside production a
// missing key file is replaced by an ephemeral key and the second return
// value is true.
func LoadJWTManager(cfg config.JWTConfig, production bool) (*JWTManager, bool, error) {
	_, err := os.Stat(cfg.PrivateKeyPath)
	switch {
	case err == nil:
		m, err := NewJWTManager(cfg)
		return m, false, err
	case errors.Is(err, fs.ErrNotExist) && !production:
		m, err := NewEphemeralJWTManager(cfg)
		return m, true, err
	default:
		return nil, false, fmt.Errorf("signing key %s: %w", cfg.PrivateKeyPath, err)
	}
}

func generateKey() (jwk.Key, error) {
	raw, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate P-256 key: %w", err)
	}
	key, err := jwk.Import(raw)
	if err != nil {
		return nil, fmt.Errorf("import P-256 key: %w", err)
	}
	return key, nil
}

func newJWTManager(key jwk.Key, cfg config.JWTConfig) (*JWTManager, error) {
	// The kid is the key's RFC 7638 thumbprint, so it is stable across
	// restarts for the same key file.
	thumb, err := key.Thumbprint(crypto.SHA256)
	if err != nil {
		return nil, fmt.Errorf("key thumbprint: %w", err)
	}
	kid := base64.RawURLEncoding.EncodeToString(thumb)[:16]

	if err := setAll(key, map[string]any{
		jwk.AlgorithmKey: jwa.ES256(),
		jwk.KeyIDKey:     kid,
	}); err != nil {
		return nil, err
	}

	pub, err := key.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}
	if err := pub.Set(jwk.KeyUsageKey, "sig"); err != nil {
		return nil, fmt.Errorf("set key usage: %w", err)
	}

	set := jwk.NewSet()
	if err := set.AddKey(pub); err != nil {
		return nil, fmt.Errorf("build jwks: %w", err)
	}

	return &JWTManager{
		signingKey: key,
		verifyKey:  pub,
		jwks:       set,
		keyID:      kid,
		cfg:        cfg,
	}, nil
}

func setAll(key jwk.Key, fields map[string]any) error {
	for name, value := range fields {
		if err := key.Set(name, value); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}

// GenerateKeyPair writes a new PEM encoded ES256 key pair. The private key
// is written owner-only.
func GenerateKeyPair(privateKeyPath, publicKeyPath string) error {
	key, err := generateKey()
	if err != nil {
		return err
	}
	if err := key.Set(jwk.AlgorithmKey, jwa.ES256()); err != nil {
		return fmt.Errorf("set algorithm: %w", err)
	}

	pub, err := key.PublicKey()
	if err != nil {
		return fmt.Errorf("derive public key: %w", err)
	}

	outputs := []struct {
		path string
		key  jwk.Key
		perm os.FileMode
	}{
		{privateKeyPath, key, 0o600},
		{publicKeyPath, pub, 0o644},
	}
	for _, out := range outputs {
		pemBytes, err := jwk.Pem(out.key)
		if err != nil {
			return fmt.Errorf("encode %s: %w", out.path, err)
		}
		if err := os.WriteFile(out.path, pemBytes, out.perm); err != nil {
			return fmt.Errorf("write %s: %w", out.path, err)
		}
	}
	return nil
}

func (m *JWTManager) AccessTokenTTL() time.Duration {
	return m.cfg.AccessTokenExpire
}

func (m *JWTManager) GetKeyID() string {
	return m.keyID
}

// builder starts a token carrying the registered claims shared by both
// token types.
func (m *JWTManager) builder(subject, tokenType string, now, expires time.Time) *jwt.Builder {
	return jwt.NewBuilder().
		JwtID(uuid.NewString()).
		Issuer(m.cfg.Issuer).
		Audience([]string{m.cfg.Audience}).
		Subject(subject).
		IssuedAt(now).
		Expiration(expires).
		Claim(claimType, tokenType)
}

func (m *JWTManager) CreateAccessToken(c AccessTokenClaims) (string, error) {
	now := time.Now()

	token, err := m.builder(c.UserID, tokenTypeAccess, now, now.Add(m.cfg.AccessTokenExpire)).
		Claim(claimEmail, c.Email).
		Claim(claimRole, c.Role).
		Claim(claimName, c.Name).
		Build()
	if err != nil {
		return "", fmt.Errorf("build access token: %w", err)
	}
	return m.sign(token)
}

func (m *JWTManager) VerifyAccessToken(
	_ context.Context,
	raw string,
) (*AccessTokenClaims, error) {
	token, subject, err := m.verify(raw, tokenTypeAccess)
	if err != nil {
		return nil, err
	}

	claims := &AccessTokenClaims{UserID: subject}
	if err := token.Get(claimRole, &claims.Role); err != nil || claims.Role == "" {
		return nil, fmt.Errorf("access token without role: %w", core.ErrTokenInvalid)
	}
	_ = token.Get(claimEmail, &claims.Email) //nolint:errcheck // display only
	_ = token.Get(claimName, &claims.Name)   //nolint:errcheck // display only

	return claims, nil
}

type RefreshTokenData struct {
	Token     string
	Hash      string
	ExpiresAt time.Time
}

// CreateRefreshToken signs a refresh JWT. Each carries a fresh jti so two
// tokens issued in the same second still hash differently.
func (m *JWTManager) CreateRefreshToken(userID string) (*RefreshTokenData, error) {
	now := time.Now()
	expires := now.Add(m.cfg.RefreshTokenExpire)

	token, err := m.builder(userID, tokenTypeRefresh, now, expires).Build()
	if err != nil {
		return nil, fmt.Errorf("build refresh token: %w", err)
	}

	signed, err := m.sign(token)
	if err != nil {
		return nil, err
	}

	return &RefreshTokenData{
		Token:     signed,
		Hash:      core.HashToken(signed),
		ExpiresAt: expires,
	}, nil
}

// VerifyRefreshToken returns the subject of a valid refresh token. It does
// not consult the session store.
func (m *JWTManager) VerifyRefreshToken(raw string) (string, error) {
	_, subject, err := m.verify(raw, tokenTypeRefresh)
	return subject, err
}

func (m *JWTManager) sign(token jwt.Token) (string, error) {
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.ES256(), m.signingKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return string(signed), nil
}

func (m *JWTManager) verify(raw, tokenType string) (jwt.Token, string, error) {
	token, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.ES256(), m.verifyKey),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithAudience(m.cfg.Audience),
	)
	if err != nil {
		if errors.Is(err, jwt.TokenExpiredError()) {
			return nil, "", fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, "", fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	var got string
	if err := token.Get(claimType, &got); err != nil || got != tokenType {
		return nil, "", fmt.Errorf("want %s token: %w", tokenType, core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, "", fmt.Errorf("token without subject: %w", core.ErrTokenInvalid)
	}

	return token, subject, nil
}

func (m *JWTManager) GetJWKSHandler() http.HandlerFunc {
	body, err := json.Marshal(m.jwks)

	return func(w http.ResponseWriter, _ *http.Request) {
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(body)
	}
}
