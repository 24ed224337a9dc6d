// AngelaMos | 2026
// app_test.go

package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/auth"
	"github.com/carterperez-dev/mentorax-api/internal/config"
	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/mail"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "MentoraX API",
			Environment: "test",
			FrontendURL: "http://localhost:3000",
		},
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		JWT: config.JWTConfig{
			AccessTokenExpire:  time.Hour,
			RefreshTokenExpire: 24 * time.Hour,
			Issuer:             "mentorax",
			Audience:           "mentorax-api",
		},
		RateLimit: config.RateLimitConfig{
			Requests: 1000,
			Burst:    1000,
			Window:   time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		},
		Otel: config.OtelConfig{ServiceName: "mentorax-api"},
		Demo: config.DemoConfig{SeedData: true},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	jwtManager, err := auth.NewEphemeralJWTManager(cfg.JWT)
	require.NoError(t, err)

	a := New(Deps{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		JWT:    jwtManager,
		Mailer: &mail.LogSender{},
	})
	require.NoError(t, a.Seed(context.Background(), cfg.Demo))

	return a.Server.Handler()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Tokens  *auth.TokenPair `json:"tokens"`
	Count   *int            `json:"count"`
	Error   *core.ErrorBody `json:"error"`
}

func call(
	t *testing.T,
	h http.Handler,
	method, path, token, body string,
) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(
		rec.Header().Get("Content-Type"), "application/json",
	) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec.Code, env
}

func register(t *testing.T, h http.Handler, email string) *auth.TokenPair {
	t.Helper()

	status, env := call(t, h, http.MethodPost, "/api/auth/register", "",
		`{"firstName":"Ada","lastName":"Lovelace","email":"`+email+
			`","password":"supersecret","field":"Engineering"}`)
	require.Equal(t, http.StatusCreated, status)
	require.NotNil(t, env.Tokens)
	return env.Tokens
}

func TestHealthReportsMemoryStorage(t *testing.T) {
	h := newTestApp(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status  string `json:"status"`
		Storage string `json:"storage"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "memory", body.Storage)
}

func TestRegisterLoginFlow(t *testing.T) {
	h := newTestApp(t, testConfig())

	tokens := register(t, h, "ada@example.com")
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	status, env := call(t, h, http.MethodPost, "/api/auth/register", "",
		`{"firstName":"Ada","lastName":"L","email":"ADA@Example.com","password":"supersecret"}`)
	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, core.CodeDuplicate, env.Error.Code)

	status, _ = call(t, h, http.MethodPost, "/api/auth/login", "",
		`{"email":"ada@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = call(t, h, http.MethodPost, "/api/auth/login", "",
		`{"email":"ada@example.com","password":"supersecret"}`)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Tokens)

	status, env = call(t, h, http.MethodGet, "/api/auth/me", env.Tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, status)

	var me auth.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "ada@example.com", me.Email)
	assert.Equal(t, "student", me.Role)
}

func TestMeWithoutTokenIsUnauthorized(t *testing.T) {
	h := newTestApp(t, testConfig())

	status, env := call(t, h, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, core.CodeUnauthorized, env.Error.Code)
}

func TestRefreshAndLogout(t *testing.T) {
	h := newTestApp(t, testConfig())
	tokens := register(t, h, "grace@example.com")

	refreshBody := `{"refreshToken":"` + tokens.RefreshToken + `"}`

	status, env := call(t, h, http.MethodPost, "/api/auth/refresh-token", "", refreshBody)
	require.Equal(t, http.StatusOK, status)

	var access auth.AccessTokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &access))
	assert.NotEmpty(t, access.AccessToken)

	status, _ = call(t, h, http.MethodPost, "/api/auth/logout", tokens.AccessToken, refreshBody)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, h, http.MethodPost, "/api/auth/logout", tokens.AccessToken, refreshBody)
	assert.Equal(t, http.StatusOK, status)

	status, env = call(t, h, http.MethodPost, "/api/auth/refresh-token", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, core.CodeTokenRevoked, env.Error.Code)
}

func TestSeededCatalogAndApplications(t *testing.T) {
	h := newTestApp(t, testConfig())

	status, env := call(t, h, http.MethodGet, "/api/scholarships", "", "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	require.Positive(t, *env.Count)

	var scholarships []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &scholarships))
	require.NotEmpty(t, scholarships)

	tokens := register(t, h, "student@example.com")
	body := `{"type":"scholarship","scholarshipId":"` + scholarships[0].ID + `"}`

	status, env = call(t, h, http.MethodPost, "/api/applications", tokens.AccessToken, body)
	require.Equal(t, http.StatusCreated, status)

	status, env = call(t, h, http.MethodPost, "/api/applications", tokens.AccessToken, body)
	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, core.CodeDuplicate, env.Error.Code)

	status, env = call(t, h, http.MethodGet, "/api/applications/my-applications", tokens.AccessToken, "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	status, _ = call(t, h, http.MethodGet, "/api/applications", tokens.AccessToken, "")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestStudentCannotWriteCatalog(t *testing.T) {
	h := newTestApp(t, testConfig())
	tokens := register(t, h, "nosy@example.com")

	status, _ := call(t, h, http.MethodPost, "/api/mentors", tokens.AccessToken,
		`{"name":"Someone","title":"Engineer"}`)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestUnknownAPIRouteIsJSONNotFound(t *testing.T) {
	h := newTestApp(t, testConfig())

	status, env := call(t, h, http.MethodGet, "/api/does-not-exist", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, core.CodeNotFound, env.Error.Code)
}

func TestRateLimitRejectsExcessRequests(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Requests = 2
	cfg.RateLimit.Burst = 2
	cfg.RateLimit.Window = time.Hour
	h := newTestApp(t, cfg)

	for range 2 {
		status, _ := call(t, h, http.MethodGet, "/api/fields", "", "")
		require.Equal(t, http.StatusOK, status)
	}

	status, env := call(t, h, http.MethodGet, "/api/fields", "", "")
	assert.Equal(t, http.StatusTooManyRequests, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, core.CodeRateLimited, env.Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
