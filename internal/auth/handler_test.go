// AngelaMos | 2026
// handler_test.go

package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/auth"
	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/middleware"
)

func (f fixture) router() http.Handler {
	r := chi.NewRouter()
	auth.NewHandler(f.auth).RegisterRoutes(r, middleware.Authenticator(f.jwt))
	return r
}

func send(
	t *testing.T,
	h http.Handler,
	path, token string,
	body io.Reader,
	chunked bool,
) (*httptest.ResponseRecorder, core.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if chunked {
		req.ContentLength = -1
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp core.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec, resp
}

func TestLogoutWithoutBodyIsIdempotent(t *testing.T) {
	f := newFixture(t)
	h := f.router()
	session := f.register(t, "ada@example.com", "correct-horse-battery")
	access := session.Tokens.AccessToken

	rec, _ := send(t, h, "/auth/logout", access, http.NoBody, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = send(t, h, "/auth/logout", access, strings.NewReader(""), true)
	assert.Equal(t, http.StatusOK, rec.Code, "an empty chunked body is an absent token")

	sessions, err := f.auth.GetActiveSessions(context.Background(), session.User.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 1, "logging out without a token revokes nothing")

	rec, resp := send(t, h, "/auth/logout", access, strings.NewReader(`{"refreshToken":`), false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, core.CodeBadRequest, resp.Error.Code)
}

func TestLogoutRevokesGivenToken(t *testing.T) {
	f := newFixture(t)
	h := f.router()
	session := f.register(t, "lin@example.com", "correct-horse-battery")
	body := `{"refreshToken":"` + session.Tokens.RefreshToken + `"}`

	for range 2 {
		rec, _ := send(t, h, "/auth/logout", session.Tokens.AccessToken,
			strings.NewReader(body), false)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec, resp := send(t, h, "/auth/refresh-token", "", strings.NewReader(body), false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, core.CodeTokenRevoked, resp.Error.Code)
}

func TestRegisterRejectsBlankNames(t *testing.T) {
	h := newFixture(t).router()

	rec, resp := send(t, h, "/auth/register", "", strings.NewReader(
		`{"firstName":"   ","lastName":"Hopper","email":"g@example.com","password":"correct-horse"}`,
	), false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, core.CodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "firstName is required")
}
