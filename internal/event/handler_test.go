// AngelaMos | 2026
// handler_test.go

package event

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/middleware"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

// asAdmin stands in for the authenticator and marks every request as an
// admin's.
func asAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := middleware.WithClaims(r.Context(), &middleware.AccessTokenClaims{
			UserID: store.NewID(),
			Role:   middleware.RoleAdmin,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func setup(t *testing.T) (http.Handler, *Service) {
	t.Helper()

	svc := NewService(store.MemoryOnly(NewMemoryRepository()))
	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(r, asAdmin, middleware.RequireAdmin)
	return r, svc
}

func send(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateRequiresStart(t *testing.T) {
	h, _ := setup(t)

	rec := send(h, http.MethodPost, "/events", `{"title":"Intro to ML"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp core.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "startsAt is required", resp.Error.Message)
}

func TestCreateRejectsInvertedWindow(t *testing.T) {
	h, _ := setup(t)

	rec := send(h, http.MethodPost, "/events", `{
		"title": "Hackathon",
		"startsAt": "2026-05-02T09:00:00Z",
		"endsAt": "2026-05-01T09:00:00Z"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFilterByType(t *testing.T) {
	h, svc := setup(t)
	ctx := context.Background()

	for _, typ := range []string{TypeWebinar, TypeWorkshop, TypeWorkshop} {
		rec := send(h, http.MethodPost, "/events",
			`{"title":"Session","type":"`+typ+`","startsAt":"2026-06-01T15:00:00Z"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := send(h, http.MethodGet, "/events?type=workshop", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data  []Event `json:"data"`
		Count int     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	for _, e := range resp.Data {
		assert.Equal(t, TypeWorkshop, e.Type)
		assert.Equal(t, StatusUpcoming, e.Status)
	}

	all, err := svc.List(ctx, store.ListParams{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
