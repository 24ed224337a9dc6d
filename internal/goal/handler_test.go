// AngelaMos | 2026
// handler_test.go

package goal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/middleware"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

const userHeader = "X-Test-User"

// headerAuth authenticates the user named in X-Test-User and rejects
// requests without one.
func headerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(userHeader)
		if id == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ctx := middleware.WithClaims(r.Context(), &middleware.AccessTokenClaims{
			UserID: id,
			Role:   "student",
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	svc := NewService(store.MemoryOnly(NewMemoryRepository()))
	NewHandler(svc).RegisterRoutes(r, headerAuth)
	return r
}

func call(h http.Handler, user, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if user != "" {
		req.Header.Set(userHeader, user)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeGoal(t *testing.T, rec *httptest.ResponseRecorder) Goal {
	t.Helper()

	var resp struct {
		Data Goal `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func TestGoalsAreScopedToOwner(t *testing.T) {
	h := newRouter()
	alice, bob := store.NewID(), store.NewID()

	rec := call(h, alice, http.MethodPost, "/goals", `{"title":"Apply to 5 programs"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	g := decodeGoal(t, rec)
	assert.Equal(t, alice, g.UserID)
	assert.Equal(t, StatusPending, g.Status)

	rec = call(h, bob, http.MethodGet, "/goals/"+g.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(h, bob, http.MethodPut, "/goals/"+g.ID, `{"title":"hijacked"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(h, bob, http.MethodDelete, "/goals/"+g.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(h, bob, http.MethodGet, "/goals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)

	rec = call(h, alice, http.MethodGet, "/goals/"+g.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Apply to 5 programs", decodeGoal(t, rec).Title)

	rec = call(h, alice, http.MethodDelete, "/goals/"+g.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGoalsRequireAuth(t *testing.T) {
	h := newRouter()

	rec := call(h, "", http.MethodGet, "/goals", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProgressDrivesStatus(t *testing.T) {
	h := newRouter()
	user := store.NewID()

	rec := call(h, user, http.MethodPost, "/goals", `{"title":"Learn Go"}`)
	g := decodeGoal(t, rec)

	rec = call(h, user, http.MethodPut, "/goals/"+g.ID, `{"progress":40}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusInProgress, decodeGoal(t, rec).Status)

	rec = call(h, user, http.MethodPut, "/goals/"+g.ID, `{"progress":100}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusCompleted, decodeGoal(t, rec).Status)

	rec = call(h, user, http.MethodPut, "/goals/"+g.ID, `{"progress":101}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
