// AngelaMos | 2026
// handler_test.go

package scholarship

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/core"
	"github.com/carterperez-dev/mentorax-api/internal/middleware"
	"github.com/carterperez-dev/mentorax-api/internal/store"
)

type stubVerifier map[string]*middleware.AccessTokenClaims

func (v stubVerifier) VerifyAccessToken(
	_ context.Context,
	token string,
) (*middleware.AccessTokenClaims, error) {
	if c, ok := v[token]; ok {
		return c, nil
	}
	return nil, core.ErrTokenInvalid
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newRouter(t, NewService(store.MemoryOnly(NewMemoryRepository())))
}

func newRouter(t *testing.T, svc *Service) http.Handler {
	t.Helper()

	verifier := stubVerifier{
		"admin":   {UserID: store.NewID(), Role: middleware.RoleAdmin},
		"student": {UserID: store.NewID(), Role: "student"},
	}

	r := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(
		r,
		middleware.Authenticator(verifier),
		middleware.RequireAdmin,
	)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Error   *core.ErrorBody `json:"error"`
}

func do(
	t *testing.T,
	h http.Handler,
	method, path, token, body string,
) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestCreateRequiresAdmin(t *testing.T) {
	h := newTestRouter(t)
	body := `{"name":"Fulbright","organization":"State Dept"}`

	rec, env := do(t, h, http.MethodPost, "/scholarships", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)

	rec, env = do(t, h, http.MethodPost, "/scholarships", "student", body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, core.CodeForbidden, env.Error.Code)
}

func TestCreateGetDelete(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodPost, "/scholarships", "admin",
		`{"name":"Fulbright","organization":"State Dept","eligibility":["graduate"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created Scholarship
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.True(t, store.ValidID(created.ID))
	assert.Equal(t, StatusOpen, created.Status)
	assert.Equal(t, "USD", created.Currency)
	assert.Equal(t, []string{"graduate"}, []string(created.Eligibility))

	rec, env = do(t, h, http.MethodGet, "/scholarships/"+created.ID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got Scholarship
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created.Name, got.Name)

	rec, env = do(t, h, http.MethodDelete, "/scholarships/"+created.ID, "admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+created.ID+`"}`, string(env.Data))

	rec, env = do(t, h, http.MethodGet, "/scholarships/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, core.CodeNotFound, env.Error.Code)
}

func TestGetUnknownAndMalformedID(t *testing.T) {
	h := newTestRouter(t)

	rec, _ := do(t, h, http.MethodGet, "/scholarships/"+store.NewID(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/scholarships/not-an-id", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/scholarships/"+store.NewID(), "admin", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateValidation(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodPost, "/scholarships", "admin", `{"organization":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, core.CodeValidation, env.Error.Code)
	assert.Contains(t, env.Error.Message, "name is required")

	rec, env = do(t, h, http.MethodPost, "/scholarships", "admin", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, core.CodeBadRequest, env.Error.Code)
}

func TestListFiltersAndOrder(t *testing.T) {
	h := newTestRouter(t)

	for _, body := range []string{
		`{"name":"Alpha Grant","organization":"A","category":"STEM","country":"US"}`,
		`{"name":"Beta Award","organization":"B","category":"Arts","country":"US"}`,
		`{"name":"Gamma Engineering Fund","organization":"C","category":"STEM","country":"DE"}`,
	} {
		rec, _ := do(t, h, http.MethodPost, "/scholarships", "admin", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	_, env := do(t, h, http.MethodGet, "/scholarships", "", "")
	require.NotNil(t, env.Count)
	assert.Equal(t, 3, *env.Count)

	var all []Scholarship
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Equal(t, "Gamma Engineering Fund", all[0].Name)
	assert.Equal(t, "Alpha Grant", all[2].Name)

	_, env = do(t, h, http.MethodGet, "/scholarships?category=STEM&country=US", "", "")
	assert.Equal(t, 1, *env.Count)

	_, env = do(t, h, http.MethodGet, "/scholarships?search=ENGINEER", "", "")
	assert.Equal(t, 1, *env.Count)

	_, env = do(t, h, http.MethodGet, "/scholarships?category=stem", "", "")
	assert.Equal(t, 0, *env.Count)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestUpdatePartial(t *testing.T) {
	h := newTestRouter(t)

	_, env := do(t, h, http.MethodPost, "/scholarships", "admin",
		`{"name":"Old","organization":"Org","amount":500}`)
	var created Scholarship
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, env := do(t, h, http.MethodPut, "/scholarships/"+created.ID, "admin",
		`{"status":"closed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated Scholarship
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, StatusClosed, updated.Status)
	assert.Equal(t, "Old", updated.Name)
	assert.InDelta(t, 500, updated.Amount, 0.001)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	rec, _ = do(t, h, http.MethodPut, "/scholarships/"+created.ID, "admin",
		`{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBlankRequiredFieldsRejected(t *testing.T) {
	h := newTestRouter(t)

	rec, env := do(t, h, http.MethodPost, "/scholarships", "admin",
		`{"name":"  \t ","organization":"Org"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error.Message, "name is required")

	_, env = do(t, h, http.MethodPost, "/scholarships", "admin",
		`{"name":"Rhodes","organization":"Trust"}`)
	var created Scholarship
	require.NoError(t, json.Unmarshal(env.Data, &created))

	for _, body := range []string{`{"organization":"   "}`, `{"organization":""}`} {
		rec, env = do(t, h, http.MethodPut, "/scholarships/"+created.ID, "admin", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, core.CodeValidation, env.Error.Code)
	}

	rec, env = do(t, h, http.MethodGet, "/scholarships/"+created.ID, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got Scholarship
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Trust", got.Organization)
}

func TestListFallsBackWhenDatabaseDrops(t *testing.T) {
	ctx := context.Background()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := core.WrapDB(sqlx.NewDb(sqlDB, "pgx"), nil)
	mock.ExpectPing()
	db.Check(ctx)
	require.True(t, db.Persistent())

	mem := NewMemoryRepository()
	svc := NewService(store.NewDual[Repository](db, NewRepository(db.DB), mem, true))
	_, err = svc.CreateIn(ctx, mem, CreateScholarshipRequest{
		Name:         "Chevening",
		Organization: "FCDO",
	})
	require.NoError(t, err)

	refused := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	mock.ExpectQuery("FROM scholarships").WillReturnError(refused)

	h := newRouter(t, svc)

	for range 2 {
		rec, env := do(t, h, http.MethodGet, "/scholarships", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, env.Count)
		assert.Equal(t, 1, *env.Count)
		assert.Contains(t, string(env.Data), "Chevening")
	}

	assert.False(t, db.Persistent())
	assert.NoError(t, mock.ExpectationsWereMet(), "only the first call reaches postgres")
}
