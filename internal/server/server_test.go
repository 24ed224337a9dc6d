// AngelaMos | 2026
// server_test.go

package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/mentorax-api/internal/config"
)

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>home</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	srv := New(Config{ServerConfig: config.ServerConfig{StaticDir: dir}})
	srv.Router().Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := srv.Handler()

	cases := []struct {
		path string
		code int
		body string
	}{
		{"/api/ping", http.StatusNoContent, ""},
		{"/app.js", http.StatusOK, "console.log(1)"},
		{"/scholarships/123", http.StatusOK, "<h1>home</h1>"},
		{"/api/missing", http.StatusNotFound, `"NOT_FOUND"`},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.code, rec.Code, tc.path)
		assert.Contains(t, rec.Body.String(), tc.body, tc.path)
	}
}

func TestNoStaticDir(t *testing.T) {
	srv := New(Config{ServerConfig: config.ServerConfig{StaticDir: filepath.Join(t.TempDir(), "nope")}})
	h := srv.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
