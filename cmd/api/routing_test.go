package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mangaapi/db/migrations"
	"mangaapi/internal/catalog"
	"mangaapi/internal/extract"
	"mangaapi/internal/platform/crypto"
	"mangaapi/internal/platform/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticCompleter string

func (s staticCompleter) Complete(context.Context, string) (string, error) {
	return string(s), nil
}

const testSecret = "test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(db.DB, migrations.SQLite))

	log := zap.NewNop()
	repo := catalog.NewSQLiteRepo(db, 5*time.Second)
	fetcher := extract.NewFetcher(extract.FetcherOptions{Timeout: time.Second}, log)
	extractSvc := extract.NewService(fetcher, staticCompleter(`{"summary":"S"}`), log)

	return newRouter(routerDeps{
		catalog:   catalog.NewHTTPHandler(catalog.NewService(repo, log)),
		extract:   extract.NewHTTPHandler(extractSvc),
		ready:     db.PingContext,
		jwtSecret: testSecret,
		limiter:   newRateLimiter(),
		log:       log,
	})
}

func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := crypto.GenerateToken(testSecret, userID, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics", "/v1/manga"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/manga/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/manga", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_SaveThenRead(t *testing.T) {
	router := newTestRouter(t)
	auth := bearer(t, "user-1", "EDITOR")

	body := `{"item":{"id":"m1","title":"Sample Title"},"authors":["A"],"venues":["Weekly X","","weekly x","Weekly X"]}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPut, "/v1/admin/manga", strings.NewReader(body))
		req.Header.Set("Authorization", auth)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/manga/m1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, strings.Count(w.Body.String(), `"name":"Weekly X"`))
	assert.Equal(t, 1, strings.Count(w.Body.String(), `"name":"weekly x"`))

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/manga", nil)
	req.Header.Set("Authorization", bearer(t, "user-2", "EDITOR"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"id":"m1"`)
}

func TestRouter_Extract(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/extract", strings.NewReader(`{"title":"Sample Title"}`))
	req.Header.Set("Authorization", bearer(t, "user-1", "ADMIN"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"summary":"S"`)
}
