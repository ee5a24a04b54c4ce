package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/triage-api/internal/config"
)

func TestStaticServing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Complaint Triage</h1>"), 0644))

	analyzer := &mockAnalyzer{}
	srv := New(analyzer, config.ServerConfig{StaticDir: dir})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Complaint Triage")
}

func TestStaticServing_MissingDir(t *testing.T) {
	analyzer := &mockAnalyzer{}
	analyzer.On("Configured").Return(true).Once()

	srv := New(analyzer, config.ServerConfig{StaticDir: filepath.Join(t.TempDir(), "absent")})
	router := srv.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// API routes still work without the static mount.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
