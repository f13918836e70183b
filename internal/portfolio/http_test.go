package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alothmany-studio/studio-backend/internal/store"
	"github.com/alothmany-studio/studio-backend/internal/store/domain"
	"github.com/alothmany-studio/studio-backend/internal/store/notify"
)

type memKV struct{ data map[string][]byte }

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	d, ok := m.data[key]
	return d, ok, nil
}
func (m *memKV) Set(_ context.Context, key string, d []byte) error { m.data[key] = d; return nil }
func (m *memKV) Ping(context.Context) error                        { return nil }

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewDocumentStore(newMemKV(), notify.NewBroadcaster())

	r := gin.New()
	Register(r.Group("/api/v1"), st)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListProjects_SeedSet(t *testing.T) {
	r := setup(t)

	w := get(r, "/api/v1/projects")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Projects, 10)
}

func TestListProjects_CategoryFilter(t *testing.T) {
	r := setup(t)

	w := get(r, "/api/v1/projects?category="+domain.CategoryPersonal)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Projects)
	for _, p := range resp.Projects {
		assert.Equal(t, domain.CategoryPersonal, p.Category)
	}
}

func TestGetSettings_Defaults(t *testing.T) {
	r := setup(t)

	w := get(r, "/api/v1/settings")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Settings domain.Settings `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "محمد العثماني", resp.Settings.SiteName)
}
