package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

func setupRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewDocumentStore(newMemKV(), notify.NewBroadcaster())

	r := gin.New()
	Register(r.Group("/api/v1/admin"), Deps{
		Store:    st,
		Events:   notify.NewBroadcaster(),
		Password: "admin123",
		Sessions: NewSessionRegistry(time.Hour),
	})
	return r, st
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/admin/login", "", gin.H{"password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin(t *testing.T) {
	r, _ := setupRouter(t)

	t.Run("wrong password rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/admin/login", "", gin.H{"password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("correct password mints a token", func(t *testing.T) {
		loginToken(t, r)
	})
}

func TestAuthMiddleware(t *testing.T) {
	r, _ := setupRouter(t)

	t.Run("missing token", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/admin/orders", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		token := loginToken(t, r)
		w := doJSON(r, http.MethodPost, "/api/v1/admin/logout", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodGet, "/api/v1/admin/orders", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProjectManagement(t *testing.T) {
	r, st := setupRouter(t)
	token := loginToken(t, r)

	t.Run("missing title or image rejected before the store is touched", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/admin/projects", token, gin.H{"title": "", "image": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(r, http.MethodPost, "/api/v1/admin/projects", token, gin.H{"title": "متجر", "image": "  "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("add then delete", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/v1/admin/projects", token, gin.H{
			"title":    "متجر تجريبي",
			"category": domain.CategoryStore,
			"image":    "https://example.com/cover.jpg",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Project domain.Project `json:"project"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Project.ID)

		w = doJSON(r, http.MethodDelete, "/api/v1/admin/projects/"+resp.Project.ID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		projects, err := st.GetProjects(context.Background())
		require.NoError(t, err)
		for _, p := range projects {
			assert.NotEqual(t, resp.Project.ID, p.ID)
		}
	})
}

func TestOrderApproval(t *testing.T) {
	r, st := setupRouter(t)
	token := loginToken(t, r)
	ctx := context.Background()

	o, err := st.SaveOrder(ctx, domain.NewOrder{CustomerName: "عميل", Requirements: "موقع"})
	require.NoError(t, err)
	require.NoError(t, st.UpdateOrderContent(ctx, o.ID, "<html></html>"))

	t.Run("approve sets complete", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/v1/admin/orders/"+o.ID+"/status", token, gin.H{"status": domain.StatusComplete})
		require.Equal(t, http.StatusOK, w.Code)

		orders, err := st.GetOrders(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusComplete, orders[0].Status)
	})

	t.Run("approving again is idempotent", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/v1/admin/orders/"+o.ID+"/status", token, gin.H{"status": domain.StatusComplete})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("regression is a conflict", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/v1/admin/orders/"+o.ID+"/status", token, gin.H{"status": domain.StatusPending})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown status is a bad request", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/v1/admin/orders/"+o.ID+"/status", token, gin.H{"status": "ملغي"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete order", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/v1/admin/orders/"+o.ID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		orders, err := st.GetOrders(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestSettingsUpdate(t *testing.T) {
	r, _ := setupRouter(t)
	token := loginToken(t, r)

	w := doJSON(r, http.MethodPut, "/api/v1/admin/settings", token, gin.H{
		"siteName": "استوديو العثماني",
		"email":    "studio@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/admin/settings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Settings domain.Settings `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "استوديو العثماني", resp.Settings.SiteName)
}
