package portfolio

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alothmany-studio/studio-backend/internal/store"
	"github.com/alothmany-studio/studio-backend/internal/store/domain"
)

// Handler serves the public, read-only views of the store: the portfolio
// gallery and the site settings shown in the contact section.
type Handler struct {
	store store.Store
}

func Register(rg *gin.RouterGroup, st store.Store) {
	h := &Handler{store: st}

	rg.GET("/projects", h.listProjects)
	rg.GET("/settings", h.getSettings)
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.store.GetProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := make([]domain.Project, 0, len(projects))
		for _, p := range projects {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) getSettings(c *gin.Context) {
	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "settings": settings})
}
