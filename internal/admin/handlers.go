package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alothmany-studio/studio-backend/internal/store"
	"github.com/alothmany-studio/studio-backend/internal/store/domain"
	"github.com/alothmany-studio/studio-backend/internal/store/notify"
)

type Handler struct {
	store    store.Store
	events   *notify.Broadcaster
	password string
	sessions *SessionRegistry
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if req.Password != h.password {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "كلمة المرور غير صحيحة"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": h.sessions.Issue()})
}

func (h *Handler) logout(c *gin.Context) {
	h.sessions.Revoke(c.GetHeader(tokenHeader))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.store.GetOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "orders": orders})
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	err := h.store.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	switch {
	case errors.Is(err, domain.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrStatusRegression):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func (h *Handler) deleteOrder(c *gin.Context) {
	if err := h.store.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.store.GetProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) addProject(c *gin.Context) {
	var req domain.NewProject
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// The store itself performs no validation; the required-field guard
	// lives here with the caller.
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Image) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "title and image are required"})
		return
	}

	p, err := h.store.AddProject(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.store.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) getSettings(c *gin.Context) {
	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "settings": settings})
}

func (h *Handler) updateSettings(c *gin.Context) {
	var req domain.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := h.store.UpdateSettings(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "settings": req})
}
