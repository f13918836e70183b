package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alothmany-studio/studio-backend/internal/chat/domain"
	"github.com/alothmany-studio/studio-backend/internal/chat/service"
)

type Handler struct {
	mgr *service.Manager
}

func Register(rg *gin.RouterGroup, mgr *service.Manager) {
	h := &Handler{mgr: mgr}

	rg.POST("/sessions", h.createSession)
	rg.GET("/sessions/:id", h.getSession)
	rg.POST("/sessions/:id/messages", h.postMessage)
	rg.POST("/sessions/:id/confirm", h.confirmAgreement)
	rg.POST("/sessions/:id/pay", h.pay)
	rg.GET("/sessions/:id/preview", h.preview)
}

func (h *Handler) createSession(c *gin.Context) {
	state := h.mgr.Create()
	c.JSON(http.StatusCreated, gin.H{"ok": true, "session": state})
}

func (h *Handler) getSession(c *gin.Context) {
	state, err := h.mgr.State(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": state})
}

type messageReq struct {
	Message string `json:"message"`
}

func (h *Handler) postMessage(c *gin.Context) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	state, err := h.mgr.SendMessage(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": state})
}

func (h *Handler) confirmAgreement(c *gin.Context) {
	order, state, err := h.mgr.ConfirmAgreement(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "order": order, "session": state})
}

func (h *Handler) pay(c *gin.Context) {
	state, err := h.mgr.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		if state != nil {
			// The transition was aborted: report it along with the reverted
			// step so the client can offer a retry.
			c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error(), "session": state})
			return
		}
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "session": state})
}

// preview serves the generated markup as a standalone sandboxed document.
// The CSP header keeps generated script from reaching anything beyond its
// own frame; the markup is never merged into a host page.
func (h *Handler) preview(c *gin.Context) {
	html, ok, err := h.mgr.PreviewHTML(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "session not found"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no preview available"})
		return
	}

	c.Header("Content-Security-Policy", "sandbox allow-scripts")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "session not found"})
	case errors.Is(err, domain.ErrInvalidStep):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
