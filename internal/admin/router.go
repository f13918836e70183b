package admin

import (
	"github.com/alothmany-studio/studio-backend/internal/store"
	"github.com/alothmany-studio/studio-backend/internal/store/notify"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Store    store.Store
	Events   *notify.Broadcaster
	Password string
	Sessions *SessionRegistry
}

// Register wires the admin dashboard routes. Login is the only public
// endpoint; everything else sits behind the token middleware.
func Register(rg *gin.RouterGroup, dep Deps) {
	h := &Handler{
		store:    dep.Store,
		events:   dep.Events,
		password: dep.Password,
		sessions: dep.Sessions,
	}

	rg.POST("/login", h.login)

	authed := rg.Group("")
	authed.Use(AuthMiddleware(dep.Sessions))

	authed.POST("/logout", h.logout)

	authed.GET("/orders", h.listOrders)
	authed.PATCH("/orders/:id/status", h.updateOrderStatus)
	authed.DELETE("/orders/:id", h.deleteOrder)

	authed.GET("/projects", h.listProjects)
	authed.POST("/projects", h.addProject)
	authed.DELETE("/projects/:id", h.deleteProject)

	authed.GET("/settings", h.getSettings)
	authed.PUT("/settings", h.updateSettings)

	authed.GET("/events", h.streamEvents)
}
