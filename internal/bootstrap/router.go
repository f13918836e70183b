package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alothmany-studio/studio-backend/internal/admin"
	httpapi "github.com/alothmany-studio/studio-backend/internal/api/http"
	"github.com/alothmany-studio/studio-backend/internal/api/http/middleware"
	chathttp "github.com/alothmany-studio/studio-backend/internal/chat/http"
	chatservice "github.com/alothmany-studio/studio-backend/internal/chat/service"
	"github.com/alothmany-studio/studio-backend/internal/portfolio"
	"github.com/alothmany-studio/studio-backend/internal/store"
	"github.com/alothmany-studio/studio-backend/internal/store/notify"
)

type RouterDeps struct {
	ServiceName     string
	Version         string
	Store           store.Store
	Events          *notify.Broadcaster
	Chat            *chatservice.Manager
	AdminPassword   string
	AdminSessionTTL time.Duration
	ChatRPS         float64
	ChatBurst       int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	portfolio.Register(api, dep.Store)

	if dep.ChatRPS == 0 {
		dep.ChatRPS = 2
	}
	if dep.ChatBurst == 0 {
		dep.ChatBurst = 5
	}
	chatGroup := api.Group("/chat")
	chatGroup.Use(middleware.RateLimit(dep.ChatRPS, dep.ChatBurst))
	chathttp.Register(chatGroup, dep.Chat)

	adminGroup := api.Group("/admin")
	admin.Register(adminGroup, admin.Deps{
		Store:    dep.Store,
		Events:   dep.Events,
		Password: dep.AdminPassword,
		Sessions: admin.NewSessionRegistry(dep.AdminSessionTTL),
	})

	return r
}
