package main

import (
	"context"
	"log"
	"time"

	"github.com/alothmany-studio/studio-backend/config"
	"github.com/alothmany-studio/studio-backend/internal/bootstrap"
	chatservice "github.com/alothmany-studio/studio-backend/internal/chat/service"
	"github.com/alothmany-studio/studio-backend/internal/gateway"
	"github.com/alothmany-studio/studio-backend/internal/store/notify"
)

const serviceName = "studio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	events := notify.NewBroadcaster()

	st, cleanup, err := bootstrap.OpenStore(ctx, cfg, events)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer cleanup()

	gw := gateway.New(gateway.Options{
		BaseURL:   cfg.Gemini.BaseURL,
		APIKey:    cfg.Gemini.APIKey,
		ChatModel: cfg.Gemini.ChatModel,
		CodeModel: cfg.Gemini.CodeModel,
		Timeout:   time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second,
	})

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:     serviceName,
		Version:         cfg.App.Version,
		Store:           st,
		Events:          events,
		Chat:            chatservice.NewManager(st, gw),
		AdminPassword:   cfg.Admin.Password,
		AdminSessionTTL: time.Duration(cfg.Admin.SessionTTLMinutes) * time.Minute,
	})

	log.Printf("listening on :%s driver=%s env=%s", cfg.Server.Port, cfg.Store.Driver, cfg.App.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
