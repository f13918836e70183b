package bootstrap

import (
	"context"
	"fmt"

	"github.com/alothmany-studio/studio-backend/config"
	"github.com/alothmany-studio/studio-backend/internal/store"
	"github.com/alothmany-studio/studio-backend/internal/store/notify"
	pgkv "github.com/alothmany-studio/studio-backend/internal/store/postgres"
	rdkv "github.com/alothmany-studio/studio-backend/internal/store/redis"
)

// OpenStore builds the document store on the configured driver and returns
// a cleanup function for the underlying connection.
func OpenStore(ctx context.Context, cfg *config.Config, events *notify.Broadcaster) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case "redis":
		client, err := OpenRedis(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() { _ = client.Close() }
		return store.NewDocumentStore(rdkv.NewKV(client), events), cleanup, nil

	case "postgres":
		pool, err := OpenDB(ctx, DBOptions{DSN: cfg.DB.DSN})
		if err != nil {
			return nil, nil, err
		}
		kv := pgkv.NewKV(pool)
		if err := kv.InitSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store.NewDocumentStore(kv, events), pool.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
