package store

import (
	"context"

	"github.com/alothmany-studio/studio-backend/internal/store/domain"
)

// Store is the persistence contract shared by the chat lifecycle, the public
// portfolio and the admin dashboard. All operations are context-aware so the
// backing medium can be swapped for a networked one without touching callers.
type Store interface {
	GetProjects(ctx context.Context) ([]domain.Project, error)
	AddProject(ctx context.Context, data domain.NewProject) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	GetOrders(ctx context.Context) ([]domain.SiteOrder, error)
	SaveOrder(ctx context.Context, data domain.NewOrder) (*domain.SiteOrder, error)
	UpdateOrderContent(ctx context.Context, id, htmlContent string) error
	UpdateOrderStatus(ctx context.Context, id, status string) error
	DeleteOrder(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, s domain.Settings) error

	Ping(ctx context.Context) error
}

// KV is the minimal keyed-document access a driver must provide. A missing
// key is a valid initial state, reported through the found flag rather than
// an error.
type KV interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, data []byte) error
	Ping(ctx context.Context) error
}
