package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alothmany-studio/studio-backend/internal/store/domain"
	"github.com/alothmany-studio/studio-backend/internal/store/notify"
)

// Persisted document keys. The key names are the stable external layout and
// must not change once deployed.
const (
	keyProjects = "alothmany_db_projects"
	keyOrders   = "alothmany_db_orders"
	keySettings = "alothmany_db_settings"
)

// DocumentStore implements Store on top of a KV driver. Each collection is a
// single JSON document and every mutation is a read-modify-write of the whole
// document. There is no locking across writers; last write wins, which is the
// accepted trade-off for a single-operator site.
type DocumentStore struct {
	kv     KV
	events *notify.Broadcaster
}

func NewDocumentStore(kv KV, events *notify.Broadcaster) *DocumentStore {
	return &DocumentStore{kv: kv, events: events}
}

var _ Store = (*DocumentStore)(nil)

func (s *DocumentStore) GetProjects(ctx context.Context) ([]domain.Project, error) {
	data, found, err := s.kv.Get(ctx, keyProjects)
	if err != nil {
		return nil, fmt.Errorf("get projects: %w", err)
	}
	if !found {
		return domain.SeedProjects(), nil
	}

	var projects []domain.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

func (s *DocumentStore) AddProject(ctx context.Context, data domain.NewProject) (*domain.Project, error) {
	projects, err := s.GetProjects(ctx)
	if err != nil {
		return nil, err
	}

	p := domain.Project{
		ID:           uuid.NewString(),
		Title:        data.Title,
		Category:     data.Category,
		Image:        data.Image,
		Description:  data.Description,
		ColorPalette: data.ColorPalette,
		Tags:         dedupeTags(data.Tags),
	}

	updated := append([]domain.Project{p}, projects...)
	if err := s.writeProjects(ctx, updated); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DocumentStore) DeleteProject(ctx context.Context, id string) error {
	projects, err := s.GetProjects(ctx)
	if err != nil {
		return err
	}

	updated := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			updated = append(updated, p)
		}
	}
	return s.writeProjects(ctx, updated)
}

func (s *DocumentStore) GetOrders(ctx context.Context) ([]domain.SiteOrder, error) {
	data, found, err := s.kv.Get(ctx, keyOrders)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	if !found {
		return []domain.SiteOrder{}, nil
	}

	var orders []domain.SiteOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (s *DocumentStore) SaveOrder(ctx context.Context, data domain.NewOrder) (*domain.SiteOrder, error) {
	orders, err := s.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	o := domain.SiteOrder{
		ID:           "ORD-" + uuid.NewString(),
		CustomerName: data.CustomerName,
		Requirements: data.Requirements,
		Status:       domain.StatusPending,
		Date:         time.Now().Format("02/01/2006, 15:04:05"),
		Price:        data.Price,
	}

	updated := append([]domain.SiteOrder{o}, orders...)
	if err := s.writeOrders(ctx, updated); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *DocumentStore) UpdateOrderContent(ctx context.Context, id, htmlContent string) error {
	orders, err := s.GetOrders(ctx)
	if err != nil {
		return err
	}

	// Absent id is a silent no-op, but the collection is still rewritten and
	// the event still fires, matching the whole-document discipline.
	for i := range orders {
		if orders[i].ID == id {
			orders[i].HTMLContent = htmlContent
			orders[i].Status = domain.StatusGenerated
			break
		}
	}
	return s.writeOrders(ctx, orders)
}

func (s *DocumentStore) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if domain.StatusRank(status) < 0 {
		return fmt.Errorf("%w: %q", domain.ErrUnknownStatus, status)
	}

	orders, err := s.GetOrders(ctx)
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		// The lifecycle is one-directional. Setting the same status again is
		// an idempotent success; moving backwards is rejected.
		if domain.StatusRank(status) < domain.StatusRank(orders[i].Status) {
			return fmt.Errorf("%s -> %s: %w", orders[i].Status, status, domain.ErrStatusRegression)
		}
		orders[i].Status = status
		break
	}
	return s.writeOrders(ctx, orders)
}

func (s *DocumentStore) DeleteOrder(ctx context.Context, id string) error {
	orders, err := s.GetOrders(ctx)
	if err != nil {
		return err
	}

	updated := make([]domain.SiteOrder, 0, len(orders))
	for _, o := range orders {
		if o.ID != id {
			updated = append(updated, o)
		}
	}
	return s.writeOrders(ctx, updated)
}

func (s *DocumentStore) GetSettings(ctx context.Context) (*domain.Settings, error) {
	data, found, err := s.kv.Get(ctx, keySettings)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if !found {
		def := domain.DefaultSettings()
		return &def, nil
	}

	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &settings, nil
}

func (s *DocumentStore) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.kv.Set(ctx, keySettings, data); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

func (s *DocumentStore) writeProjects(ctx context.Context, projects []domain.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("encode projects: %w", err)
	}
	if err := s.kv.Set(ctx, keyProjects, data); err != nil {
		return fmt.Errorf("persist projects: %w", err)
	}
	s.events.Publish(notify.EventProjectsUpdated)
	return nil
}

func (s *DocumentStore) writeOrders(ctx context.Context, orders []domain.SiteOrder) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := s.kv.Set(ctx, keyOrders, data); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}
	s.events.Publish(notify.EventOrdersUpdated)
	return nil
}

func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
