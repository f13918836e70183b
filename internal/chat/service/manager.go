package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/alothmany-studio/studio-backend/internal/chat/domain"
	"github.com/alothmany-studio/studio-backend/internal/gateway"
	storedomain "github.com/alothmany-studio/studio-backend/internal/store/domain"
)

// Generator is the slice of the generation gateway the lifecycle needs.
type Generator interface {
	Converse(ctx context.Context, userText string, history []gateway.Turn) *gateway.ConverseResult
	GenerateSite(ctx context.Context, requirements string) (string, error)
}

// OrderStore is the slice of the store the lifecycle writes to.
type OrderStore interface {
	SaveOrder(ctx context.Context, data storedomain.NewOrder) (*storedomain.SiteOrder, error)
	UpdateOrderContent(ctx context.Context, id, htmlContent string) error
}

// Manager owns the in-memory chat sessions. Sessions are transient by
// design: a lost session only loses the conversation, never a saved order.
type Manager struct {
	gen    Generator
	orders OrderStore

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(orders OrderStore, gen Generator) *Manager {
	return &Manager{
		gen:      gen,
		orders:   orders,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session seeded with the assistant greeting.
func (m *Manager) Create() *State {
	s := newSession(uuid.NewString())

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s.State()
}

func (m *Manager) get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) State(id string) (*State, error) {
	s, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return s.State(), nil
}

func (m *Manager) SendMessage(ctx context.Context, id, text string) (*State, error) {
	s, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return s.SendMessage(ctx, m.gen, text)
}

func (m *Manager) ConfirmAgreement(ctx context.Context, id string) (*storedomain.SiteOrder, *State, error) {
	s, err := m.get(id)
	if err != nil {
		return nil, nil, err
	}
	return s.ConfirmAgreement(ctx, m.orders)
}

func (m *Manager) Pay(ctx context.Context, id string) (*State, error) {
	s, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return s.Pay(ctx, m.gen, m.orders)
}

func (m *Manager) PreviewHTML(id string) (string, bool, error) {
	s, err := m.get(id)
	if err != nil {
		return "", false, err
	}
	html, ok := s.PreviewHTML()
	return html, ok, nil
}
