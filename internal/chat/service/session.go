package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alothmany-studio/studio-backend/internal/chat/domain"
	"github.com/alothmany-studio/studio-backend/internal/gateway"
	storedomain "github.com/alothmany-studio/studio-backend/internal/store/domain"
)

const (
	greetingText     = "مرحباً بك! أنا مساعد محمد العثماني الذكي. سأقوم بتسجيل طلبك في قاعدة البيانات ليراجعه محمد شخصياً."
	confirmationText = "✅ تم حفظ متطلباتك في النظام. المشرف (محمد العثماني) تلقى إشعاراً بطلبك. يرجى الدفع للبدء."

	channelCustomerName = "عميل جديد عبر الروبوت"
	priceToBeDetermined = "سيحدد لاحقاً"
)

// Session is one visitor's conversation and its order-lifecycle state. All
// operations hold the session mutex, so store and gateway calls for a single
// session are strictly sequential.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu            sync.Mutex
	step          domain.Step
	messages      []domain.ChatMessage
	quotedPrice   string
	orderID       string
	generatedHTML string
}

func newSession(id string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		step:      domain.StepIdle,
		messages: []domain.ChatMessage{
			{Role: domain.RoleAssistant, Content: greetingText},
		},
	}
}

// State is a read-only snapshot of a session.
type State struct {
	ID         string               `json:"id"`
	Step       domain.Step          `json:"step"`
	Messages   []domain.ChatMessage `json:"messages"`
	OrderID    string               `json:"orderId,omitempty"`
	HasPreview bool                 `json:"hasPreview"`
}

func (s *Session) snapshotLocked() *State {
	msgs := make([]domain.ChatMessage, len(s.messages))
	copy(msgs, s.messages)
	return &State{
		ID:         s.ID,
		Step:       s.step,
		Messages:   msgs,
		OrderID:    s.orderID,
		HasPreview: s.generatedHTML != "",
	}
}

// State returns a consistent snapshot. The admin dashboard may observe an
// order mid-flight through the store; this is the session-side equivalent.
func (s *Session) State() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SendMessage appends the user turn, asks the gateway for a reply and
// applies the price-signal transition. Conversational failures surface only
// as the gateway's apology text; the step never changes because of them.
func (s *Session) SendMessage(ctx context.Context, gen Generator, text string) (*State, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty message")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]gateway.Turn, 0, len(s.messages))
	for _, m := range s.messages {
		history = append(history, gateway.Turn{Role: m.Role, Text: m.Content})
	}

	s.messages = append(s.messages, domain.ChatMessage{Role: domain.RoleUser, Content: text})

	res := gen.Converse(ctx, text, history)

	reply := domain.ChatMessage{Role: domain.RoleAssistant, Content: res.Text}
	for _, src := range res.Sources {
		reply.Sources = append(reply.Sources, domain.Source{URI: src.URI, Title: src.Title})
	}
	s.messages = append(s.messages, reply)

	// A quoted price, once captured, is never overwritten.
	if s.quotedPrice == "" && res.DetectedPrice != "" {
		s.quotedPrice = res.DetectedPrice
	}
	if res.HasPriceSignal && s.step == domain.StepIdle {
		s.step = domain.StepAgreement
	}

	return s.snapshotLocked(), nil
}

// ConfirmAgreement is the one moment the conversation's ephemeral state is
// made durable: the user turns are joined into a requirements string and
// saved as a pending order. A persistence failure aborts the transition and
// leaves the session back at AGREEMENT.
func (s *Session) ConfirmAgreement(ctx context.Context, orders OrderStore) (*storedomain.SiteOrder, *State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != domain.StepAgreement {
		return nil, nil, fmt.Errorf("confirm in step %s: %w", s.step, domain.ErrInvalidStep)
	}
	s.step = domain.StepNotifyingAdmin

	price := s.quotedPrice
	if price == "" {
		price = priceToBeDetermined
	}

	order, err := orders.SaveOrder(ctx, storedomain.NewOrder{
		CustomerName: channelCustomerName,
		Requirements: s.joinUserTurnsLocked(" | "),
		Price:        price,
	})
	if err != nil {
		s.step = domain.StepAgreement
		return nil, nil, fmt.Errorf("save order: %w", err)
	}

	s.orderID = order.ID
	s.step = domain.StepPayment
	s.messages = append(s.messages, domain.ChatMessage{Role: domain.RoleAssistant, Content: confirmationText})

	return order, s.snapshotLocked(), nil
}

// Pay runs the simulated payment gate and the generation call. Generation
// failure drops the session back to IDLE; the order stays pending with no
// content. A failed content write aborts the completion and returns to
// PAYMENT so the user can retry.
func (s *Session) Pay(ctx context.Context, gen Generator, orders OrderStore) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != domain.StepPayment {
		return nil, fmt.Errorf("pay in step %s: %w", s.step, domain.ErrInvalidStep)
	}
	s.step = domain.StepGenerating

	html, err := gen.GenerateSite(ctx, s.joinUserTurnsLocked(" "))
	if err != nil {
		s.step = domain.StepIdle
		return s.snapshotLocked(), fmt.Errorf("generate site: %w", err)
	}

	if err := orders.UpdateOrderContent(ctx, s.orderID, html); err != nil {
		s.step = domain.StepPayment
		return s.snapshotLocked(), fmt.Errorf("attach generated content: %w", err)
	}

	s.generatedHTML = html
	s.step = domain.StepComplete
	return s.snapshotLocked(), nil
}

// PreviewHTML returns the generated markup held for local preview.
func (s *Session) PreviewHTML() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generatedHTML, s.generatedHTML != ""
}

func (s *Session) joinUserTurnsLocked(sep string) string {
	parts := make([]string, 0, len(s.messages))
	for _, m := range s.messages {
		if m.Role == domain.RoleUser {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, sep)
}
