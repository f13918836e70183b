package admin

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionRegistry holds issued admin tokens in memory. Logout and expiry
// simply drop the token; there is no refresh or audit trail. The password
// gate is an operator convenience, not a security boundary.
type SessionRegistry struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration
}

func NewSessionRegistry(ttl time.Duration) *SessionRegistry {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionRegistry{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
	}
}

func (r *SessionRegistry) Issue() string {
	token := uuid.NewString()

	r.mu.Lock()
	r.tokens[token] = time.Now().Add(r.ttl)
	r.mu.Unlock()

	return token
}

func (r *SessionRegistry) Validate(token string) bool {
	if token == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(r.tokens, token)
		return false
	}
	return true
}

func (r *SessionRegistry) Revoke(token string) {
	r.mu.Lock()
	delete(r.tokens, token)
	r.mu.Unlock()
}
