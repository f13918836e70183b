package notify

import "sync"

// Event names a collection that changed. Listeners must re-fetch the full
// collection; the event carries no diff.
type Event string

const (
	EventProjectsUpdated Event = "projectsUpdated"
	EventOrdersUpdated   Event = "ordersUpdated"
)

// Broadcaster fans store change events out to in-process subscribers
// (admin SSE stream, portfolio viewers).
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan Event)}
}

// Subscribe returns a channel of events and a cancel function. The channel
// is buffered; a subscriber that stops draining loses events rather than
// blocking the publisher.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++

	ch := make(chan Event, 8)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Publish delivers the event to every current subscriber without blocking.
func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
