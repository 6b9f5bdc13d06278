package notify

import "sync"

// Kind names the mapping a change touched.
type Kind string

const (
	KindTask     Kind = "task"
	KindSchedule Kind = "schedule"
	KindTimer    Kind = "timer"
)

// Change describes one successful mutation.
type Change struct {
	Kind Kind   `json:"kind"`
	Op   string `json:"op"` // e.g. "add", "toggle", "delete", "start"
	ID   string `json:"id"`
}

// Bus fans changes out to in-process subscribers.
type Bus struct {
	mu   sync.RWMutex
	subs map[chan Change]struct{}
}

// NewBus creates a Bus with no subscribers.
func NewBus() *Bus {
	return &Bus{subs: make(map[chan Change]struct{})}
}

// Publish delivers c to every subscriber without blocking.
func (b *Bus) Publish(c Change) {
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- c:
		default:
			// subscriber is behind; drop to avoid blocking the caller
		}
	}
	b.mu.RUnlock()
}

// Subscribe returns a buffered channel that receives all new changes.
func (b *Bus) Subscribe() chan Change {
	ch := make(chan Change, 64)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Bus) Unsubscribe(ch chan Change) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}
