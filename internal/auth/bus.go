package auth

import (
	"context"
	"sync"

	"github.com/nightowlapp/nightowl/internal/logging"
	"github.com/nightowlapp/nightowl/internal/models"
)

// Event names a session transition delivered to Bus subscribers.
type Event string

const (
	EventSignedIn  Event = "SIGNED_IN"
	EventSignedUp  Event = "SIGNED_UP"
	EventSignedOut Event = "SIGNED_OUT"
)

// Callback receives a session transition. session is nil for EventSignedOut.
type Callback func(event Event, session *models.Session)

type subscription struct {
	id uint64
	fn Callback
}

// Bus fans session transitions out to subscribers, synchronously and in
// registration order. Each Subscribe call is a distinct registration even if
// the same function value is registered twice; the returned handle removes
// exactly that registration.
//
// A subscriber that panics is isolated: the panic is recovered and logged,
// and delivery continues to later subscribers.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription
	logger logging.Logger
}

func NewBus(logger logging.Logger) *Bus {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Bus{logger: logger}
}

// Subscribe registers fn and returns its unsubscribe handle. Unsubscribing
// twice is harmless.
func (b *Bus) Subscribe(fn Callback) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers the event to every subscriber registered at the time of the
// call. Subscribing or unsubscribing from within a callback affects later
// emissions only.
func (b *Bus) Emit(event Event, session *models.Session) {
	b.mu.Lock()
	snapshot := make([]subscription, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, s := range snapshot {
		b.deliver(s, event, session)
	}
}

func (b *Bus) deliver(s subscription, event Event, session *models.Session) {
	defer func() {
		if p := recover(); p != nil {
			b.logger.Error(context.Background(), "auth event subscriber panicked", "event", string(event), "panic", p)
		}
	}()
	s.fn(event, session)
}
