package dashboard

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Severity classifies a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

const (
	// DisplayDuration is how long a notification stays fully visible.
	DisplayDuration = 5 * time.Second
	// FadeDuration is the fade-out that precedes removal.
	FadeDuration = 300 * time.Millisecond
)

// Notifier is the side channel every flow reports outcomes through.
type Notifier interface {
	Notify(message string, severity Severity) Notification
}

// Notification is one transient message.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
	Fading    bool
}

// EventType describes a notification lifecycle step.
type EventType string

const (
	EventShown   EventType = "shown"
	EventFading  EventType = "fading"
	EventRemoved EventType = "removed"
)

// Event is delivered to subscribers on every lifecycle step.
type Event struct {
	Type         EventType
	Notification Notification
}

type entry struct {
	seq    uint64
	n      Notification
	timers []clockwork.Timer
}

// Emitter displays notifications and expires them on its own. Concurrent
// notifications stack independently: there is no queue, no deduplication
// and no rate limiting.
type Emitter struct {
	clock clockwork.Clock

	mu          sync.RWMutex
	seq         uint64
	active      map[string]*entry
	subscribers map[string]chan Event
	closed      bool
}

// EmitterOption configures an Emitter.
type EmitterOption func(*Emitter)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clockwork.Clock) EmitterOption {
	return func(e *Emitter) { e.clock = c }
}

// NewEmitter creates an emitter.
func NewEmitter(opts ...EmitterOption) *Emitter {
	e := &Emitter{
		clock:       clockwork.NewRealClock(),
		active:      make(map[string]*entry),
		subscribers: make(map[string]chan Event),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Notify shows message and schedules its fade and removal.
func (e *Emitter) Notify(message string, severity Severity) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: e.clock.Now(),
	}
	log.Info().Str("severity", string(severity)).Str("id", n.ID).Msgf("[Notify] %s", message)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return n
	}
	e.seq++
	ent := &entry{seq: e.seq, n: n}
	e.active[n.ID] = ent
	// Both timers are armed up front so removal never depends on the fade
	// callback having run.
	ent.timers = append(ent.timers,
		e.clock.AfterFunc(DisplayDuration, func() { e.fade(n.ID) }),
		e.clock.AfterFunc(DisplayDuration+FadeDuration, func() { e.remove(n.ID) }),
	)
	e.mu.Unlock()

	e.broadcast(Event{Type: EventShown, Notification: n})
	return n
}

func (e *Emitter) fade(id string) {
	e.mu.Lock()
	ent, ok := e.active[id]
	if !ok {
		e.mu.Unlock()
		return
	}
	ent.n.Fading = true
	n := ent.n
	e.mu.Unlock()

	e.broadcast(Event{Type: EventFading, Notification: n})
}

func (e *Emitter) remove(id string) {
	e.mu.Lock()
	ent, ok := e.active[id]
	if !ok {
		e.mu.Unlock()
		return
	}
	delete(e.active, id)
	n := ent.n
	e.mu.Unlock()

	log.Debug().Str("id", id).Msg("[Notify] Notification expired")
	e.broadcast(Event{Type: EventRemoved, Notification: n})
}

// Active returns the notifications currently on display, oldest first.
func (e *Emitter) Active() []Notification {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entries := make([]*entry, 0, len(e.active))
	for _, ent := range e.active {
		entries = append(entries, ent)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	out := make([]Notification, len(entries))
	for i, ent := range entries {
		out[i] = ent.n
	}
	return out
}

// Subscribe registers a listener. Events that do not fit in the buffer are
// dropped for that listener.
func (e *Emitter) Subscribe(id string, buffer int) <-chan Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	ch := make(chan Event, buffer)
	if e.closed {
		close(ch)
		return ch
	}
	e.subscribers[id] = ch
	log.Debug().Str("subscriber", id).Int("total", len(e.subscribers)).Msg("[Notify] Subscriber added")
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (e *Emitter) Unsubscribe(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ch, ok := e.subscribers[id]; ok {
		close(ch)
		delete(e.subscribers, id)
	}
}

func (e *Emitter) broadcast(ev Event) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for id, ch := range e.subscribers {
		select {
		case ch <- ev:
		default:
			log.Warn().Str("subscriber", id).Str("event", string(ev.Type)).Msg("[Notify] Subscriber channel full, dropping event")
		}
	}
}

// Close stops pending timers and closes all subscriber channels.
func (e *Emitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	for id, ent := range e.active {
		for _, t := range ent.timers {
			t.Stop()
		}
		delete(e.active, id)
	}
	for id, ch := range e.subscribers {
		close(ch)
		delete(e.subscribers, id)
	}
}
