package emitter

import (
	"sync"

	"github.com/google/uuid"
)

// Subscription identifies a single listener registration.
//
// The zero value is not a valid subscription; passing it to [Emitter.Off]
// returns false.
type Subscription struct {
	id    uuid.UUID
	event string
}

// Event returns the event name the subscription was registered for.
func (s Subscription) Event() string {
	return s.event
}

// Valid reports whether s was returned by [Emitter.On].
func (s Subscription) Valid() bool {
	return s.id != uuid.Nil
}

type listener[P any] struct {
	id uuid.UUID
	fn func(P)
}

// Emitter is a synchronous named-event registry with payload type P.
//
// Registration and removal are safe for concurrent use. Emission takes a
// snapshot of the listeners under the lock and invokes them without holding
// it, so a listener may call [Emitter.On] or [Emitter.Off] on the same emitter.
// Changes made during an emission take effect on the next one.
type Emitter[P any] struct {
	mu        sync.RWMutex
	listeners map[string][]listener[P]
}

// New creates an empty [Emitter].
func New[P any]() *Emitter[P] {
	return &Emitter[P]{
		listeners: make(map[string][]listener[P]),
	}
}

// On registers fn for event and returns a handle for [Emitter.Off].
//
// The same function may be registered more than once; each registration is
// invoked separately. A nil fn is ignored and yields an invalid Subscription.
func (e *Emitter[P]) On(event string, fn func(P)) Subscription {
	if fn == nil {
		return Subscription{}
	}

	id := uuid.New()

	e.mu.Lock()
	e.listeners[event] = append(e.listeners[event], listener[P]{id: id, fn: fn})
	e.mu.Unlock()

	return Subscription{id: id, event: event}
}

// Off removes a registration. Returns false if sub is unknown or was already
// removed; safe to call multiple times.
func (e *Emitter[P]) Off(sub Subscription) bool {
	if !sub.Valid() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ls := e.listeners[sub.event]
	for i, l := range ls {
		if l.id != sub.id {
			continue
		}
		// copy so snapshots held by in-flight emissions are not disturbed
		next := make([]listener[P], 0, len(ls)-1)
		next = append(next, ls[:i]...)
		next = append(next, ls[i+1:]...)
		if len(next) == 0 {
			delete(e.listeners, sub.event)
		} else {
			e.listeners[sub.event] = next
		}
		return true
	}
	return false
}

// Emit invokes every listener registered for event with payload, in
// registration order, and returns how many were invoked.
func (e *Emitter[P]) Emit(event string, payload P) int {
	e.mu.RLock()
	snapshot := e.listeners[event]
	e.mu.RUnlock()

	for _, l := range snapshot {
		l.fn(payload)
	}
	return len(snapshot)
}

// ListenerCount returns the number of listeners registered for event.
func (e *Emitter[P]) ListenerCount(event string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners[event])
}
