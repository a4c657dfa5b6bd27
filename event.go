package aimsmodel

import "github.com/jpalmerr/aimsmodel/internal/emitter"

// EventDataChanged is emitted by every model after a meaningful mutation.
const EventDataChanged = "aims.model.data.changed"

// Subscription identifies a listener registration on a model.
// Pass it to Off or Unsubscribe to stop receiving events.
type Subscription = emitter.Subscription

// Identifiable is implemented by entries stored in a [MapStore].
//
// ID must be stable for the lifetime of the entry; it is the key the entry is
// stored under.
type Identifiable[K comparable] interface {
	ID() K
}

// Observable is the listener capability shared by all models.
//
// S is the concrete model pointer passed to listeners, for example
// *MapStore[string, User].
type Observable[S any] interface {
	// On registers fn for the named event.
	On(event string, fn func(S)) Subscription

	// Off removes a registration made with On or Subscribe.
	// Returns false if it was not registered.
	Off(sub Subscription) bool

	// Subscribe registers fn for [EventDataChanged].
	Subscribe(fn func(S)) Subscription

	// Unsubscribe is an alias for Off.
	Unsubscribe(sub Subscription) bool

	// Emit invokes the listeners for event with the model as payload and
	// returns how many were invoked.
	Emit(event string) int

	// ListenerCount returns the number of listeners registered for event.
	ListenerCount(event string) int
}
