// Package aimsmodel provides observable in-memory data models.
//
// A model caches application state and notifies listeners synchronously
// whenever that state meaningfully changes. Two models are provided:
//
//   - [SequenceStore]: an ordered slice of entries with replace-only semantics
//   - [MapStore]: entries keyed by their identifier, with merge, removal,
//     full replacement and clear
//
// # Quick Start
//
//	type User struct {
//	    Name string
//	    Role string
//	}
//
//	func (u User) ID() string { return u.Name }
//
//	users := aimsmodel.NewMapStore[string, User]()
//	users.Subscribe(func(m *aimsmodel.MapStore[string, User]) {
//	    fmt.Println("users changed:", m.Len())
//	})
//
//	users.Add([]User{{Name: "ada", Role: "admin"}}, false) // emits
//	users.RemoveID("bob")                                  // absent, no event
//	users.Clear()                                          // always emits
//
// # Change Events
//
// Both models emit [EventDataChanged] with the model itself as the payload.
// Listeners run on the mutating goroutine, in registration order, before the
// mutating method returns. A mutation that cannot have changed anything is
// suppressed:
//
//   - [SequenceStore.SetData] emits unless both the old and new data are empty
//   - [MapStore.Add] emits if any entry was written, or when forced
//   - [MapStore.Remove] emits whenever the given slice is non-empty
//   - [MapStore.RemoveID] emits only when the id was present
//   - [MapStore.SetData] emits unless both the old and new data are empty
//   - [MapStore.Clear] always emits
//
// Listener panics are not recovered. They propagate to the caller of the
// mutating method, and later listeners do not run for that event.
//
// # Concurrency
//
// Models are not safe for concurrent mutation. Callers that share a model
// between goroutines must serialize calls to its mutating methods. Listener
// registration ([MapStore.Subscribe], [MapStore.Unsubscribe] and friends) may
// be called from any goroutine, including from inside a listener.
//
// # Architecture
//
//   - internal/emitter: Named-event registry backing every model
//   - internal/replay: Applies YAML replay scripts to a model
//   - config: Replay script parsing and validation
//   - cmd/aimsmodel: CLI for validating and replaying scripts
//
// The internal packages are not part of the public API and may change
// without notice.
package aimsmodel
