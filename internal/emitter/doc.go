// Package emitter provides the named-event publish/subscribe primitive used by
// the aimsmodel stores.
//
// This package is internal to aimsmodel. Stores hold an [Emitter] by
// composition and expose its registration methods through their own API.
//
// The main components are:
//
//   - [Emitter]: Registry of listeners keyed by event name
//   - [Subscription]: Handle returned by [Emitter.On], used to unregister
//
// Delivery is synchronous: [Emitter.Emit] calls every listener in registration
// order on the calling goroutine and returns only after the last one finishes.
// A panicking listener is not recovered; the panic reaches the caller of Emit
// and listeners registered after it do not run for that emission.
package emitter
