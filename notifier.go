package aimsmodel

import (
	"log/slog"

	"github.com/jpalmerr/aimsmodel/internal/emitter"
)

// notifier implements [Observable] for a model of pointer type S.
// Models embed it and hand it a pointer to themselves.
type notifier[S any] struct {
	self   S
	events *emitter.Emitter[S]
	logger *slog.Logger
	sizeFn func() int
}

func newNotifier[S any](self S, kind string, sizeFn func() int, opts []Option) notifier[S] {
	cfg := buildConfig(opts)

	logger := cfg.logger.With("store", kind)
	if cfg.name != "" {
		logger = logger.With("model", cfg.name)
	}

	return notifier[S]{
		self:   self,
		events: emitter.New[S](),
		logger: logger,
		sizeFn: sizeFn,
	}
}

// On registers fn for the named event.
func (n *notifier[S]) On(event string, fn func(S)) Subscription {
	return n.events.On(event, fn)
}

// Off removes a listener registration. Returns false if sub was not
// registered on this model.
func (n *notifier[S]) Off(sub Subscription) bool {
	return n.events.Off(sub)
}

// Subscribe registers fn for [EventDataChanged].
func (n *notifier[S]) Subscribe(fn func(S)) Subscription {
	return n.events.On(EventDataChanged, fn)
}

// Unsubscribe removes a registration made with Subscribe or On.
func (n *notifier[S]) Unsubscribe(sub Subscription) bool {
	return n.events.Off(sub)
}

// Emit invokes every listener for event with the model as payload and returns
// how many were invoked.
func (n *notifier[S]) Emit(event string) int {
	return n.events.Emit(event, n.self)
}

// ListenerCount returns the number of listeners registered for event.
func (n *notifier[S]) ListenerCount(event string) int {
	return n.events.ListenerCount(event)
}

// changed logs and emits EventDataChanged.
// Logged first so the record exists even if a listener panics.
func (n *notifier[S]) changed() {
	n.logger.Debug("model data changed",
		"event", EventDataChanged,
		"size", n.sizeFn(),
		"listeners", n.events.ListenerCount(EventDataChanged),
	)
	n.events.Emit(EventDataChanged, n.self)
}
