package aimsmodel

// SequenceStore is an observable model holding an ordered slice of entries.
//
// The slice is replaced wholesale by [SequenceStore.SetData]; there is no
// per-entry mutation. A change event is emitted unless an empty slice is
// replaced by another empty slice. Contents are never compared, so replacing
// data with an identical non-empty slice still emits.
//
// SequenceStore implements [Observable] with payload *SequenceStore[T].
type SequenceStore[T any] struct {
	notifier[*SequenceStore[T]]
	data []T
}

// NewSequenceStore creates an empty [SequenceStore].
func NewSequenceStore[T any](opts ...Option) *SequenceStore[T] {
	s := &SequenceStore[T]{data: []T{}}
	s.notifier = newNotifier(s, "sequence", s.Len, opts)
	return s
}

// Data returns the current entries.
//
// The slice is returned by reference, not copied. It is never nil.
func (s *SequenceStore[T]) Data() []T {
	return s.data
}

// Len returns the number of entries.
func (s *SequenceStore[T]) Len() int {
	return len(s.data)
}

// SetData replaces the entries and emits [EventDataChanged] if either the
// previous or the new slice is non-empty.
//
// The store keeps a reference to entries. A nil slice is stored as an empty one.
func (s *SequenceStore[T]) SetData(entries []T) {
	hadData := len(s.data) > 0
	if entries == nil {
		entries = []T{}
	}
	s.data = entries

	if hadData || len(entries) > 0 {
		s.changed()
	}
}

// Clear removes all entries. Equivalent to SetData with an empty slice, so it
// emits only if the store held data.
func (s *SequenceStore[T]) Clear() {
	s.SetData([]T{})
}
