package aimsmodel

// MapStore is an observable model holding entries keyed by their ID.
//
// Entries are merged with [MapStore.Add] or [MapStore.AddMap], removed with
// [MapStore.Remove] or [MapStore.RemoveID], and replaced wholesale with
// [MapStore.SetData] or [MapStore.SetDataMap]. Each operation emits at most
// one [EventDataChanged].
//
// The store does not validate entries. An entry whose ID is the zero value of K
// is stored under the zero key.
//
// MapStore implements [Observable] with payload *MapStore[K, V].
type MapStore[K comparable, V Identifiable[K]] struct {
	notifier[*MapStore[K, V]]
	data map[K]V
}

// NewMapStore creates an empty [MapStore].
func NewMapStore[K comparable, V Identifiable[K]](opts ...Option) *MapStore[K, V] {
	m := &MapStore[K, V]{data: make(map[K]V)}
	m.notifier = newNotifier(m, "map", m.Len, opts)
	return m
}

// Data returns the current mapping by reference.
//
// SetData, SetDataMap and Clear install a new map; a map obtained before one
// of those calls keeps its old contents.
func (m *MapStore[K, V]) Data() map[K]V {
	return m.data
}

// Get returns the entry stored under id.
func (m *MapStore[K, V]) Get(id K) (V, bool) {
	v, ok := m.data[id]
	return v, ok
}

// Len returns the number of stored entries.
func (m *MapStore[K, V]) Len() int {
	return len(m.data)
}

// Add stores each entry under its ID, overwriting any existing entry with the
// same ID. When entries repeats an ID, the last one wins.
//
// Emits [EventDataChanged] if at least one entry was written, or if forceEmit
// is true even when entries is empty.
func (m *MapStore[K, V]) Add(entries []V, forceEmit bool) {
	updated := false
	for _, entry := range entries {
		m.data[entry.ID()] = entry
		updated = true
	}

	if updated || forceEmit {
		m.changed()
	}
}

// AddMap stores each value under its key in entries, overwriting existing
// entries. Keys are used as given; they are not checked against the values' IDs.
//
// Emission follows the same rule as [MapStore.Add].
func (m *MapStore[K, V]) AddMap(entries map[K]V, forceEmit bool) {
	updated := false
	for id, entry := range entries {
		m.data[id] = entry
		updated = true
	}

	if updated || forceEmit {
		m.changed()
	}
}

// Remove deletes the entry stored under each entry's ID.
//
// Deletion is attempted for every entry whether or not it is present, and
// [EventDataChanged] is emitted whenever entries is non-empty, even if none of
// the IDs were stored. Use [MapStore.RemoveID] to emit only on actual removal.
func (m *MapStore[K, V]) Remove(entries []V) {
	if len(entries) == 0 {
		return
	}

	for _, entry := range entries {
		delete(m.data, entry.ID())
	}
	m.changed()
}

// RemoveID deletes the entry stored under id. Emits [EventDataChanged] only if
// the id was present. Reports whether an entry was removed.
func (m *MapStore[K, V]) RemoveID(id K) bool {
	if _, ok := m.data[id]; !ok {
		return false
	}

	delete(m.data, id)
	m.changed()
	return true
}

// SetData replaces the whole mapping with entries, keyed by ID.
//
// Emits exactly one [EventDataChanged] if the store held data or entries is
// non-empty; replacing an empty store with nothing emits nothing.
func (m *MapStore[K, V]) SetData(entries []V) {
	forceEmit := len(m.data) > 0
	m.data = make(map[K]V, len(entries))
	m.Add(entries, forceEmit)
}

// SetDataMap is the mapping form of [MapStore.SetData].
func (m *MapStore[K, V]) SetDataMap(entries map[K]V) {
	forceEmit := len(m.data) > 0
	m.data = make(map[K]V, len(entries))
	m.AddMap(entries, forceEmit)
}

// Clear removes all entries and always emits [EventDataChanged], even when the
// store was already empty.
func (m *MapStore[K, V]) Clear() {
	m.data = make(map[K]V)
	m.changed()
}
