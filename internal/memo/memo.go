// Package memo provides append-only memoization tables for expensive pure
// derivations. Entries live for the lifetime of the table; there is no
// eviction, since callers key tables by small, parameter-bounded tuples.
package memo

import "sync"

// Table memoizes values of pure computations keyed by K.
//
// The first Get for a key computes the value exactly once; concurrent
// callers for the same key block until that computation completes. Later
// calls return the stored value unchanged. Stored values must be treated
// as read-only by all callers.
type Table[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[V]
}

type entry[V any] struct {
	once sync.Once
	val  V
}

// NewTable returns an empty Table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		entries: make(map[K]*entry[V]),
	}
}

// Get returns the memoized value for key, computing it with compute on the
// first call for that key.
func (t *Table[K, V]) Get(key K, compute func() V) V {
	t.mu.RLock()
	e, ok := t.entries[key]
	t.mu.RUnlock()

	if !ok {
		t.mu.Lock()
		e, ok = t.entries[key]
		if !ok {
			e = &entry[V]{}
			t.entries[key] = e
		}
		t.mu.Unlock()
	}

	e.once.Do(func() {
		e.val = compute()
	})

	return e.val
}

// Len returns the number of memoized entries.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
