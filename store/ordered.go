package store

import (
	"slices"

	"github.com/katalvlaran/sparsemat/coords"
)

// Ordered is a Store keeping entries sorted by key. Because keys encode
// tuples fixed-width big-endian, the iteration order is the lexicographic
// order of the coordinate tuples themselves.
//
// Layout: two parallel slices (sorted keys + values at matching indexes).
// Lookups are O(log n) binary searches; Set/Delete of a non-boundary key
// shift the tails, O(n). Best for traversal-heavy workloads and for
// deterministic output.
//
// Invalidation: any Set or Delete may shift entries, so positions obtained
// before a mutation must not be reused after it.
type Ordered[T any] struct {
	keys []coords.Key
	vals []T
}

// NewOrdered returns an empty Ordered store.
// Complexity: O(1).
func NewOrdered[T any]() *Ordered[T] {
	return &Ordered[T]{}
}

// Len returns the number of entries.
// Complexity: O(1).
func (s *Ordered[T]) Len() int { return len(s.keys) }

// Get returns the value stored at k and whether an entry exists.
// Complexity: O(log n).
func (s *Ordered[T]) Get(k coords.Key) (T, bool) {
	if i, ok := slices.BinarySearch(s.keys, k); ok {
		return s.vals[i], true
	}
	var zero T

	return zero, false
}

// Set inserts a new entry or overwrites the existing entry at k.
// Complexity: O(log n) search + O(n) insert shift.
func (s *Ordered[T]) Set(k coords.Key, v T) {
	i, ok := slices.BinarySearch(s.keys, k)
	if ok {
		s.vals[i] = v
		return
	}
	s.keys = slices.Insert(s.keys, i, k)
	s.vals = slices.Insert(s.vals, i, v)
}

// Delete removes the entry at k, reporting whether one was present.
// Complexity: O(log n) search + O(n) delete shift.
func (s *Ordered[T]) Delete(k coords.Key) bool {
	i, ok := slices.BinarySearch(s.keys, k)
	if !ok {
		return false
	}
	s.keys = slices.Delete(s.keys, i, i+1)
	s.vals = slices.Delete(s.vals, i, i+1)

	return true
}

// Entry returns the i-th entry in key-sorted order.
// Panics if i is outside [0, Len()).
// Complexity: O(1).
func (s *Ordered[T]) Entry(i int) (coords.Key, T) {
	return s.keys[i], s.vals[i]
}

// Clone returns an independent copy of the store.
// Complexity: O(n).
func (s *Ordered[T]) Clone() Store[T] {
	return &Ordered[T]{
		keys: slices.Clone(s.keys),
		vals: slices.Clone(s.vals),
	}
}

// Clear removes every entry.
// Complexity: O(1).
func (s *Ordered[T]) Clear() {
	s.keys, s.vals = nil, nil
}
