package matrix

import "github.com/katalvlaran/sparsemat/coords"

// Entry is one stored cell exposed during iteration: the coordinate tuple
// and the value, both by copy. Mutating an Entry never affects the matrix.
type Entry[T any] struct {
	Coords coords.Coords
	Value  T
}

// Iterator is a bidirectional position over a matrix's stored entries, in
// the backing store's native order (coordinate-lexicographic for
// store.Ordered, unspecified for store.Hash).
//
// Iterators have value semantics and are comparable with ==: two iterators
// are equal iff they reference the same matrix and the same position.
// Next and Prev return a moved copy, so
//
//	for it := m.Begin(); it != m.End(); it = it.Next() { ... }
//
// walks every entry. Mutating the matrix invalidates live iterators per the
// backing store's own rules (see the store package).
type Iterator[T comparable] struct {
	m *Matrix[T]
	i int
}

// Begin returns an iterator at the first entry in store order, equal to
// End() when the matrix is empty.
// Complexity: O(1).
func (m *Matrix[T]) Begin() Iterator[T] {
	return Iterator[T]{m: m, i: 0}
}

// End returns the one-past-last sentinel; it is never dereferenced.
// Complexity: O(1).
func (m *Matrix[T]) End() Iterator[T] {
	return Iterator[T]{m: m, i: m.data.Len()}
}

// Next returns the iterator advanced by one position. Advancing the last
// entry yields End().
// Complexity: O(1).
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{m: it.m, i: it.i + 1}
}

// Prev returns the iterator moved back by one position. Moving back from
// End() yields the last entry.
// Complexity: O(1).
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{m: it.m, i: it.i - 1}
}

// Valid reports whether the iterator addresses a stored entry (i.e. is
// dereferenceable).
// Complexity: O(1).
func (it Iterator[T]) Valid() bool {
	return it.i >= 0 && it.i < it.m.data.Len()
}

// Entry returns the addressed (coords, value) pair as a fresh copy.
// Panics if the iterator is not Valid (in particular on End()).
// Complexity: O(dims).
func (it Iterator[T]) Entry() Entry[T] {
	k, v := it.m.data.Entry(it.i)
	c, _ := k.Coords() // keys are built by the matrix; decode cannot fail

	return Entry[T]{Coords: c, Value: v}
}
