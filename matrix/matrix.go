package matrix

import (
	"github.com/katalvlaran/sparsemat/coords"
	"github.com/katalvlaran/sparsemat/store"
)

// Matrix is a sparse N-dimensional matrix of T values. It owns exactly one
// backing store holding the non-default entries; all other coordinates
// implicitly hold the configured default.
//
// Size is the number of stored entries, never the product of any extents:
// the matrix is unbounded, and coordinates are arbitrary uint64 values.
type Matrix[T comparable] struct {
	dims int
	def  T
	data store.Store[T]
}

// New constructs a Matrix from the provided options.
// Returns ErrInvalidDimensions if opts.Dimensions is negative.
// Complexity: O(1).
func New[T comparable](opts Options[T]) (*Matrix[T], error) {
	dims := opts.Dimensions
	if dims == 0 {
		dims = DefaultDimensions
	}
	if dims < 0 {
		return nil, ErrInvalidDimensions
	}
	data := opts.Store
	if data == nil {
		data = store.NewOrdered[T]()
	}

	return &Matrix[T]{dims: dims, def: opts.Default, data: data}, nil
}

// Dims returns the matrix's dimension count.
// Complexity: O(1).
func (m *Matrix[T]) Dims() int { return m.dims }

// Default returns the value implicitly held by unstored cells.
// Complexity: O(1).
func (m *Matrix[T]) Default() T { return m.def }

// Size returns the number of stored (non-default) entries.
// Complexity: O(1).
func (m *Matrix[T]) Size() int { return m.data.Len() }

// Empty reports whether the matrix stores no entries.
// Complexity: O(1).
func (m *Matrix[T]) Empty() bool { return m.data.Len() == 0 }

// key validates the coordinate arity and builds the store key.
// Panics on arity mismatch: the caller supplied a tuple of the wrong length,
// which is a programmer error, not a runtime condition.
func (m *Matrix[T]) key(pos []uint64) coords.Key {
	if len(pos) != m.dims {
		panic(panicArity)
	}

	return coords.Coords(pos).Key()
}

// GetOrDefault returns the value stored at the given coordinates, or the
// configured default if no entry exists. Never fails, never mutates.
// Complexity: one store lookup.
func (m *Matrix[T]) GetOrDefault(pos ...uint64) T {
	if v, ok := m.data.Get(m.key(pos)); ok {
		return v
	}

	return m.def
}

// SetAt inserts or overwrites the entry at the given coordinates.
//
// SetAt is the low-level write primitive: it stores v unconditionally, even
// when v equals the default. Prefer writing through At(...).Set, which
// applies the delete-on-default rule and preserves the sparsity invariant;
// an entry materialized here with the default value still counts in Size.
// Complexity: one store insert.
func (m *Matrix[T]) SetAt(v T, pos ...uint64) {
	m.data.Set(m.key(pos), v)
}

// Erase removes the entry at the given coordinates; no-op if absent.
// Complexity: one store delete.
func (m *Matrix[T]) Erase(pos ...uint64) {
	m.data.Delete(m.key(pos))
}

// At returns a Ref bound to the given coordinates. The tuple is copied, so
// later mutation of a caller-owned slice does not move the Ref.
// Panics on arity mismatch.
// Complexity: O(dims); no store access until the Ref is used.
func (m *Matrix[T]) At(pos ...uint64) Ref[T] {
	if len(pos) != m.dims {
		panic(panicArity)
	}

	return Ref[T]{m: m, pos: coords.Coords(pos).Clone()}
}

// Index starts chained per-dimension indexing with the first coordinate.
// Complexity: O(1).
func (m *Matrix[T]) Index(i uint64) Index[T] {
	return Index[T]{m: m, prefix: coords.Coords{i}}
}

// ForEach calls fn for each stored entry, in the backing store's native
// order, until fn returns false. The Coords value passed to fn is fresh on
// every call; fn may retain it.
// Complexity: O(n).
func (m *Matrix[T]) ForEach(fn func(c coords.Coords, v T) bool) {
	n := m.data.Len()
	for i := 0; i < n; i++ {
		k, v := m.data.Entry(i)
		c, _ := k.Coords() // keys are built by this matrix; decode cannot fail
		if !fn(c, v) {
			return
		}
	}
}

// Clone returns a deep copy of the matrix, backed by an independent copy of
// the underlying store (same store kind, same iteration order).
// Complexity: O(n).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{dims: m.dims, def: m.def, data: m.data.Clone()}
}

// Clear removes every stored entry; the dimension count and default are
// unchanged.
// Complexity: store-defined, at most O(n).
func (m *Matrix[T]) Clear() {
	m.data.Clear()
}
