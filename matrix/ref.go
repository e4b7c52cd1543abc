package matrix

import "github.com/katalvlaran/sparsemat/coords"

// Ref is a lazy value proxy bound to one complete coordinate tuple of a
// Matrix. It holds no value of its own: Get re-queries the store on every
// call, so two Refs bound to the same coordinates always observe each
// other's writes, with no staleness.
//
// A Ref is a transient, non-owning handle. It must not outlive the matrix
// it refers to; using a Ref after its matrix is gone is a misuse, not a
// handled error.
type Ref[T comparable] struct {
	m   *Matrix[T]
	pos coords.Coords
}

// Get returns the stored value at the bound coordinates, or the matrix's
// default if no entry exists.
// Complexity: one store lookup.
func (r Ref[T]) Get() T {
	return r.m.GetOrDefault(r.pos...)
}

// Set writes v at the bound coordinates, applying the delete-on-default
// rule: assigning the matrix's default value erases the entry (or silently
// does nothing if none existed); any other value is inserted or overwrites.
// This is what keeps Size proportional to the non-default cells.
// Complexity: one store insert or delete.
func (r Ref[T]) Set(v T) {
	if v == r.m.def {
		r.m.Erase(r.pos...)
		return
	}
	r.m.SetAt(v, r.pos...)
}

// Equals reports whether the value at the bound coordinates equals v,
// without an explicit Get at the call site.
// Complexity: one store lookup.
func (r Ref[T]) Equals(v T) bool {
	return r.Get() == v
}

// Coords returns a copy of the coordinate tuple the Ref is bound to.
// Complexity: O(dims).
func (r Ref[T]) Coords() coords.Coords {
	return r.pos.Clone()
}
