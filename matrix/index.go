package matrix

import "github.com/katalvlaran/sparsemat/coords"

// Index is a chained per-dimension indexer: a builder accumulating a
// coordinate prefix one component at a time until all dimensions are
// supplied. m.Index(i).Index(j) on a 2-D matrix addresses cell (i, j);
// the same cell as m.At(i, j), by construction.
//
// Index is a transient, non-owning handle with value semantics: each Index
// call returns a new Index, leaving the receiver usable (an intermediate
// prefix may be saved and extended several times). Chaining past the
// matrix's dimension count panics; resolving an incomplete prefix panics.
type Index[T comparable] struct {
	m      *Matrix[T]
	prefix coords.Coords
}

// Index extends the prefix with the next coordinate.
// Panics if the prefix is already complete.
// Complexity: O(len prefix) copy.
func (ix Index[T]) Index(i uint64) Index[T] {
	if len(ix.prefix) >= ix.m.dims {
		panic(panicIndexOrder)
	}
	next := make(coords.Coords, len(ix.prefix)+1)
	copy(next, ix.prefix)
	next[len(ix.prefix)] = i

	return Index[T]{m: ix.m, prefix: next}
}

// Remaining returns how many coordinates are still missing.
// Complexity: O(1).
func (ix Index[T]) Remaining() int {
	return ix.m.dims - len(ix.prefix)
}

// Complete reports whether all dimensions have been supplied.
// Complexity: O(1).
func (ix Index[T]) Complete() bool {
	return ix.Remaining() == 0
}

// Ref resolves the completed prefix into a value proxy.
// Panics if coordinates are still missing.
// Complexity: O(1).
func (ix Index[T]) Ref() Ref[T] {
	if !ix.Complete() {
		panic(panicIncomplete)
	}

	return Ref[T]{m: ix.m, pos: ix.prefix}
}

// Get reads through the completed prefix; shorthand for Ref().Get().
func (ix Index[T]) Get() T { return ix.Ref().Get() }

// Set writes through the completed prefix with the delete-on-default rule;
// shorthand for Ref().Set(v).
func (ix Index[T]) Set(v T) { ix.Ref().Set(v) }

// Equals compares the addressed value with v; shorthand for Ref().Equals(v).
func (ix Index[T]) Equals(v T) bool { return ix.Ref().Equals(v) }
