// Package matrix implements a generic sparse N-dimensional matrix: only
// explicitly assigned cells are stored; every other coordinate implicitly
// holds a configured default value.
//
// The matrix package provides:
//
//   - Matrix, parameterized by element type, dimension count (≥ 1), default
//     value, and a pluggable backing store (store.Ordered or store.Hash).
//   - Ref, a lazy value proxy bound to one coordinate tuple: Get re-queries
//     the store on every call, Set applies the delete-on-default rule.
//   - Index, a chained per-dimension indexer accumulating a coordinate
//     prefix one component at a time: m.Index(i).Index(j).Get().
//   - Iterator, bidirectional traversal over stored (coords, value) entries
//     in the backing store's native order.
//
// The one rule everything rests on: assigning the default value to a cell
// deletes its entry, so Size() always counts non-default cells only.
// Reading any unset cell yields the default and never allocates.
//
// Supplying the wrong number of coordinates is a programmer error and
// panics; all other operations are total. A Matrix is not safe for
// concurrent use.
package matrix
