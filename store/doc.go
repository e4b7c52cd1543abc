// Package store defines the pluggable backing-store contract a sparse
// matrix keeps its entries in, plus the two shipped implementations.
//
// The store package provides:
//
//   - Store, the minimal key→value contract the matrix requires: insert or
//     overwrite, find, erase, size, positional iteration in the store's
//     native order, plus deep copy and clear.
//   - Ordered, a sorted store iterating in coordinate-lexicographic order;
//     O(log n) lookups, O(n) inserts.
//   - Hash, a bucketed hash table over the key's combining hash; O(1)
//     average lookups, unspecified iteration order.
//
// Pick Ordered when traversal order matters, Hash when lookup speed does.
// Any other conforming implementation may back a matrix.
//
// Stores are deliberately single-threaded: the matrix owning a store is the
// only mutator, and the matrix itself carries no locks.
package store
