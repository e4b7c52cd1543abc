// Package store: the backing-store contract.
package store

import "github.com/katalvlaran/sparsemat/coords"

// Store is the minimal associative-container contract a sparse matrix
// requires from its backing storage. A matrix owns exactly one Store and is
// its only mutator.
//
// Iteration is positional: Entry(i) returns the i-th entry in the store's
// native order for 0 ≤ i < Len(). The order itself is implementation-defined
// (Ordered: coordinate-lexicographic; Hash: unspecified), but must stay
// stable between mutations. Each implementation documents which mutations
// invalidate previously obtained positions.
type Store[T any] interface {
	// Set inserts a new entry or overwrites the existing entry at k.
	Set(k coords.Key, v T)

	// Get returns the value stored at k and whether an entry exists.
	Get(k coords.Key) (T, bool)

	// Delete removes the entry at k, reporting whether one was present.
	// Deleting an absent key is a no-op, not an error.
	Delete(k coords.Key) bool

	// Len returns the number of entries.
	// Complexity: O(1).
	Len() int

	// Entry returns the i-th entry in the store's native order.
	// Panics if i is outside [0, Len()).
	Entry(i int) (coords.Key, T)

	// Clone returns an independent deep copy of the store.
	Clone() Store[T]

	// Clear removes every entry.
	Clear()
}
