// Package coords defines the coordinate tuples that address cells of a
// sparse N-dimensional matrix, and their encoded store keys.
//
// The coords package provides:
//
//   - Coords, an ordered tuple of non-negative integers (one per dimension).
//   - Key, a compact fixed-width encoding of a Coords used as the lookup key
//     in backing stores. Keys compare byte-lexicographically in the same
//     order as their tuples, so an ordered store sorted by Key iterates in
//     coordinate-lexicographic order.
//   - Sum64, a combining hash over the tuple elements for hash-based stores.
//
// Coordinates are unbounded: any uint64 is a valid component in any
// dimension. Two tuples are equal iff all components are equal, in order.
package coords
