// Package sparsemat is an in-memory, generic, sparse N-dimensional matrix:
// an associative container that stores only explicitly assigned elements and
// treats every other coordinate as implicitly holding a configured default.
//
// 🚀 What is sparsemat?
//
//	A small, pure-Go library built around one rule — assigning the default
//	value to a cell deletes it — so storage always stays proportional to
//	the number of non-default elements:
//		• Matrix: generic over the element type, any dimension count ≥ 1
//		• Ref: a lazy value proxy — read a cell or assign it without
//		  pre-checking existence
//		• Index: chained per-dimension indexing, m.Index(i).Index(j)...
//		• Iterator: bidirectional traversal of stored (coords, value) entries
//		• Pluggable backing stores: ordered (sorted iteration) or
//		  hash-based (faster lookups, unspecified order)
//
// ✨ Why choose sparsemat?
//
//   - Total API – reads never fail (missing cells yield the default),
//     erasing an absent cell is a no-op
//   - Unbounded – coordinates are arbitrary non-negative integers;
//     no extents, no bounds checks
//   - Extensible – any store satisfying the minimal store.Store contract
//     can back a matrix
//
// Everything is organized under three subpackages:
//
//	coords/ — coordinate tuples and their encoded store keys
//	store/  — the backing-store contract plus Ordered and Hash stores
//	matrix/ — the Matrix itself: proxies, indexers, iteration, options
//
// Quick example:
//
//	m := matrix.New(matrix.WithDefault(42))
//	m.At(0, 0).Get()   // 42 — nothing stored yet
//	m.At(0, 0).Set(1)  // Size() == 1
//	m.At(0, 0).Set(42) // default assigned ⇒ entry deleted, Size() == 0
//
// A Matrix is not safe for concurrent use; wrap it in your own lock if you
// share one across goroutines.
//
//	go get github.com/katalvlaran/sparsemat/matrix
package sparsemat
