package store

import (
	"math/bits"

	"github.com/katalvlaran/sparsemat/coords"
)

const (
	// minBucketCount is the smallest bucket table allocated by NewHash.
	minBucketCount = 16

	// maxBucketLoad is the average entries-per-bucket threshold that
	// triggers table growth. Buckets are short slices scanned linearly, so
	// the load factor bounds the scan length.
	maxBucketLoad = 4
)

// hashEntry is one stored key/value pair in a Hash store's dense entry list.
type hashEntry[T any] struct {
	key coords.Key
	val T
}

// Hash is a Store backed by a bucketed hash table keyed on Key.Sum64.
// Entries live in a dense slice; buckets hold indexes into that slice and
// resolve hash collisions by linear scan with full-key comparison.
//
// Iteration order is unspecified: insertion order disturbed by deletes
// (Delete moves the last entry into the vacated slot).
//
// Invalidation: Delete invalidates positions at and after the deleted
// entry; Set of a new key appends, so earlier positions stay valid.
type Hash[T any] struct {
	entries []hashEntry[T]
	buckets [][]int
	mask    uint64
}

// NewHash returns an empty Hash store pre-sized for about capacityHint
// entries. A hint ≤ 0 yields the minimum table size.
// Complexity: O(buckets).
func NewHash[T any](capacityHint int) *Hash[T] {
	n := minBucketCount
	if want := capacityHint / maxBucketLoad; want > n {
		n = 1 << bits.Len(uint(want-1))
	}

	return &Hash[T]{
		buckets: make([][]int, n),
		mask:    uint64(n - 1),
	}
}

// Len returns the number of entries.
// Complexity: O(1).
func (s *Hash[T]) Len() int { return len(s.entries) }

// bucketOf maps a key to its bucket via the combining hash.
// Complexity: O(len k).
func (s *Hash[T]) bucketOf(k coords.Key) int {
	return int(k.Sum64() & s.mask)
}

// Get returns the value stored at k and whether an entry exists.
// Complexity: O(1) average.
func (s *Hash[T]) Get(k coords.Key) (T, bool) {
	for _, idx := range s.buckets[s.bucketOf(k)] {
		if s.entries[idx].key == k {
			return s.entries[idx].val, true
		}
	}
	var zero T

	return zero, false
}

// Set inserts a new entry or overwrites the existing entry at k.
// Complexity: O(1) amortized; growth rehashes all entries.
func (s *Hash[T]) Set(k coords.Key, v T) {
	b := s.bucketOf(k)
	for _, idx := range s.buckets[b] {
		if s.entries[idx].key == k {
			s.entries[idx].val = v
			return
		}
	}

	if len(s.entries) >= len(s.buckets)*maxBucketLoad {
		s.grow()
		b = s.bucketOf(k)
	}
	s.entries = append(s.entries, hashEntry[T]{key: k, val: v})
	s.buckets[b] = append(s.buckets[b], len(s.entries)-1)
}

// Delete removes the entry at k, reporting whether one was present.
// The last entry is moved into the vacated slot to keep the entry list
// dense, so the i-th position changes meaning after a delete.
// Complexity: O(1) average.
func (s *Hash[T]) Delete(k coords.Key) bool {
	b := s.bucketOf(k)
	slot, idx := -1, 0
	for si, ei := range s.buckets[b] {
		if s.entries[ei].key == k {
			slot, idx = si, ei
			break
		}
	}
	if slot < 0 {
		return false
	}

	// Unlink from the bucket (order within a bucket is irrelevant).
	bkt := s.buckets[b]
	bkt[slot] = bkt[len(bkt)-1]
	s.buckets[b] = bkt[:len(bkt)-1]

	// Swap-remove from the dense entry list, repointing the moved entry's
	// bucket reference.
	last := len(s.entries) - 1
	if idx != last {
		moved := s.entries[last]
		s.entries[idx] = moved
		mb := s.bucketOf(moved.key)
		for si, ei := range s.buckets[mb] {
			if ei == last {
				s.buckets[mb][si] = idx
				break
			}
		}
	}
	s.entries[last] = hashEntry[T]{} // release the value for GC
	s.entries = s.entries[:last]

	return true
}

// Entry returns the i-th entry in the store's (unspecified) native order.
// Panics if i is outside [0, Len()).
// Complexity: O(1).
func (s *Hash[T]) Entry(i int) (coords.Key, T) {
	return s.entries[i].key, s.entries[i].val
}

// Clone returns an independent deep copy of the store.
// Complexity: O(n + buckets).
func (s *Hash[T]) Clone() Store[T] {
	cp := &Hash[T]{
		entries: make([]hashEntry[T], len(s.entries)),
		buckets: make([][]int, len(s.buckets)),
		mask:    s.mask,
	}
	copy(cp.entries, s.entries)
	for b, bkt := range s.buckets {
		if len(bkt) == 0 {
			continue
		}
		cp.buckets[b] = make([]int, len(bkt))
		copy(cp.buckets[b], bkt)
	}

	return cp
}

// Clear removes every entry, keeping the bucket table size.
// Complexity: O(buckets).
func (s *Hash[T]) Clear() {
	s.entries = nil
	s.buckets = make([][]int, len(s.buckets))
}

// grow doubles the bucket table and rehashes every entry index.
// Complexity: O(n).
func (s *Hash[T]) grow() {
	n := len(s.buckets) * 2
	s.buckets = make([][]int, n)
	s.mask = uint64(n - 1)
	for i := range s.entries {
		b := s.bucketOf(s.entries[i].key)
		s.buckets[b] = append(s.buckets[b], i)
	}
}
