// Package coords: Key encoding for backing stores.
//
// A Key is the big-endian concatenation of the tuple's components, eight
// bytes per dimension. Fixed width + big-endian means byte-lexicographic
// order of Keys equals lexicographic order of the tuples they encode; the
// ordered store relies on that invariant for its iteration order.
package coords

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// keyComponentSize is the encoded width of one coordinate component.
const keyComponentSize = 8

// Key is the store-key form of a Coords: an opaque, comparable string of
// len(Coords)*8 bytes. Keys built from tuples of different dimension counts
// never collide (their lengths differ).
type Key string

// Key encodes the tuple into its store key.
// Complexity: O(n).
func (c Coords) Key() Key {
	buf := make([]byte, len(c)*keyComponentSize)
	for i, v := range c {
		binary.BigEndian.PutUint64(buf[i*keyComponentSize:], v)
	}

	return Key(buf)
}

// Dims returns the number of coordinate components encoded in k.
// Complexity: O(1).
func (k Key) Dims() int {
	return len(k) / keyComponentSize
}

// Coords decodes the key back into its tuple.
// Returns ErrBadKey if the key length is not a multiple of the component width.
// Complexity: O(n).
func (k Key) Coords() (Coords, error) {
	if len(k)%keyComponentSize != 0 {
		return nil, ErrBadKey
	}
	out := make(Coords, len(k)/keyComponentSize)
	for i := range out {
		out[i] = binary.BigEndian.Uint64([]byte(k[i*keyComponentSize:]))
	}

	return out, nil
}

// Sum64 returns a 64-bit combining hash over the encoded tuple, for use by
// hash-based stores. Not a cryptographic hash; collisions are expected and
// must be resolved by the store itself.
// Complexity: O(n).
func (k Key) Sum64() uint64 {
	return xxhash.Sum64String(string(k))
}
