// Package coords: core tuple type and its comparisons.
package coords

import (
	"strconv"
	"strings"
)

// Coords is an ordered coordinate tuple addressing one cell of an
// N-dimensional matrix; len(Coords) equals the matrix's dimension count.
type Coords []uint64

// Equal reports whether c and o have the same length and identical
// components, in order.
// Complexity: O(n).
func (c Coords) Equal(o Coords) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the tuple.
// Complexity: O(n).
func (c Coords) Clone() Coords {
	out := make(Coords, len(c))
	copy(out, c)

	return out
}

// String formats the tuple as "c0,c1,...,cN-1".
// Complexity: O(n).
func (c Coords) String() string {
	var sb strings.Builder
	for i, v := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(v, 10))
	}

	return sb.String()
}
